/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination service_mocks.go -package aws -source=service.go

package aws

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/x509"
	"encoding/asn1"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
)

var logger = log.New("kms-aws")

// ErrSigning is returned when KMS could not produce a signature.
var ErrSigning = errors.New("kms signing failed")

type awsClient interface {
	Sign(ctx context.Context, params *kms.SignInput, optFns ...func(*kms.Options)) (*kms.SignOutput, error)
	GetPublicKey(ctx context.Context, params *kms.GetPublicKeyInput,
		optFns ...func(*kms.Options)) (*kms.GetPublicKeyOutput, error)
	DescribeKey(ctx context.Context, params *kms.DescribeKeyInput,
		optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error)
}

type metricsProvider interface {
	SignCount()
	SignTime(value time.Duration)
	ExportPublicKeyCount()
	ExportPublicKeyTime(value time.Duration)
}

type ecdsaSignature struct {
	R, S *big.Int
}

const p256ScalarSize = 32

// nolint: gochecknoglobals
var keyARNPattern = regexp.MustCompile(`^arn:(aws[a-zA-Z0-9-_]*):kms:([a-z0-9-]+):([0-9]+):key/(.+)$`)

// Service signs with ECDSA P-256 keys held in AWS KMS.
type Service struct {
	client           awsClient
	metrics          metricsProvider
	healthCheckKeyID string
}

// New return aws service.
func New(
	awsConfig *aws.Config,
	metrics metricsProvider,
	healthCheckKeyID string,
	opts ...Opts,
) *Service {
	options := newOpts()

	for _, opt := range opts {
		opt(options)
	}

	client := options.awsClient
	if client == nil {
		client = kms.NewFromConfig(*awsConfig, func(o *kms.Options) {
			if options.endpoint != "" {
				o.BaseEndpoint = aws.String(options.endpoint)
			}
		})
	}

	return &Service{
		client:           client,
		metrics:          metrics,
		healthCheckKeyID: healthCheckKeyID,
	}
}

// Sign signs a SHA-256 digest and returns the signature as r||s.
func (s *Service) Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.SignTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.SignCount()
	}

	if len(digest) != sha256.Size {
		return nil, fmt.Errorf("%w: digest must be %d bytes, got %d", ErrSigning, sha256.Size, len(digest))
	}

	result, err := s.client.Sign(ctx, &kms.SignInput{
		KeyId:            aws.String(keyID),
		Message:          digest,
		MessageType:      types.MessageTypeDigest,
		SigningAlgorithm: types.SigningAlgorithmSpecEcdsaSha256,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	sig, err := DERToConcat(result.Signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigning, err)
	}

	logger.Debugc(ctx, "kms sign", logfields.WithKeyID(keyID), log.WithDuration(time.Since(startTime)))

	return sig, nil
}

// SignMessage hashes msg with SHA-256 and signs the digest.
func (s *Service) SignMessage(ctx context.Context, keyID string, msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)

	return s.Sign(ctx, keyID, digest[:])
}

// GetKeyID resolves a key alias or ARN to the key id.
func (s *Service) GetKeyID(ctx context.Context, keyAlias string) (string, error) {
	out, err := s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(keyAlias)})
	if err != nil {
		return "", fmt.Errorf("describe key %s: %w", keyAlias, err)
	}

	return aws.ToString(out.KeyMetadata.KeyId), nil
}

// IsKeyActive reports whether the key exists, is enabled and is not scheduled for deletion.
func (s *Service) IsKeyActive(ctx context.Context, keyAlias string) (bool, error) {
	out, err := s.client.DescribeKey(ctx, &kms.DescribeKeyInput{KeyId: aws.String(keyAlias)})
	if err != nil {
		var notFound *types.NotFoundException
		if errors.As(err, &notFound) {
			logger.Infoc(ctx, "key was not found", logfields.WithKeyID(keyAlias))

			return false, nil
		}

		return false, fmt.Errorf("describe key %s: %w", keyAlias, err)
	}

	if !out.KeyMetadata.Enabled {
		logger.Infoc(ctx, "key is disabled", logfields.WithKeyID(keyAlias))

		return false, nil
	}

	if out.KeyMetadata.DeletionDate != nil {
		logger.Infoc(ctx, "key is due for deletion", logfields.WithKeyID(keyAlias))

		return false, nil
	}

	return true, nil
}

// PublicKey is a KMS public key together with the id of the key it belongs to.
type PublicKey struct {
	KeyID string
	Key   *ecdsa.PublicKey
}

// GetPublicKey exports the P-256 public key of keyAlias.
func (s *Service) GetPublicKey(ctx context.Context, keyAlias string) (*PublicKey, error) {
	startTime := time.Now()

	defer func() {
		if s.metrics != nil {
			s.metrics.ExportPublicKeyTime(time.Since(startTime))
		}
	}()

	if s.metrics != nil {
		s.metrics.ExportPublicKeyCount()
	}

	result, err := s.client.GetPublicKey(ctx, &kms.GetPublicKeyInput{KeyId: aws.String(keyAlias)})
	if err != nil {
		return nil, fmt.Errorf("get public key %s: %w", keyAlias, err)
	}

	pub, err := x509.ParsePKIXPublicKey(result.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	ecPub, ok := pub.(*ecdsa.PublicKey)
	if !ok || ecPub.Curve != elliptic.P256() {
		return nil, fmt.Errorf("public key of %s is not an EC P-256 key", keyAlias)
	}

	keyID := aws.ToString(result.KeyId)
	if id, idErr := ExtractKeyID(keyID); idErr == nil {
		keyID = id
	}

	return &PublicKey{KeyID: keyID, Key: ecPub}, nil
}

// HealthCheck check kms.
func (s *Service) HealthCheck(ctx context.Context) error {
	active, err := s.IsKeyActive(ctx, s.healthCheckKeyID)
	if err != nil {
		return err
	}

	if !active {
		return fmt.Errorf("key %s is not active", s.healthCheckKeyID)
	}

	return nil
}

// ExtractKeyID returns the key id part of a KMS key ARN.
func ExtractKeyID(arn string) (string, error) {
	r := keyARNPattern.FindStringSubmatch(arn)

	const subStringCount = 5

	if len(r) != subStringCount {
		return "", fmt.Errorf("extracting key id from ARN %q failed", arn)
	}

	return r[4], nil
}

// HashKeyID returns the hex encoded SHA-256 of keyID. It is published as the JWK kid.
func HashKeyID(keyID string) string {
	h := sha256.Sum256([]byte(keyID))

	return hex.EncodeToString(h[:])
}

// DERToConcat converts an ASN.1 DER ECDSA signature into the 64 byte r||s form.
func DERToConcat(der []byte) ([]byte, error) {
	signature := ecdsaSignature{}

	rest, err := asn1.Unmarshal(der, &signature)
	if err != nil {
		return nil, fmt.Errorf("unmarshal der signature: %w", err)
	}

	if len(rest) != 0 {
		return nil, errors.New("trailing data after der signature")
	}

	if signature.R == nil || signature.S == nil ||
		len(signature.R.Bytes()) > p256ScalarSize || len(signature.S.Bytes()) > p256ScalarSize {
		return nil, errors.New("invalid P-256 signature values")
	}

	copyPadded := func(source []byte, size int) []byte {
		dest := make([]byte, size)
		copy(dest[size-len(source):], source)

		return dest
	}

	return append(copyPadded(signature.R.Bytes(), p256ScalarSize), copyPadded(signature.S.Bytes(), p256ScalarSize)...), nil
}
