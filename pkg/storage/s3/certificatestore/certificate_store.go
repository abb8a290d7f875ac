/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certificatestore

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const certificateObjectName = "certificate.pem"

// ErrDataNotFound is returned when the bucket has no certificate for the id.
var ErrDataNotFound = errors.New("certificate not found")

type s3Reader interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store reads PEM certificates kept under <id>/certificate.pem.
type Store struct {
	s3Client s3Reader
	bucket   string
}

// NewStore creates Store.
func NewStore(s3Client s3Reader, bucket string) *Store {
	return &Store{
		s3Client: s3Client,
		bucket:   bucket,
	}
}

// GetCertificate returns the certificate stored for id.
func (p *Store) GetCertificate(ctx context.Context, id string) (*x509.Certificate, error) {
	res, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(path.Join(id, certificateObjectName)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, fmt.Errorf("%w: %s", ErrDataNotFound, id)
		}

		return nil, fmt.Errorf("failed to get certificate from S3: %w", err)
	}

	defer func() {
		_ = res.Body.Close()
	}()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read certificate body: %w", err)
	}

	block, _ := pem.Decode(b)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("certificate %s is not a PEM encoded certificate", id)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate %s: %w", id, err)
	}

	return cert, nil
}
