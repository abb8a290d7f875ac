/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination did_document_service_mocks_test.go -self_package mocks -package diddocument_test -source=did_document_service.go -mock_names kmsService=MockKMSService

package diddocument

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/kms/aws"
)

var logger = log.New("did-document-service")

const (
	didWebPrefix          = "did:web:"
	verificationKeyType   = "JsonWebKey2020"
	didContextV1          = "https://www.w3.org/ns/did/v1"
	securityJWKContextV1  = "https://www.w3.org/ns/security/jwk/v1"
	publicKeyUseSignature = "sig"
)

// ErrKeyNotActive is returned when the signing key is missing, disabled or scheduled for deletion.
var ErrKeyNotActive = errors.New("signing key is not active")

type kmsService interface {
	IsKeyActive(ctx context.Context, keyAlias string) (bool, error)
	GetPublicKey(ctx context.Context, keyAlias string) (*aws.PublicKey, error)
}

type Config struct {
	DIDController   string
	SigningKeyAlias string
	KMS             kmsService
}

// Document is a did:web DID document.
type Document struct {
	Context            []string              `json:"@context"`
	ID                 string                `json:"id"`
	VerificationMethod []*VerificationMethod `json:"verificationMethod"`
	AssertionMethod    []string              `json:"assertionMethod"`
}

type VerificationMethod struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	Controller   string           `json:"controller"`
	PublicKeyJwk *jose.JSONWebKey `json:"publicKeyJwk"`
}

// Service publishes the issuer signing key as a DID document and as a JWK set.
type Service struct {
	did             string
	signingKeyAlias string
	kms             kmsService
}

func NewService(cfg *Config) *Service {
	return &Service{
		did:             didWebPrefix + cfg.DIDController,
		signingKeyAlias: cfg.SigningKeyAlias,
		kms:             cfg.KMS,
	}
}

// DID returns the did:web identifier of the issuer.
func (s *Service) DID() string {
	return s.did
}

// GetDIDDocument returns the issuer DID document with the signing key as its only assertion method.
func (s *Service) GetDIDDocument(ctx context.Context) (*Document, error) {
	jwk, err := s.activePublicKey(ctx)
	if err != nil {
		return nil, err
	}

	method := &VerificationMethod{
		ID:         s.did + "#" + jwk.KeyID,
		Type:       verificationKeyType,
		Controller: s.did,
		PublicKeyJwk: &jose.JSONWebKey{
			Key:   jwk.Key,
			KeyID: jwk.KeyID,
		},
	}

	return &Document{
		Context:            []string{didContextV1, securityJWKContextV1},
		ID:                 s.did,
		VerificationMethod: []*VerificationMethod{method},
		AssertionMethod:    []string{method.ID},
	}, nil
}

// GetJWKS returns the signing key as a JWK set.
func (s *Service) GetJWKS(ctx context.Context) (*jose.JSONWebKeySet, error) {
	jwk, err := s.activePublicKey(ctx)
	if err != nil {
		return nil, err
	}

	return &jose.JSONWebKeySet{Keys: []jose.JSONWebKey{*jwk}}, nil
}

func (s *Service) activePublicKey(ctx context.Context) (*jose.JSONWebKey, error) {
	active, err := s.kms.IsKeyActive(ctx, s.signingKeyAlias)
	if err != nil {
		return nil, fmt.Errorf("check signing key: %w", err)
	}

	if !active {
		logger.Warnc(ctx, "signing key is not active", logfields.WithKeyID(s.signingKeyAlias))

		return nil, ErrKeyNotActive
	}

	pub, err := s.kms.GetPublicKey(ctx, s.signingKeyAlias)
	if err != nil {
		return nil, err
	}

	return &jose.JSONWebKey{
		Key:       pub.Key,
		KeyID:     aws.HashKeyID(pub.KeyID),
		Algorithm: string(jose.ES256),
		Use:       publicKeyUseSignature,
	}, nil
}
