/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination builder_mocks_test.go -self_package mocks -package jwtvc_test -source=builder.go -mock_names signingService=MockSigningService

// Package jwtvc builds W3C verifiable credentials secured as ES256 JWTs.
package jwtvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credential-issuer/internal/logfields"
	"github.com/trustbloc/credential-issuer/pkg/credential"
	"github.com/trustbloc/credential-issuer/pkg/kms/aws"
	"github.com/trustbloc/credential-issuer/pkg/kms/signer"
)

var logger = log.New("credential-jwtvc")

// ErrSigning is returned when the credential JWT cannot be signed.
var ErrSigning = errors.New("jwt credential signing failed")

const (
	vcContextV2            = "https://www.w3.org/ns/credentials/v2"
	verifiableCredential   = "VerifiableCredential"
	didWebPrefix           = "did:web:"
	validityTimeLayout     = time.RFC3339
	defaultCredentialTTL   = 365 * 24 * time.Hour
	socialSecurityName     = "National Insurance number"
	basicDisclosureName    = "Basic DBS check result"
	digitalVeteranCardName = "HM Armed Forces Veteran Card"
)

type signingService interface {
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

// Display is the optional name and description written into a credential.
type Display struct {
	Name        string
	Description string
}

// DefaultDisplay returns the display names of the JWT credential types.
func DefaultDisplay() map[credential.Type]Display {
	return map[credential.Type]Display{
		credential.TypeSocialSecurity:     {Name: socialSecurityName},
		credential.TypeBasicDisclosure:    {Name: basicDisclosureName},
		credential.TypeDigitalVeteranCard: {Name: digitalVeteranCardName},
	}
}

// Config configures the JWT credential builder.
type Config struct {
	DIDController string
	SigningKeyID  string
	KMS           signingService
	Display       map[credential.Type]Display
	// Now defaults to time.Now.
	Now func() time.Time
}

// Builder issues the JWT credential types.
type Builder struct {
	issuerDID    string
	signingKeyID string
	kid          string
	kms          signingService
	display      map[credential.Type]Display
	now          func() time.Time
}

// NewBuilder returns a Builder signing with the configured KMS key.
func NewBuilder(cfg *Config) *Builder {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	display := cfg.Display
	if display == nil {
		display = DefaultDisplay()
	}

	issuerDID := didWebPrefix + cfg.DIDController

	return &Builder{
		issuerDID:    issuerDID,
		signingKeyID: cfg.SigningKeyID,
		kid:          issuerDID + "#" + aws.HashKeyID(cfg.SigningKeyID),
		kms:          cfg.KMS,
		display:      display,
		now:          now,
	}
}

// vcClaims carries the credential in the "vc" claim next to the registered JWT claims.
type vcClaims struct {
	jwt.Claims

	VC *vcPayload `json:"vc"`
}

type vcPayload struct {
	Context           []string    `json:"@context"`
	Type              []string    `json:"type"`
	Issuer            string      `json:"issuer"`
	Name              string      `json:"name,omitempty"`
	Description       string      `json:"description,omitempty"`
	ValidFrom         string      `json:"validFrom"`
	ValidUntil        string      `json:"validUntil"`
	CredentialSubject interface{} `json:"credentialSubject"`
}

// Supports reports whether t is issued as a JWT.
func (b *Builder) Supports(t credential.Type) bool {
	_, ok := subjectMappers[t]

	return ok
}

// Build returns the compact serialized credential JWT.
func (b *Builder) Build(ctx context.Context, req *credential.BuildRequest) (string, error) {
	vcType, err := credential.ParseType(req.Document.VCType)
	if err != nil {
		return "", err
	}

	mapSubject, ok := subjectMappers[vcType]
	if !ok {
		return "", fmt.Errorf("%w: %s is not a jwt credential", credential.ErrUnsupportedCredentialType, vcType)
	}

	subject, err := mapSubject(req.Document.Data, req.Proof.DidKey)
	if err != nil {
		return "", err
	}

	now := b.now().UTC().Truncate(time.Second)

	expiry := req.Expiry
	if expiry.IsZero() {
		expiry = now.Add(defaultCredentialTTL)
	}

	display := b.display[vcType]

	claims := &vcClaims{
		Claims: jwt.Claims{
			Issuer:    b.issuerDID,
			Subject:   req.Proof.DidKey,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Expiry:    jwt.NewNumericDate(expiry),
		},
		VC: &vcPayload{
			Context:           []string{vcContextV2},
			Type:              []string{verifiableCredential, vcType.String()},
			Issuer:            b.issuerDID,
			Name:              display.Name,
			Description:       display.Description,
			ValidFrom:         now.Format(validityTimeLayout),
			ValidUntil:        expiry.UTC().Format(validityTimeLayout),
			CredentialSubject: subject,
		},
	}

	token, err := signer.SignJWT(ctx, b.kms, b.signingKeyID, b.kid, claims)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}

	logger.Debugc(ctx, "JWT credential issued",
		logfields.WithVCType(vcType.String()),
		logfields.WithDocumentID(req.Document.DocumentID))

	return token, nil
}
