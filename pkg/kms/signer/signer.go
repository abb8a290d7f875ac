/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signer adapts the KMS signing oracle to the go-jose and go-cose signer interfaces.
package signer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/veraison/go-cose"
)

type signingService interface {
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}

// COSESigner is a cose.Signer backed by KMS. It signs ES256 only.
type COSESigner struct {
	ctx   context.Context
	svc   signingService
	keyID string
}

// NewCOSESigner returns a cose.Signer that signs with keyID. ctx bounds every KMS call.
func NewCOSESigner(ctx context.Context, svc signingService, keyID string) *COSESigner {
	return &COSESigner{ctx: ctx, svc: svc, keyID: keyID}
}

// Algorithm implements cose.Signer.
func (s *COSESigner) Algorithm() cose.Algorithm {
	return cose.AlgorithmES256
}

// Sign implements cose.Signer. content is the encoded Sig_structure.
func (s *COSESigner) Sign(_ io.Reader, content []byte) ([]byte, error) {
	digest := sha256.Sum256(content)

	return s.svc.Sign(s.ctx, s.keyID, digest[:])
}

// JOSESigner is a jose.OpaqueSigner backed by KMS. It signs ES256 only.
type JOSESigner struct {
	ctx   context.Context
	svc   signingService
	keyID string
	kid   string
}

// NewJOSESigner returns a jose.OpaqueSigner that signs with keyID and announces kid in the JWS header.
func NewJOSESigner(ctx context.Context, svc signingService, keyID, kid string) *JOSESigner {
	return &JOSESigner{ctx: ctx, svc: svc, keyID: keyID, kid: kid}
}

// Public implements jose.OpaqueSigner. Only the key id and algorithm are known.
func (s *JOSESigner) Public() *jose.JSONWebKey {
	return &jose.JSONWebKey{
		KeyID:     s.kid,
		Algorithm: string(jose.ES256),
		Use:       "sig",
	}
}

// Algs implements jose.OpaqueSigner.
func (s *JOSESigner) Algs() []jose.SignatureAlgorithm {
	return []jose.SignatureAlgorithm{jose.ES256}
}

// SignPayload implements jose.OpaqueSigner.
func (s *JOSESigner) SignPayload(payload []byte, alg jose.SignatureAlgorithm) ([]byte, error) {
	if alg != jose.ES256 {
		return nil, fmt.Errorf("unsupported signature algorithm %s", alg)
	}

	digest := sha256.Sum256(payload)

	return s.svc.Sign(s.ctx, s.keyID, digest[:])
}

// SignJWT signs claims as a compact ES256 JWT with typ JWT and the given kid.
func SignJWT(ctx context.Context, svc signingService, keyID, kid string, claims ...interface{}) (string, error) {
	jwsSigner, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.ES256, Key: NewJOSESigner(ctx, svc, keyID, kid)},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", fmt.Errorf("create jws signer: %w", err)
	}

	builder := jwt.Signed(jwsSigner)
	for _, c := range claims {
		builder = builder.Claims(c)
	}

	return builder.CompactSerialize()
}
