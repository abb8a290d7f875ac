/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination accesstoken_mocks_test.go -self_package mocks -package authorization_test -source=accesstoken.go -mock_names keyProvider=MockKeyProvider

package authorization

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"errors"
	"fmt"
	"time"

	"github.com/go-jose/go-jose/v3"
)

const (
	// AccessTokenType is the typ header of an access token.
	AccessTokenType = "at+jwt"

	claimCredentialIdentifiers = "credential_identifiers"
	claimCNonce                = "c_nonce"
)

// ErrAccessTokenValidation is returned for an access token that fails verification.
var ErrAccessTokenValidation = errors.New("access token validation failed")

type keyProvider interface {
	GetKey(ctx context.Context, kid string) (*jose.JSONWebKey, error)
}

// AccessTokenClaims are the values the issuer needs from a verified access token.
type AccessTokenClaims struct {
	WalletSubjectID      string
	Nonce                string
	CredentialIdentifier string
}

// AccessTokenConfig configures an AccessTokenVerifier.
type AccessTokenConfig struct {
	// AuthServerURL is the expected iss.
	AuthServerURL string
	// SelfURL is the expected aud.
	SelfURL string
	Keys    keyProvider
	Now     func() time.Time
}

// AccessTokenVerifier verifies access tokens signed by the authorization server.
type AccessTokenVerifier struct {
	issuer   string
	audience string
	keys     keyProvider
	now      func() time.Time
}

// NewAccessTokenVerifier returns an AccessTokenVerifier.
func NewAccessTokenVerifier(cfg *AccessTokenConfig) *AccessTokenVerifier {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &AccessTokenVerifier{
		issuer:   cfg.AuthServerURL,
		audience: cfg.SelfURL,
		keys:     cfg.Keys,
		now:      now,
	}
}

type accessTokenPayload struct {
	Subject               interface{} `json:"sub"`
	CNonce                interface{} `json:"c_nonce"`
	CredentialIdentifiers interface{} `json:"credential_identifiers"`
}

// Verify checks the header, claims and signature of token and extracts its claims.
func (v *AccessTokenVerifier) Verify(ctx context.Context, token string) (*AccessTokenClaims, error) {
	parsed, header, err := parseAndCheckHeader(token, AccessTokenType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccessTokenValidation, err)
	}

	err = checkClaims(parsed, []string{"sub", claimCNonce, claimCredentialIdentifiers, "iss", "aud"},
		v.issuer, v.audience, v.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccessTokenValidation, err)
	}

	pub, err := v.verificationKey(ctx, header.KeyID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAccessTokenValidation, err)
	}

	var payload accessTokenPayload

	if err = parsed.Claims(pub, &payload); err != nil {
		return nil, fmt.Errorf("%w: access token signature verification failed: %w", ErrAccessTokenValidation, err)
	}

	claims, err := extractAccessTokenClaims(&payload)
	if err != nil {
		return nil, fmt.Errorf("%w: extract access token data: %w", ErrAccessTokenValidation, err)
	}

	return claims, nil
}

func (v *AccessTokenVerifier) verificationKey(ctx context.Context, kid string) (*ecdsa.PublicKey, error) {
	jwk, err := v.keys.GetKey(ctx, kid)
	if err != nil {
		return nil, fmt.Errorf("get jwk %s: %w", kid, err)
	}

	if jwk.Algorithm != "" && jwk.Algorithm != expectedAlgorithm {
		return nil, fmt.Errorf("JWK alg claim [%s] does not match expected alg [%s]", jwk.Algorithm, expectedAlgorithm)
	}

	pub, ok := jwk.Key.(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.New("JWK key type is not EC")
	}

	if pub.Curve != elliptic.P256() {
		return nil, errors.New("JWK curve does not match expected curve for ES256")
	}

	return pub, nil
}

func extractAccessTokenClaims(p *accessTokenPayload) (*AccessTokenClaims, error) {
	sub, ok := p.Subject.(string)
	if !ok {
		return nil, errors.New("sub claim is not a string")
	}

	nonce, ok := p.CNonce.(string)
	if !ok {
		return nil, fmt.Errorf("%s claim is not a string", claimCNonce)
	}

	ids, ok := p.CredentialIdentifiers.([]interface{})
	if !ok || len(ids) == 0 {
		return nil, fmt.Errorf("%s claim must be a non-empty list", claimCredentialIdentifiers)
	}

	first, ok := ids[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s claim must contain strings", claimCredentialIdentifiers)
	}

	return &AccessTokenClaims{WalletSubjectID: sub, Nonce: nonce, CredentialIdentifier: first}, nil
}
