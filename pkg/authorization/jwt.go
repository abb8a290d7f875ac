/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package authorization verifies the access token and the proof of possession JWT presented by a wallet.
package authorization

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/go-jose/go-jose/v3/jwt"
	"github.com/samber/lo"
)

const (
	expectedAlgorithm = string(jose.ES256)
	clockSkew         = time.Minute
)

// parseAndCheckHeader parses a compact JWS and checks alg, kid and typ.
func parseAndCheckHeader(token, expectedType string) (*jwt.JSONWebToken, *jose.Header, error) {
	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, nil, fmt.Errorf("parse jwt: %w", err)
	}

	if len(parsed.Headers) != 1 {
		return nil, nil, fmt.Errorf("jwt must have exactly one signature, got %d", len(parsed.Headers))
	}

	h := parsed.Headers[0]

	if h.Algorithm != expectedAlgorithm {
		return nil, nil, fmt.Errorf("JWT alg header claim [%s] does not match expected alg [%s]",
			h.Algorithm, expectedAlgorithm)
	}

	if h.KeyID == "" {
		return nil, nil, errors.New("JWT kid header claim is missing")
	}

	typ, _ := h.ExtraHeaders[jose.HeaderType].(string)
	if typ != expectedType {
		return nil, nil, fmt.Errorf("JWT typ header claim [%s] does not match expected typ [%s]",
			typ, expectedType)
	}

	return parsed, &h, nil
}

// checkClaims checks presence of the required claims, the literal iss and aud values, and the time window.
func checkClaims(
	parsed *jwt.JSONWebToken,
	required []string,
	issuer, audience string,
	now time.Time,
) error {
	var raw map[string]interface{}

	if err := parsed.UnsafeClaimsWithoutVerification(&raw); err != nil {
		return fmt.Errorf("decode claims: %w", err)
	}

	missing := lo.Filter(required, func(c string, _ int) bool {
		_, ok := raw[c]

		return !ok
	})

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("JWT missing required claims: %v", missing)
	}

	var std jwt.Claims

	if err := parsed.UnsafeClaimsWithoutVerification(&std); err != nil {
		return fmt.Errorf("decode registered claims: %w", err)
	}

	if std.Issuer != issuer {
		return fmt.Errorf("JWT iss claim has value [%s], must be [%s]", std.Issuer, issuer)
	}

	if !std.Audience.Contains(audience) {
		return fmt.Errorf("JWT aud claim has value %v, must be [%s]", []string(std.Audience), audience)
	}

	if err := std.ValidateWithLeeway(jwt.Expected{Time: now}, clockSkew); err != nil {
		return fmt.Errorf("JWT time claims: %w", err)
	}

	return nil
}
