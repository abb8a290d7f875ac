/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package authorization

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/trustbloc/credential-issuer/pkg/didkey"
)

const (
	// ProofType is the typ header of a proof JWT.
	ProofType = "openid4vci-proof+jwt"

	// WalletIssuer is the iss of every proof JWT.
	WalletIssuer = "urn:fdc:gov:uk:wallet"
)

// ErrProofValidation is returned for a proof JWT that fails verification.
var ErrProofValidation = errors.New("proof jwt validation failed")

// ProofData is what the issuer needs from a verified proof JWT.
type ProofData struct {
	DidKey    string
	Nonce     string
	PublicKey *ecdsa.PublicKey
}

// ProofVerifier verifies proof JWTs signed by the wallet key named in their kid.
type ProofVerifier struct {
	audience string
	now      func() time.Time
}

// NewProofVerifier returns a ProofVerifier expecting selfURL as aud. A nil now means time.Now.
func NewProofVerifier(selfURL string, now func() time.Time) *ProofVerifier {
	if now == nil {
		now = time.Now
	}

	return &ProofVerifier{audience: selfURL, now: now}
}

type proofPayload struct {
	Nonce interface{} `json:"nonce"`
}

// Verify checks the header, claims and signature of token. The kid must be a did:key.
func (v *ProofVerifier) Verify(token string) (*ProofData, error) {
	parsed, header, err := parseAndCheckHeader(token, ProofType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProofValidation, err)
	}

	err = checkClaims(parsed, []string{"iss", "aud", "iat", "nonce"}, WalletIssuer, v.audience, v.now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProofValidation, err)
	}

	pub, err := didkey.ResolvePublicKey(header.KeyID)
	if err != nil {
		return nil, fmt.Errorf("%w: error getting public key from did:key [%s]: %w",
			ErrProofValidation, header.KeyID, err)
	}

	var payload proofPayload

	if err = parsed.Claims(pub, &payload); err != nil {
		return nil, fmt.Errorf("%w: proof JWT signature verification failed: %w", ErrProofValidation, err)
	}

	nonce, ok := payload.Nonce.(string)
	if !ok {
		return nil, fmt.Errorf("%w: extract proof JWT data: nonce claim is not a string", ErrProofValidation)
	}

	return &ProofData{DidKey: header.KeyID, Nonce: nonce, PublicKey: pub}, nil
}
