/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/multiformats/go-multibase"
)

const (
	// Prefix of every did:key identifier.
	Prefix = "did:key:"

	// P256PubCodec is the multicodec header of a compressed P-256 public key.
	P256PubCodec = "1200"

	compressedKeyLength  = 33
	multibaseBase58BTC   = 'z'
	compressedEvenMarker = 0x02
	compressedOddMarker  = 0x03
)

// ErrInvalidDidKey is returned for any malformed or unsupported did:key.
var ErrInvalidDidKey = errors.New("invalid did:key")

// nolint: gochecknoglobals
var p256Header = mustVarintHeader(P256PubCodec)

func mustVarintHeader(codec string) []byte {
	varintHex, err := MulticodecToVarintHex(codec)
	if err != nil {
		panic(err)
	}

	header, err := hex.DecodeString(varintHex)
	if err != nil {
		panic(err)
	}

	return header[:len(header):len(header)]
}

// DecodedKey is the result of decoding a did:key.
type DecodedKey struct {
	Codec        string
	RawPublicKey []byte
}

// Decode extracts the compressed P-256 point carried by a did:key identifier.
func Decode(didKey string) (*DecodedKey, error) {
	if !strings.HasPrefix(didKey, Prefix) {
		return nil, fmt.Errorf("%w: missing %q prefix", ErrInvalidDidKey, Prefix)
	}

	mb := strings.TrimPrefix(didKey, Prefix)
	if mb == "" {
		return nil, fmt.Errorf("%w: empty multibase value", ErrInvalidDidKey)
	}

	if r, _ := utf8.DecodeRuneInString(mb); r != multibaseBase58BTC {
		return nil, fmt.Errorf("%w: multibase prefix %q is not base58-btc", ErrInvalidDidKey, r)
	}

	decoded, err := Base58Decode(mb[1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDidKey, err)
	}

	if !bytes.HasPrefix(decoded, p256Header) {
		return nil, fmt.Errorf("%w: unsupported multicodec, expected P-256 public key (%s)",
			ErrInvalidDidKey, P256PubCodec)
	}

	raw := decoded[len(p256Header):]
	if len(raw) != compressedKeyLength {
		return nil, fmt.Errorf("%w: expected key length %d, got %d",
			ErrInvalidDidKey, compressedKeyLength, len(raw))
	}

	return &DecodedKey{
		Codec:        P256PubCodec,
		RawPublicKey: raw,
	}, nil
}

// PublicKeyFromCompressed decompresses a 33 byte SEC1 point on P-256.
func PublicKeyFromCompressed(b []byte) (*ecdsa.PublicKey, error) {
	if len(b) != compressedKeyLength {
		return nil, fmt.Errorf("compressed key must be %d bytes, got %d", compressedKeyLength, len(b))
	}

	if b[0] != compressedEvenMarker && b[0] != compressedOddMarker {
		return nil, fmt.Errorf("invalid compressed point marker 0x%02x", b[0])
	}

	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), b)
	if x == nil {
		return nil, errors.New("point is not on curve P-256")
	}

	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// ResolvePublicKey decodes a did:key and returns its P-256 public key.
func ResolvePublicKey(didKey string) (*ecdsa.PublicKey, error) {
	decoded, err := Decode(didKey)
	if err != nil {
		return nil, err
	}

	pub, err := PublicKeyFromCompressed(decoded.RawPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDidKey, err)
	}

	return pub, nil
}

// Encode builds the did:key identifier of a P-256 public key.
func Encode(pub *ecdsa.PublicKey) (string, error) {
	if pub == nil || pub.Curve != elliptic.P256() {
		return "", errors.New("only P-256 public keys are supported")
	}

	payload := append(p256Header, elliptic.MarshalCompressed(pub.Curve, pub.X, pub.Y)...)

	mb, err := multibase.Encode(multibase.Base58BTC, payload)
	if err != nil {
		return "", fmt.Errorf("multibase encode: %w", err)
	}

	return Prefix + mb, nil
}
