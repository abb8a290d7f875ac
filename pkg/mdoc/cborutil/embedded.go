/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cborutil

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// EmbeddedCBOR holds already encoded CBOR that is written as #6.24(bstr).
type EmbeddedCBOR []byte

// Embed encodes v and wraps the result for tag 24 embedding.
func Embed(v interface{}) (EmbeddedCBOR, error) {
	b, err := Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode embedded value: %w", err)
	}

	return b, nil
}

// MarshalCBOR implements cbor.Marshaler.
func (e EmbeddedCBOR) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(cbor.Tag{Number: TagEmbeddedCBOR, Content: []byte(e)})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (e *EmbeddedCBOR) UnmarshalCBOR(data []byte) error {
	var raw cbor.RawTag

	if err := decMode.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Number != TagEmbeddedCBOR {
		return fmt.Errorf("expected tag %d, got %d", TagEmbeddedCBOR, raw.Number)
	}

	var content []byte

	if err := decMode.Unmarshal(raw.Content, &content); err != nil {
		return fmt.Errorf("embedded cbor content: %w", err)
	}

	*e = content

	return nil
}

// Decode decodes the embedded bytes into v.
func (e EmbeddedCBOR) Decode(v interface{}) error {
	return Unmarshal(e, v)
}
