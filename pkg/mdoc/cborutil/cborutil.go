/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package cborutil holds the CBOR encoding rules used by mdoc structures.
//
// Structs keep their declaration order. Go maps are written in canonical (length first)
// key order so that the same input always produces the same bytes. Every map and array
// is written with a definite length.
package cborutil

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR tag numbers.
const (
	TagDateTime     = 0
	TagEmbeddedCBOR = 24
	TagFullDate     = 1004
)

// nolint: gochecknoglobals
var (
	encMode       cbor.EncMode
	canonicalMode cbor.EncMode
	decMode       cbor.DecMode
)

func init() { //nolint:gochecknoinits
	var err error

	encMode, err = cbor.EncOptions{
		Sort:        cbor.SortNone,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("create cbor enc mode: %v", err))
	}

	canonicalMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("create canonical cbor enc mode: %v", err))
	}

	decMode, err = cbor.DecOptions{
		IndefLength: cbor.IndefLengthForbidden,
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("create cbor dec mode: %v", err))
	}
}

// Marshal encodes v keeping struct field declaration order.
func Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// MarshalCanonical encodes v with map keys in canonical order.
func MarshalCanonical(v interface{}) ([]byte, error) {
	return canonicalMode.Marshal(v)
}

// Unmarshal decodes data into v. Indefinite-length items and duplicate map keys are rejected.
func Unmarshal(data []byte, v interface{}) error {
	return decMode.Unmarshal(data, v)
}
