/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"time"
)

// Document is a record held by the document store.
type Document struct {
	ItemID     string          `json:"itemId"`
	DocumentID string          `json:"documentId"`
	VCType     string          `json:"vcType"`
	Data       json.RawMessage `json:"data"`
}

// Proof identifies the holder key the credential is bound to.
type Proof struct {
	DidKey    string
	PublicKey *ecdsa.PublicKey
}

// StatusListEntry locates a credential in a status list.
type StatusListEntry struct {
	Idx int    `json:"idx"`
	URI string `json:"uri"`
}

// BuildRequest carries the inputs of a credential builder.
type BuildRequest struct {
	Document *Document
	Proof    *Proof
	Status   *StatusListEntry
	Expiry   time.Time
}

// Builder issues one credential type.
type Builder interface {
	Supports(t Type) bool
	Build(ctx context.Context, req *BuildRequest) (string, error)
}
