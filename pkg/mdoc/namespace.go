/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

const randomBytesLength = 16

// EncodedItem is an item together with the exact bytes that are embedded and digested.
type EncodedItem struct {
	Item  IssuerSignedItem
	Bytes cborutil.EmbeddedCBOR
}

// Namespace is a named, ordered group of items.
type Namespace struct {
	Name  string
	Items []EncodedItem
}

// Namespaces keeps namespaces in the order they were first written to.
type Namespaces []Namespace

// Names returns the namespace names in order.
func (n Namespaces) Names() []string {
	return lo.Map(n, func(ns Namespace, _ int) string { return ns.Name })
}

// DigestIDs returns every digest id in item order.
func (n Namespaces) DigestIDs() []uint32 {
	var ids []uint32

	for _, ns := range n {
		for _, item := range ns.Items {
			ids = append(ids, item.Item.DigestID)
		}
	}

	return ids
}

// IssuerNameSpaces returns the embedded items keyed by namespace.
func (n Namespaces) IssuerNameSpaces() IssuerNameSpaces {
	out := make(IssuerNameSpaces, len(n))

	for _, ns := range n {
		out[ns.Name] = lo.Map(ns.Items, func(item EncodedItem, _ int) cborutil.EmbeddedCBOR { return item.Bytes })
	}

	return out
}

// NamespaceBuilder turns data elements into issuer signed items. The first error stops the
// builder and is returned by Build.
type NamespaceBuilder struct {
	seq        *DigestIDSequence
	random     io.Reader
	namespaces Namespaces
	index      map[string]int
	err        error
}

// NamespaceBuilderOpt configures a NamespaceBuilder.
type NamespaceBuilderOpt func(b *NamespaceBuilder)

// WithRandom sets the source of the per-item random salt.
func WithRandom(r io.Reader) NamespaceBuilderOpt {
	return func(b *NamespaceBuilder) { b.random = r }
}

// NewNamespaceBuilder returns a builder drawing digest ids from seq.
func NewNamespaceBuilder(seq *DigestIDSequence, opts ...NamespaceBuilderOpt) *NamespaceBuilder {
	b := &NamespaceBuilder{
		seq:    seq,
		random: rand.Reader,
		index:  map[string]int{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Add appends an element to namespace ns.
func (b *NamespaceBuilder) Add(ns, identifier string, value interface{}) *NamespaceBuilder {
	if b.err != nil {
		return b
	}

	salt := make([]byte, randomBytesLength)

	if _, err := io.ReadFull(b.random, salt); err != nil {
		b.err = fmt.Errorf("%w: random salt for %s: %w", ErrMdocBuild, identifier, err)

		return b
	}

	item := IssuerSignedItem{
		DigestID:          b.seq.Next(),
		Random:            salt,
		ElementIdentifier: identifier,
		ElementValue:      value,
	}

	encoded, err := cborutil.Embed(item)
	if err != nil {
		b.err = fmt.Errorf("%w: encode %s: %w", ErrMdocBuild, identifier, err)

		return b
	}

	i, ok := b.index[ns]
	if !ok {
		i = len(b.namespaces)
		b.index[ns] = i
		b.namespaces = append(b.namespaces, Namespace{Name: ns})
	}

	b.namespaces[i].Items = append(b.namespaces[i].Items, EncodedItem{Item: item, Bytes: encoded})

	return b
}

// AddIfPresent appends the element only when value is not nil.
func (b *NamespaceBuilder) AddIfPresent(ns, identifier string, value interface{}) *NamespaceBuilder {
	if lo.IsNil(value) {
		return b
	}

	return b.Add(ns, identifier, value)
}

// Build returns the namespaces built so far.
func (b *NamespaceBuilder) Build() (Namespaces, error) {
	if b.err != nil {
		return nil, b.err
	}

	return b.namespaces, nil
}
