/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/sha256"
	"fmt"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

// ComputeValueDigests hashes the tag 24 embedding of every item.
func ComputeValueDigests(namespaces Namespaces) (ValueDigests, error) {
	digests := make(ValueDigests, len(namespaces))

	for _, ns := range namespaces {
		ids := make(DigestIDs, len(ns.Items))

		for _, item := range ns.Items {
			digest, err := itemDigest(item.Bytes)
			if err != nil {
				return nil, fmt.Errorf("%w: digest %s/%s: %w",
					ErrMdocBuild, ns.Name, item.Item.ElementIdentifier, err)
			}

			if _, dup := ids[item.Item.DigestID]; dup {
				return nil, fmt.Errorf("%w: duplicate digest id %d in %s", ErrMdocBuild, item.Item.DigestID, ns.Name)
			}

			ids[item.Item.DigestID] = digest
		}

		digests[ns.Name] = ids
	}

	return digests, nil
}

func itemDigest(itemBytes cborutil.EmbeddedCBOR) ([]byte, error) {
	tagged, err := cborutil.Marshal(itemBytes)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(tagged)

	return sum[:], nil
}
