/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mdoc

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	digestIDUpperBound  = 1 << 30
	incrementLowerBound = 1
	incrementUpperBound = 99
)

// DigestIDSequence hands out strictly increasing digest ids for one document.
// It is not safe for concurrent use; create one per build.
type DigestIDSequence struct {
	current   uint32
	increment uint32
}

// NewDigestIDSequence starts at a random value in [0, 2^30) and steps by a random
// increment in [1, 98].
func NewDigestIDSequence() (*DigestIDSequence, error) {
	start, err := rand.Int(rand.Reader, big.NewInt(digestIDUpperBound))
	if err != nil {
		return nil, fmt.Errorf("%w: digest id start: %w", ErrMdocBuild, err)
	}

	inc, err := rand.Int(rand.Reader, big.NewInt(incrementUpperBound-incrementLowerBound))
	if err != nil {
		return nil, fmt.Errorf("%w: digest id increment: %w", ErrMdocBuild, err)
	}

	return NewDigestIDSequenceFrom(uint32(start.Uint64()), uint32(inc.Uint64())+incrementLowerBound), nil
}

// NewDigestIDSequenceFrom returns a sequence whose first id is start+increment.
func NewDigestIDSequenceFrom(start, increment uint32) *DigestIDSequence {
	if increment == 0 {
		increment = incrementLowerBound
	}

	return &DigestIDSequence{current: start, increment: increment}
}

// Next returns the next digest id.
func (s *DigestIDSequence) Next() uint32 {
	s.current += s.increment

	return s.current
}
