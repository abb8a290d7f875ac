/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

const (
	ttlMinutesPath = "credentialTtlMinutes"
	expiryDatePath = "expiry_date"

	documentDateLayout = "02-01-2006"
)

// ErrInvalidDocument is returned when document data cannot be used to build a credential.
var ErrInvalidDocument = errors.New("invalid document")

// ExpiryCalculator derives the credential expiry from opaque document data.
type ExpiryCalculator struct {
	now func() time.Time
}

// NewExpiryCalculator returns a calculator. A nil clock means time.Now.
func NewExpiryCalculator(now func() time.Time) *ExpiryCalculator {
	if now == nil {
		now = time.Now
	}

	return &ExpiryCalculator{now: now}
}

// Calculate returns now + credentialTtlMinutes, or the expiry_date of a driving licence at
// midnight UTC.
func (c *ExpiryCalculator) Calculate(doc *Document) (time.Time, error) {
	t, err := ParseType(doc.VCType)
	if err != nil {
		return time.Time{}, err
	}

	if t == TypeMobileDrivingLicence {
		v := gjson.GetBytes(doc.Data, expiryDatePath)
		if v.Type != gjson.String {
			return time.Time{}, fmt.Errorf("%w: %s is missing", ErrInvalidDocument, expiryDatePath)
		}

		expiry, err := time.Parse(documentDateLayout, v.String())
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, expiryDatePath, err)
		}

		return expiry.UTC(), nil
	}

	ttl, ok := TTL(doc)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %s is missing", ErrInvalidDocument, ttlMinutesPath)
	}

	return c.now().UTC().Truncate(time.Second).Add(ttl), nil
}

// TTL returns credentialTtlMinutes when the document carries a positive value.
func TTL(doc *Document) (time.Duration, bool) {
	v := gjson.GetBytes(doc.Data, ttlMinutesPath)
	if !v.Exists() {
		return 0, false
	}

	var minutes int64

	switch v.Type { //nolint:exhaustive
	case gjson.Number:
		minutes = v.Int()
	case gjson.String:
		// some document producers quote numbers.
		if !gjson.Valid(v.Str) {
			return 0, false
		}

		minutes = gjson.Parse(v.Str).Int()
	default:
		return 0, false
	}

	if minutes <= 0 {
		return 0, false
	}

	return time.Duration(minutes) * time.Minute, true
}
