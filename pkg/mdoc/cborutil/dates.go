/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cborutil

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
)

const (
	fullDateLayout = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05Z"

	// DocumentDateLayout is the dd-MM-yyyy layout used by document store payloads.
	DocumentDateLayout = "02-01-2006"
)

// FullDate is a calendar date written as #6.1004("YYYY-MM-DD").
type FullDate time.Time

// NewFullDate drops the time of day from t.
func NewFullDate(t time.Time) FullDate {
	return FullDate(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDocumentDate parses a dd-MM-yyyy string.
func ParseDocumentDate(s string) (FullDate, error) {
	t, err := time.Parse(DocumentDateLayout, s)
	if err != nil {
		return FullDate{}, fmt.Errorf("parse date %q: %w", s, err)
	}

	return NewFullDate(t), nil
}

// Time returns the date as a UTC midnight time.
func (d FullDate) Time() time.Time {
	return time.Time(d)
}

func (d FullDate) String() string {
	return time.Time(d).Format(fullDateLayout)
}

// MarshalCBOR implements cbor.Marshaler.
func (d FullDate) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(cbor.Tag{Number: TagFullDate, Content: d.String()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *FullDate) UnmarshalCBOR(data []byte) error {
	s, err := unmarshalTaggedString(data, TagFullDate)
	if err != nil {
		return err
	}

	t, err := time.Parse(fullDateLayout, s)
	if err != nil {
		return fmt.Errorf("parse full-date: %w", err)
	}

	*d = FullDate(t)

	return nil
}

// DateTime is an instant written as #6.0(tdate) with whole seconds in UTC.
type DateTime time.Time

// NewDateTime truncates t to seconds.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t.UTC().Truncate(time.Second))
}

// Time returns the instant.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

func (d DateTime) String() string {
	return time.Time(d).UTC().Format(dateTimeLayout)
}

// MarshalCBOR implements cbor.Marshaler.
func (d DateTime) MarshalCBOR() ([]byte, error) {
	return encMode.Marshal(cbor.Tag{Number: TagDateTime, Content: d.String()})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (d *DateTime) UnmarshalCBOR(data []byte) error {
	s, err := unmarshalTaggedString(data, TagDateTime)
	if err != nil {
		return err
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse date-time: %w", err)
	}

	*d = NewDateTime(t)

	return nil
}

func unmarshalTaggedString(data []byte, tag uint64) (string, error) {
	var raw cbor.RawTag

	if err := decMode.Unmarshal(data, &raw); err != nil {
		return "", err
	}

	if raw.Number != tag {
		return "", fmt.Errorf("expected tag %d, got %d", tag, raw.Number)
	}

	var s string

	if err := decMode.Unmarshal(raw.Content, &s); err != nil {
		return "", fmt.Errorf("tag %d content: %w", tag, err)
	}

	return s, nil
}
