/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cborutil_test

import (
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/credential-issuer/pkg/mdoc/cborutil"
)

func TestFullDate(t *testing.T) {
	t.Run("encodes as tag 1004", func(t *testing.T) {
		d, err := cborutil.ParseDocumentDate("05-03-1985")
		require.NoError(t, err)
		require.Equal(t, "1985-03-05", d.String())

		b, err := cborutil.Marshal(d)
		require.NoError(t, err)

		// 0xd9 0x03 0xec is tag(1004), 0x6a is a 10 byte text string.
		require.Equal(t, []byte{0xd9, 0x03, 0xec, 0x6a}, b[:4])
		require.Equal(t, "1985-03-05", string(b[4:]))
	})

	t.Run("round trip", func(t *testing.T) {
		d := cborutil.NewFullDate(time.Date(2030, time.December, 31, 17, 45, 0, 0, time.UTC))

		b, err := cborutil.Marshal(d)
		require.NoError(t, err)

		var decoded cborutil.FullDate
		require.NoError(t, cborutil.Unmarshal(b, &decoded))
		require.True(t, d.Time().Equal(decoded.Time()))
	})

	t.Run("wrong tag", func(t *testing.T) {
		b, err := cbor.Marshal(cbor.Tag{Number: 1, Content: "1985-03-05"})
		require.NoError(t, err)

		var decoded cborutil.FullDate
		require.ErrorContains(t, cborutil.Unmarshal(b, &decoded), "expected tag 1004, got 1")
	})

	t.Run("invalid document date", func(t *testing.T) {
		_, err := cborutil.ParseDocumentDate("1985-03-05")
		require.ErrorContains(t, err, `parse date "1985-03-05"`)
	})
}

func TestDateTime(t *testing.T) {
	t.Run("encodes as tag 0 at whole seconds", func(t *testing.T) {
		loc := time.FixedZone("X", 3600)
		d := cborutil.NewDateTime(time.Date(2024, time.June, 1, 13, 4, 5, 999_000_000, loc))
		require.Equal(t, "2024-06-01T12:04:05Z", d.String())

		b, err := cborutil.Marshal(d)
		require.NoError(t, err)

		// 0xc0 is tag(0), 0x74 is a 20 byte text string.
		require.Equal(t, []byte{0xc0, 0x74}, b[:2])
		require.Equal(t, "2024-06-01T12:04:05Z", string(b[2:]))
	})

	t.Run("round trip", func(t *testing.T) {
		d := cborutil.NewDateTime(time.Now())

		b, err := cborutil.Marshal(d)
		require.NoError(t, err)

		var decoded cborutil.DateTime
		require.NoError(t, cborutil.Unmarshal(b, &decoded))
		require.True(t, d.Time().Equal(decoded.Time()))
	})
}

func TestEmbeddedCBOR(t *testing.T) {
	type payload struct {
		B string `cbor:"b"`
		A int    `cbor:"a"`
	}

	e, err := cborutil.Embed(payload{B: "x", A: 1})
	require.NoError(t, err)

	b, err := cborutil.Marshal(e)
	require.NoError(t, err)

	// tag(24) followed by a byte string.
	require.Equal(t, byte(0xd8), b[0])
	require.Equal(t, byte(24), b[1])
	require.Equal(t, byte(0x40), b[2]&0xe0)

	var decoded cborutil.EmbeddedCBOR
	require.NoError(t, cborutil.Unmarshal(b, &decoded))
	require.Equal(t, e, decoded)

	var p payload
	require.NoError(t, decoded.Decode(&p))
	require.Equal(t, payload{B: "x", A: 1}, p)

	// declaration order is kept: "b" before "a".
	require.Equal(t, []byte{0xa2, 0x61, 'b', 0x61, 'x', 0x61, 'a', 0x01}, []byte(e))
}

func TestMarshalCanonical(t *testing.T) {
	b, err := cborutil.MarshalCanonical(map[uint32]int{300: 3, 2: 1, 25: 2})
	require.NoError(t, err)

	require.Equal(t, []byte{
		0xa3,
		0x02, 0x01,
		0x18, 0x19, 0x02,
		0x19, 0x01, 0x2c, 0x03,
	}, b)
}

func TestUnmarshalRejectsIndefiniteLength(t *testing.T) {
	var v map[string]int

	err := cborutil.Unmarshal([]byte{0xbf, 0x61, 'a', 0x01, 0xff}, &v)
	require.Error(t, err)
}
