/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didkey

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// nolint: gochecknoglobals
var base58Indexes = func() [256]int {
	var idx [256]int

	for i := range idx {
		idx[i] = -1
	}

	for i := 0; i < len(base58Alphabet); i++ {
		idx[base58Alphabet[i]] = i
	}

	return idx
}()

// Base58Decode decodes a bitcoin-alphabet base58 string without checksum.
// Every leading '1' becomes a leading zero byte. Error positions count characters, not bytes.
func Base58Decode(input string) ([]byte, error) {
	if input == "" {
		return []byte{}, nil
	}

	value := new(big.Int)
	radix := big.NewInt(int64(len(base58Alphabet)))

	pos := 0

	for _, r := range input {
		digit := -1
		if r < utf8.RuneSelf {
			digit = base58Indexes[r]
		}

		if digit < 0 {
			return nil, fmt.Errorf("Illegal character %c at %d", r, pos) //nolint:stylecheck
		}

		value.Mul(value, radix)
		value.Add(value, big.NewInt(int64(digit)))

		pos++
	}

	zeros := 0
	for zeros < len(input) && input[zeros] == base58Alphabet[0] {
		zeros++
	}

	decoded := value.Bytes()

	out := make([]byte, zeros+len(decoded))
	copy(out[zeros:], decoded)

	return out, nil
}

// MulticodecToVarintHex converts a hex encoded multicodec header (e.g. "1200") into the hex form
// of its unsigned varint encoding (e.g. "8024").
func MulticodecToVarintHex(headerHex string) (string, error) {
	code, err := strconv.ParseUint(headerHex, 16, 64)
	if err != nil {
		return "", fmt.Errorf("parse multicodec header %q: %w", headerHex, err)
	}

	var buf []byte

	for code >= 0x80 {
		buf = append(buf, byte(code&0x7f)|0x80)
		code >>= 7
	}

	buf = append(buf, byte(code))

	return strings.ToLower(hex.EncodeToString(buf)), nil
}
