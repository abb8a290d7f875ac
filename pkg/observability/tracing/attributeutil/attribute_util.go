/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"

	"github.com/go-jose/go-jose/v3"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const (
	redacted = "[REDACTED]"
	invalid  = "[INVALID]"
)

// JSON returns attribute with the value marshaled to JSON. Value can be redacted using WithRedacted option.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{
			Key:   attribute.Key(key),
			Value: attribute.Value{},
		}
	}

	for _, path := range op.redacted {
		if gjson.GetBytes(b, path).Exists() {
			b, _ = sjson.SetBytes(b, path, redacted)
		}
	}

	return attribute.String(key, string(b))
}

// JWTHeader returns attribute with the protected header (alg, kid, typ) of a compact JWS. The payload and
// signature are never recorded.
func JWTHeader(key, token string) attribute.KeyValue {
	jws, err := jose.ParseSigned(token)
	if err != nil || len(jws.Signatures) == 0 {
		return attribute.String(key, invalid)
	}

	h := jws.Signatures[0].Protected

	return JSON(key, map[string]interface{}{
		"alg": h.Algorithm,
		"kid": h.KeyID,
		"typ": h.ExtraHeaders[jose.HeaderType],
	})
}

type options struct {
	redacted []string
}

type Opt func(*options)

// WithRedacted returns option that replaces value with [REDACTED] for the given path.
// Refer to https://github.com/tidwall/gjson/blob/master/SYNTAX.md for path syntax.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}
