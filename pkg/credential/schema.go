/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

// SchemaValidator checks document data against the JSON schema of its credential type.
type SchemaValidator struct {
	schemas map[Type]*gojsonschema.Schema
}

// NewSchemaValidator compiles the embedded schema of every supported type.
func NewSchemaValidator() (*SchemaValidator, error) {
	v := &SchemaValidator{schemas: make(map[Type]*gojsonschema.Schema)}

	for _, t := range AllTypes() {
		raw, err := schemaFS.ReadFile("schema/" + string(t) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read schema for %s: %w", t, err)
		}

		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema for %s: %w", t, err)
		}

		v.schemas[t] = s
	}

	return v, nil
}

// Validate returns ErrInvalidDocument describing every schema violation of the document data.
func (v *SchemaValidator) Validate(doc *Document) error {
	t, err := ParseType(doc.VCType)
	if err != nil {
		return err
	}

	result, err := v.schemas[t].Validate(gojsonschema.NewBytesLoader(doc.Data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %s data is not valid:\n%s", ErrInvalidDocument, t, describeSchemaErrors(result))
	}

	return nil
}

func describeSchemaErrors(result *gojsonschema.Result) string {
	var sb strings.Builder

	for _, desc := range result.Errors() {
		sb.WriteString("- ")
		sb.WriteString(desc.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
