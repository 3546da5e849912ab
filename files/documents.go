// SPDX-License-Identifier: MIT

// Package files: JSON and YAML documents with schema validation.

package files

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// WriteJSON writes v as two-space indented JSON, creating folders first.
func WriteJSON(location string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return filesErrorf("encode json", location, err)
	}

	return WriteFile(location, data)
}

// ReadJSON decodes location into out after validating it against schema.
// A nil schema skips validation.
func ReadJSON(location string, schema []byte, out any) error {
	raw, err := ReadFile(location)
	if err != nil {
		return err
	}
	if schema != nil {
		if err := validate(schema, gojsonschema.NewBytesLoader(raw)); err != nil {
			return filesErrorf("validate", location, err)
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return filesErrorf("decode json", location, err)
	}

	return nil
}

// ReadYAML decodes location into out after validating its generic form
// against a JSON schema. A nil schema skips validation.
func ReadYAML(location string, schema []byte, out any) error {
	raw, err := ReadFile(location)
	if err != nil {
		return err
	}
	if schema != nil {
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return filesErrorf("decode yaml", location, err)
		}
		if err := validate(schema, gojsonschema.NewGoLoader(doc)); err != nil {
			return filesErrorf("validate", location, err)
		}
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return filesErrorf("decode yaml", location, err)
	}

	return nil
}

// Validate checks the JSON document doc against schema.
func Validate(schema, doc []byte) error {
	return validate(schema, gojsonschema.NewBytesLoader(doc))
}

func validate(schema []byte, doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), doc)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.Field()+": "+desc.Description())
	}

	return fmt.Errorf("%w: %s", ErrSchemaMismatch, strings.Join(violations, "; "))
}
