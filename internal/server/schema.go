package server

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// submitSchemaDefinition shapes the submit payload. Option letters and
// completeness are checked separately so violations come back as per-field
// errors rather than a schema pointer.
var submitSchemaDefinition = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"role": map[string]any{
			"type": "string",
			"enum": []any{"founder", "family-employee", "family-non-employee", "external-advisor"},
		},
		"userName": map[string]any{
			"type": []any{"string", "null"},
		},
		"answers": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "string",
			},
		},
	},
	"required":             []any{"role", "answers"},
	"additionalProperties": false,
}

type submitSchema struct {
	compiled *jsonschema.Schema
}

// compileSubmitSchema compiles the payload schema once at startup.
func compileSubmitSchema() (*submitSchema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(submitSchemaDefinition)
	if err != nil {
		return nil, fmt.Errorf("marshal submit schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse submit schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://assessment-submit.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile submit schema: %w", err)
	}
	return &submitSchema{compiled: compiled}, nil
}

// Validate checks raw JSON against the schema before it is decoded into
// typed structs.
func (s *submitSchema) Validate(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := s.compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
