package models

import (
	"errors"

	"github.com/invopop/jsonschema"
)

var (
	ErrGeneratedSchemaIsNil = errors.New("generated JSON Schema is nil")
)

// JSONSchema generates the JSON Schema describing ExtractionRequest. This is
// what GET /schema returns verbatim.
func JSONSchema() ([]byte, error) {
	schema := jsonschema.Reflect(&ExtractionRequest{})

	if schema == nil {
		return nil, ErrGeneratedSchemaIsNil
	}

	return schema.MarshalJSON()
}
