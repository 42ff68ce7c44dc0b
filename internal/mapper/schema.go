package mapper

import (
	"bytes"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// netSchemaJSON describes the shape of the wire PetriNet DTO: required
// fields, field types, and the closed enum of arc type tags. It is
// compiled once at startup and run against every inbound request before
// the request is unmarshaled into a NetDTO, so malformed JSON shapes
// (missing fields, wrong JSON types, an arc type outside the enum) are
// rejected with a schema-level diagnostic before ToNet ever has to guess
// at a zero value. This is the same technique the CPN color-set schema
// loader uses -- github.com/santhosh-tekuri/jsonschema/v5, compiled
// against an in-memory resource URL -- repointed from per-token color
// sets onto the net topology itself.
const netSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["places", "transitions", "arcs"],
  "properties": {
    "title": {"type": "string"},
    "deterministicMode": {"type": "boolean"},
    "places": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "tokens": {"type": "integer", "minimum": 0},
          "bounded": {"type": "boolean"},
          "capacity": {"type": "integer", "minimum": 0}
        }
      }
    },
    "transitions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "enabled": {"type": "boolean"},
          "arcIds": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "arcs": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "incomingId", "outgoingId"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"enum": ["REGULAR", "INHIBITOR", "BIDIRECTIONAL"]},
          "incomingId": {"type": "string", "minLength": 1},
          "outgoingId": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

// schemaResourceURL is a synthetic in-memory URL; no network fetch ever
// happens, it's only an identifier the compiler uses to address the
// resource it was just handed.
const schemaResourceURL = "mem://schemas/petri-net.json"

// Schema validates raw wire JSON against the net DTO shape before any
// unmarshaling happens.
type Schema struct {
	compiled *jsonschema.Schema
}

// NewSchema compiles the net DTO schema once; callers should build a
// single Schema at startup and reuse it for every request.
func NewSchema() (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResourceURL, bytes.NewReader([]byte(netSchemaJSON))); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(schemaResourceURL)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled}, nil
}

// ValidateDecoded runs the schema against an already-decoded
// map[string]interface{}/[]interface{} document, the shape
// encoding/json produces for arbitrary JSON.
func (s *Schema) ValidateDecoded(v interface{}) error {
	return s.compiled.Validate(v)
}
