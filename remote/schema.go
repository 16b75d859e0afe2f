package remote

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const clientSchemaURL = "quadsnake://client.schema.json"

const clientSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["type"],
  "oneOf": [
    {
      "properties": {
        "type":   {"const": "touch"},
        "x":      {"type": "number", "minimum": 0},
        "y":      {"type": "number", "minimum": 0},
        "width":  {"type": "number", "exclusiveMinimum": 0},
        "height": {"type": "number", "exclusiveMinimum": 0}
      },
      "additionalProperties": false,
      "required": ["type", "x", "y", "width", "height"]
    },
    {
      "properties": {
        "type":    {"const": "steer"},
        "heading": {"enum": ["UP", "DOWN", "LEFT", "RIGHT"]}
      },
      "additionalProperties": false,
      "required": ["type", "heading"]
    },
    {
      "properties": {
        "type": {"const": "restart"}
      },
      "additionalProperties": false,
      "required": ["type"]
    }
  ]
}`

var clientFrameSchema = jsonschema.MustCompileString(clientSchemaURL, clientSchema)

// DecodeClientMsg validates raw against the client frame schema and decodes it
func DecodeClientMsg(raw []byte) (ClientMsg, error) {
	var msg ClientMsg

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return msg, fmt.Errorf("decode frame: %w", err)
	}
	if err := clientFrameSchema.Validate(doc); err != nil {
		return msg, fmt.Errorf("validate frame: %w", err)
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		return msg, fmt.Errorf("decode frame: %w", err)
	}
	return msg, nil
}
