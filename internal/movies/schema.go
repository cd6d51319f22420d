package movies

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// listSchema describes the shape of a TMDB list response. Validation
// catches malformed payloads before decoding so error messages point at
// the offending field instead of a decode failure.
const listSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["results"],
	"properties": {
		"page": {"type": "integer"},
		"results": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"id": {"type": "integer"},
					"title": {"type": "string"},
					"release_date": {"type": "string"},
					"vote_average": {"type": "number"},
					"overview": {"type": "string"}
				}
			}
		}
	}
}`

var compiledListSchema = jsonschema.MustCompileString("tmdb-list.json", listSchema)

// validateListPayload checks a raw API response body against the list
// schema. The payload must already be known to be valid JSON.
func validateListPayload(body []byte) error {
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := compiledListSchema.Validate(payload); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("response validation failed: %s", firstSchemaCause(ve).Message)
		}
		return fmt.Errorf("response validation failed: %w", err)
	}
	return nil
}

// firstSchemaCause walks to the deepest leaf cause, which carries the
// most specific message.
func firstSchemaCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
