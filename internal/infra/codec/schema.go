package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// recordsSchema describes the stored task list. Every field is optional so
// legacy records still validate; a wrong type is rejected.
const recordsSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": ["array", "null"],
  "items": {
    "type": "object",
    "properties": {
      "id":        {"type": ["string", "null"]},
      "text":      {"type": ["string", "null"]},
      "done":      {"type": ["boolean", "null"]},
      "createdAt": {"type": ["string", "null"]},
      "priority":  {"type": ["string", "null"]}
    }
  }
}`

var compiledRecordsSchema = jsonschema.MustCompileString("tasks.schema.json", recordsSchema)

// validateJSON checks data against the records schema and returns the
// deepest failing location.
func validateJSON(data string) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse tasks: %w", err)
	}

	if err := compiledRecordsSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := firstLeaf(ve)
			return fmt.Errorf("invalid tasks at %q: %s", leaf.InstanceLocation, leaf.Message)
		}
		return fmt.Errorf("invalid tasks: %w", err)
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
