package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// eventSchema constrains every outbound payload. Catching a malformed
// payload here beats debugging it downstream in the ingestion pipeline,
// which never reports errors back (write-only delivery).
const eventSchema = `{
  "type": "object",
  "required": ["source", "environment", "event_type", "timestamp", "email"],
  "properties": {
    "source": {"type": "string", "minLength": 1},
    "environment": {"enum": ["production", "development"]},
    "event_type": {"enum": ["signup", "score_update"]},
    "timestamp": {"type": "string", "format": "date-time"},
    "email": {"type": "string", "pattern": "@"}
  },
  "allOf": [
    {
      "if": {"properties": {"event_type": {"const": "score_update"}}},
      "then": {
        "required": ["total_score", "rank", "nutrition", "movement", "sleep", "social", "purpose"],
        "properties": {
          "total_score": {"type": "integer", "minimum": 50, "maximum": 250},
          "rank": {"enum": ["Developing", "Solid", "Excellent", "Optimal"]},
          "nutrition": {"type": "integer", "minimum": 0, "maximum": 50},
          "movement": {"type": "integer", "minimum": 0, "maximum": 50},
          "sleep": {"type": "integer", "minimum": 0, "maximum": 50},
          "social": {"type": "integer", "minimum": 0, "maximum": 50},
          "purpose": {"type": "integer", "minimum": 0, "maximum": 50}
        }
      }
    }
  ]
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validatePayload checks an outbound payload against the event schema.
func validatePayload(payload map[string]any) error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(eventSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse event schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://event.json", doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://event.json")
	})
	if compileErr != nil {
		return compileErr
	}

	// The validator wants plain JSON values; round-trip through the
	// generic form to normalize ints and typed strings.
	normalized, err := normalize(payload)
	if err != nil {
		return err
	}
	return compiledSchema.Validate(normalized)
}

func normalize(payload map[string]any) (any, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("normalize payload: %w", err)
	}
	return doc, nil
}
