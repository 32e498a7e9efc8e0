package selftrack

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// stateSchema is the JSON schema of the persisted aggregate.
const stateSchema = `{
  "type": "object",
  "required": ["profile", "achievements", "experiences", "academics", "hobbies"],
  "properties": {
    "profile": {
      "type": "object",
      "required": ["name", "major", "university", "bio", "email", "avatar"],
      "properties": {
        "name": {"type": "string"},
        "major": {"type": "string"},
        "university": {"type": "string"},
        "bio": {"type": "string"},
        "email": {"type": "string"},
        "avatar": {"type": "string"}
      }
    },
    "achievements": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "title", "issuer", "category"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string", "minLength": 1},
          "issuer": {"type": "string", "minLength": 1},
          "year": {"type": "string"},
          "description": {"type": "string"},
          "category": {"enum": ["Campus", "National", "International"]},
          "certificateUrl": {"type": "string"}
        }
      }
    },
    "experiences": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "role", "organization", "type"],
        "properties": {
          "id": {"type": "string"},
          "role": {"type": "string", "minLength": 1},
          "organization": {"type": "string", "minLength": 1},
          "location": {"type": "string"},
          "period": {"type": "string"},
          "type": {"enum": ["Work", "Organization", "Volunteer"]},
          "description": {"type": "string"}
        }
      }
    },
    "academics": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["semester", "gpa"],
        "properties": {
          "semester": {"type": "string"},
          "gpa": {"type": "number"}
        }
      }
    },
    "hobbies": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["id", "name", "icon"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string", "minLength": 1},
          "icon": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *gojsonschema.Schema
	compileErr     error
)

// ValidateJSON checks that data has the shape of an AppState.
func ValidateJSON(data []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(stateSchema))
	})
	if compileErr != nil {
		return fmt.Errorf("invalid portfolio schema: %w", compileErr)
	}
	res, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if res.Valid() {
		return nil
	}
	var errs []string
	for _, desc := range res.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrCorrupt, strings.Join(errs, "; "))
}
