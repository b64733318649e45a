package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema is the JSON schema every imported document must satisfy.
// It is compiled into the binary so validation never depends on a template
// directory being present at runtime.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["personal"],
  "properties": {
    "personal": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "title": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"},
        "website": {"type": "string"},
        "summary": {"type": "string"}
      },
      "additionalProperties": false
    },
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "company": {"type": "string"},
          "role": {"type": "string"},
          "start": {"type": "string"},
          "end": {"type": "string"},
          "current": {"type": "boolean"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "school": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "start": {"type": "string"},
          "end": {"type": "string"},
          "gpa": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "level": {"type": "integer"}
        },
        "additionalProperties": false
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "tech": {"type": "string"},
          "link": {"type": "string"}
        },
        "additionalProperties": false
      }
    },
    "certificates": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "issuer": {"type": "string"},
          "date": {"type": "string"}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// ValidateJSON validates a raw JSON document body against the resume schema.
func ValidateJSON(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// ValidateMap validates a generic map form of a document.
func ValidateMap(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewStringLoader(documentSchema)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
