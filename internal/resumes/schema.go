package resumes

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// documentSchema constrains the attribute bag stored per resume. Unknown
// keys are rejected so client typos fail loudly instead of landing as
// orphaned attributes. Keys mirror the document model's wire names.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "id":         {"type": ["string", "integer"]},
    "title":      {"type": "string"},
    "userEmail":  {"type": "string"},
    "themeColor": {"type": "string"},
    "template":   {"type": "string"},
    "firstName":  {"type": "string"},
    "lastName":   {"type": "string"},
    "jobTitle":   {"type": "string"},
    "address":    {"type": "string"},
    "phone":      {"type": "string"},
    "email":      {"type": "string"},
    "github":     {"type": "string"},
    "linkedin":   {"type": "string"},
    "summary":    {"type": "string"},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id":          {"type": "integer"},
          "title":       {"type": "string"},
          "companyName": {"type": "string"},
          "city":        {"type": "string"},
          "state":       {"type": "string"},
          "startDate":   {"type": "string"},
          "endDate":     {"type": "string"},
          "workSummary": {"type": "string"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id":          {"type": "integer"},
          "title":       {"type": "string"},
          "techStack":   {"type": "string"},
          "description": {"type": "string"},
          "githubLink":  {"type": "string"},
          "liveUrl":     {"type": "string"}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id":             {"type": "integer"},
          "universityName": {"type": "string"},
          "degree":         {"type": "string"},
          "major":          {"type": "string"},
          "startDate":      {"type": "string"},
          "endDate":        {"type": "string"},
          "description":    {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id":     {"type": "integer"},
          "name":   {"type": "string"},
          "rating": {"type": "integer", "minimum": 0, "maximum": 5}
        }
      }
    },
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id":     {"type": "integer"},
          "title":  {"type": "string"},
          "issuer": {"type": "string"},
          "year":   {"type": "string"}
        }
      }
    },
    "interests": {
      "type": "array",
      "items": {"type": "string"}
    }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(documentSchema)

// validateAttributes checks the attribute bag against the document schema.
func validateAttributes(attrs map[string]any) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(attrs))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}
