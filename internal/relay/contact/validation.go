package contact

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

var submissionSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"name": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"email": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
			"pattern":   `^[^@\s]+@[^@\s]+\.[^@\s]+$`,
		},
		"phone": map[string]interface{}{
			"type": "string",
		},
		"projectType": map[string]interface{}{
			"type": "string",
		},
		"message": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
	},
	"required":             []interface{}{"name", "email", "message"},
	"additionalProperties": false,
}

// ValidateSubmission checks the decoded request body against the form
// schema before any transport work happens.
func ValidateSubmission(data map[string]interface{}) error {
	schemaLoader := gojsonschema.NewGoLoader(submissionSchema)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("submission validation failed: %v", errs)
	}

	return nil
}

// MissingRequired reports which of the required form fields are absent,
// matching the public error wording "Name, email, and message are
// required".
func MissingRequired(in *Input) bool {
	return in.Name == "" || in.Email == "" || in.Message == ""
}
