// Package schemas provides JSON Schema validation for structured LLM output.
// Validation here is advisory: the defensive parser still accepts imperfect
// documents, but schema failures are logged so prompt regressions surface in
// diagnostics instead of silently degrading answers.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed assistant_response.schema.json
var assistantResponseSchema string

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAssistantResponse checks a JSON document against the assistant
// response schema. Returns nil when the document conforms, a *ValidationError
// listing field problems when it does not, and a plain error when the
// document is not valid JSON at all.
func ValidateAssistantResponse(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(assistantResponseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
