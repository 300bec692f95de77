// Package jsonschema validates JSON documents, such as experiment plan files,
// against a JSON Schema.
package jsonschema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationErrors represents a collection of validation errors
type ValidationErrors []error

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	msgs := make([]string, len(ve))
	for i, err := range ve {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Schema is a compiled schema that can validate many documents.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile parses and compiles schemaStr.
func Compile(schemaStr string) (*Schema, error) {
	compiled, err := jsonschema.CompileString("schema.json", schemaStr)
	if err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &Schema{compiled: compiled}, nil
}

// ValidateDocument validates an already-decoded document. Values decoded
// from YAML are normalised through JSON first so that numbers and maps have
// the shapes the validator expects.
func (s *Schema) ValidateDocument(doc interface{}) ValidationErrors {
	raw, err := json.Marshal(doc)
	if err != nil {
		return ValidationErrors{fmt.Errorf("document is not representable as JSON: %w", err)}
	}
	return s.ValidateJSON(string(raw))
}

// ValidateJSON validates a JSON string. It returns nil when the document is valid.
func (s *Schema) ValidateJSON(jsonStr string) ValidationErrors {
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return ValidationErrors{fmt.Errorf("invalid JSON: %w", err)}
	}

	err := s.compiled.Validate(data)
	if err == nil {
		return nil
	}
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		return flatten(validationErr)
	}
	return ValidationErrors{err}
}

// Validate reports whether jsonStr satisfies schemaStr. An error is returned
// only when the schema or the JSON itself cannot be parsed.
func Validate(jsonStr, schemaStr string) (bool, error) {
	schema, err := Compile(schemaStr)
	if err != nil {
		return false, err
	}
	var data interface{}
	if err := json.Unmarshal([]byte(jsonStr), &data); err != nil {
		return false, fmt.Errorf("invalid JSON: %w", err)
	}
	return schema.compiled.Validate(data) == nil, nil
}

// ValidateWithErrors is like Validate but returns every leaf violation.
func ValidateWithErrors(jsonStr, schemaStr string) (bool, ValidationErrors) {
	schema, err := Compile(schemaStr)
	if err != nil {
		return false, ValidationErrors{err}
	}
	errs := schema.ValidateJSON(jsonStr)
	return len(errs) == 0, errs
}

// flatten walks the cause tree and keeps the leaf messages, which name the
// offending location.
func flatten(err *jsonschema.ValidationError) ValidationErrors {
	if len(err.Causes) == 0 {
		location := err.InstanceLocation
		if location == "" {
			location = "/"
		}
		return ValidationErrors{fmt.Errorf("validation error at %s: %s", location, err.Message)}
	}

	var errs ValidationErrors
	for _, cause := range err.Causes {
		errs = append(errs, flatten(cause)...)
	}
	return errs
}
