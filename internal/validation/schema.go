// Package validation checks configuration documents against JSON Schemas
// before they are decoded into typed structs.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
)

// Issue captures a single validation failure.
type Issue struct {
	Location string
	Message  string
}

// SchemaError surfaces every leaf failure reported by the schema.
type SchemaError struct {
	Issues []Issue
	Cause  error
}

func (e *SchemaError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *SchemaError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) && schemaErr != nil {
		return schemaErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []Issue{{Message: err.Error()}}
}

// Schema is a compiled JSON Schema (draft 2020-12).
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile parses and compiles a JSON Schema document. name identifies the
// resource in error messages.
func Compile(name string, source []byte) (*Schema, error) {
	if strings.TrimSpace(name) == "" {
		name = "schema.json"
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(source)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile is like Compile but panics on error. It is meant for embedded
// schemas that are fixed at build time.
func MustCompile(name string, source []byte) *Schema {
	schema, err := Compile(name, source)
	if err != nil {
		panic(err)
	}
	return schema
}

// Validate checks a decoded JSON value (maps, slices, json.Number, strings,
// booleans, nil).
func (s *Schema) Validate(document any) error {
	if err := s.compiled.Validate(document); err != nil {
		return &SchemaError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

// ValidateYAML decodes a YAML document and validates it. An empty document is
// treated as an empty object.
func (s *Schema) ValidateYAML(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &SchemaError{
			Issues: []Issue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	if raw == nil {
		raw = map[string]any{}
	}

	document, err := toJSONValue(raw)
	if err != nil {
		return &SchemaError{
			Issues: []Issue{{Message: err.Error()}},
			Cause:  err,
		}
	}
	return s.Validate(document)
}

// toJSONValue round-trips a YAML value through encoding/json so numbers and
// nested maps take the shapes the schema validator expects.
func toJSONValue(value any) (any, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("yaml document is not representable as JSON: %w", err)
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var out any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
