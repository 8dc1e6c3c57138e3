package parse

import (
	"encoding/json"
	"errors"
	"reflect"

	"github.com/kaptinlin/jsonrepair"
)

// schemaMarkerKeys are top-level keys that indicate the model echoed the
// requested JSON Schema instead of producing data.
var schemaMarkerKeys = []string{"$schema", "properties", "definitions"}

// Validator is implemented by target types that enforce field-level
// constraints (required fields, enumerations, numeric ranges) after mapping.
// ParseStringAs calls Validate on the mapped value and discards it entirely
// when validation fails, so partial records never escape.
type Validator interface {
	Validate() error
}

// Clean runs the text-level recovery stages — normalization, boundary
// extraction, targeted comma repair, and the generic repair fallback — and
// returns a document guaranteed to parse as JSON. The targeted repairs only
// insert or remove punctuation; literal values are never altered. The generic
// fallback (jsonrepair) can additionally close unterminated strings and
// brackets, but never guesses at values.
//
// Failure modes: EmptyInputError, BoundaryNotFoundError, or an
// UnrepairableSyntaxError carrying a line/column Diagnostic.
func Clean(raw string) (string, error) {
	text, err := Normalize(raw)
	if err != nil {
		return "", err
	}

	doc, err := ExtractDocument(text)
	if err != nil {
		return "", err
	}

	doc = RepairDocument(doc)
	if json.Valid([]byte(doc)) {
		return doc, nil
	}

	// Final fallback: a tolerant structural repair pass.
	repaired, repairErr := jsonrepair.JSONRepair(doc)
	if repairErr == nil && json.Valid([]byte(repaired)) {
		return repaired, nil
	}

	candidate := doc
	if repairErr == nil {
		candidate = repaired
	}
	var probe any
	parseErr := json.Unmarshal([]byte(candidate), &probe)
	return "", &UnrepairableSyntaxError{Diagnostic: Diagnose(candidate, parseErr)}
}

// ParseStringAs recovers a typed record of type T from raw model output. It
// runs [Clean], rejects schema echoes, maps the document onto T, and — when T
// implements [Validator] — enforces the type's field constraints. On any
// failure the zero value of T is returned together with a typed error; the
// pipeline never fabricates or silently drops data.
//
// Example usage:
//
//	record, err := parse.ParseStringAs[advice.AdviceRecord]("```json\n{...}\n```")
//	var echo *parse.SchemaEchoError
//	if errors.As(err, &echo) {
//	    // the model described the schema instead of filling it in
//	}
func ParseStringAs[T any](content string) (T, error) {
	var zero T

	doc, err := Clean(content)
	if err != nil {
		return zero, err
	}

	if err := checkSchemaEcho(doc); err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(doc), &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return zero, &TypeMismatchError{
				Field:    typeErr.Field,
				Expected: shapeOf(typeErr.Type),
				Actual:   typeErr.Value,
			}
		}
		return zero, &UnrepairableSyntaxError{Diagnostic: Diagnose(doc, err)}
	}

	if v, ok := any(&result).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, err
		}
	}
	return result, nil
}

// checkSchemaEcho rejects documents whose top level describes a schema rather
// than containing data. Only objects can echo a schema; arrays pass through.
func checkSchemaEcho(doc string) error {
	if len(doc) == 0 || doc[0] != '{' {
		return nil
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &top); err != nil {
		return nil
	}
	for _, marker := range schemaMarkerKeys {
		if _, ok := top[marker]; ok {
			return &SchemaEchoError{Marker: marker}
		}
	}
	return nil
}

// shapeOf names the JSON shape a Go type maps to, for type-mismatch reports.
func shapeOf(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	switch t.Kind() {
	case reflect.Pointer:
		return shapeOf(t.Elem())
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return t.String()
	}
}
