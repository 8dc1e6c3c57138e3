package parse

import (
	"fmt"
	"strings"
)

// EmptyInputError reports that the raw input was empty or whitespace-only
// after trimming, so the pipeline had nothing to recover.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "parse: input must be a non-empty string"
}

// BoundaryNotFoundError reports that no JSON object or array opening bracket
// exists anywhere in the normalized text.
type BoundaryNotFoundError struct{}

func (e *BoundaryNotFoundError) Error() string {
	return "parse: no JSON object or array found in input"
}

// UnrepairableSyntaxError reports that the document still failed to parse
// after every targeted fix and the generic repair fallback. The attached
// Diagnostic locates the failure for operator logs.
type UnrepairableSyntaxError struct {
	Diagnostic *Diagnostic
}

func (e *UnrepairableSyntaxError) Error() string {
	if e.Diagnostic == nil {
		return "parse: could not repair input into valid JSON"
	}
	return fmt.Sprintf("parse: could not repair input into valid JSON: %s at line %d, column %d",
		e.Diagnostic.Message, e.Diagnostic.Line, e.Diagnostic.Column)
}

// SchemaEchoError reports that the model returned the JSON Schema describing
// the desired shape instead of actual data. Marker is the top-level key that
// gave it away.
type SchemaEchoError struct {
	Marker string
}

func (e *SchemaEchoError) Error() string {
	return fmt.Sprintf("parse: model returned a JSON schema instead of data (found top-level %q key)", e.Marker)
}

// TypeMismatchError reports that a field in the parsed document has the wrong
// JSON shape for the target record (e.g. an object where an array was
// expected).
type TypeMismatchError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	field := e.Field
	if field == "" {
		field = "(document root)"
	}
	return fmt.Sprintf("parse: field %s: expected %s, got %s", field, e.Expected, e.Actual)
}

// Diagnostic is a precise, human-readable report of where in the text an
// unrecoverable parse failure occurred. It is intended for operator and log
// visibility only; callers decide what, if anything, to show end users.
type Diagnostic struct {
	Line    int      // 1-based line of the failure
	Column  int      // 1-based column of the failure
	Message string   // underlying parser message
	Context []string // rendered context lines with error marker and caret
}

// String renders the diagnostic as a multi-line report: the parser message,
// the failure location, and the offending line with surrounding context and a
// caret pointing at the column.
func (d *Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "JSON error at line %d, column %d: %s", d.Line, d.Column, d.Message)
	for _, line := range d.Context {
		b.WriteByte('\n')
		b.WriteString(line)
	}
	return b.String()
}
