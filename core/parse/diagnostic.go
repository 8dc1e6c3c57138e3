package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// contextLines is how many lines before and after the failing line are
// included in a diagnostic report.
const contextLines = 2

// Diagnose builds a Diagnostic for a parse failure of text. When err carries
// a byte offset (encoding/json syntax errors do) the report is located at the
// derived line and column; otherwise it points at the start of the text.
// Diagnose is a pure function over its inputs.
func Diagnose(text string, err error) *Diagnostic {
	var offset int64
	message := "invalid JSON"
	if err != nil {
		message = err.Error()
	}

	var synErr *json.SyntaxError
	if errors.As(err, &synErr) {
		offset = synErr.Offset
		message = synErr.Error()
	}
	return locate(text, offset, message)
}

// locate converts a byte offset into a line/column position and renders the
// surrounding context with a caret pointing at the failing column.
func locate(text string, offset int64, message string) *Diagnostic {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(text)) {
		offset = int64(len(text))
	}

	line, column := 1, 1
	for _, c := range []byte(text[:offset]) {
		if c == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	lines := strings.Split(text, "\n")
	errorLine := line - 1 // 0-based index into lines

	start := errorLine - contextLines
	if start < 0 {
		start = 0
	}
	end := errorLine + contextLines + 1
	if end > len(lines) {
		end = len(lines)
	}

	var context []string
	for i := start; i < end; i++ {
		marker := "     "
		if i == errorLine {
			marker = " >>> "
		}
		rendered := fmt.Sprintf("%sLine %d: %s", marker, i+1, lines[i])
		context = append(context, rendered)
		if i == errorLine {
			// Caret under the failing column, accounting for the prefix.
			prefix := len(fmt.Sprintf("%sLine %d: ", marker, i+1))
			context = append(context, strings.Repeat(" ", prefix+column-1)+"^")
		}
	}

	return &Diagnostic{
		Line:    line,
		Column:  column,
		Message: message,
		Context: context,
	}
}
