package parse

import (
	"bytes"
	"strings"
)

// RepairDocument applies the bounded set of targeted structural fixes for
// known generation artifacts, in a fixed order:
//
//  1. remove commas that directly precede a closing '}' or ']'
//  2. insert a comma between two adjacent quoted strings separated only by a
//     line break (a property boundary that lost its punctuation)
//  3. insert a comma between a bare numeric/boolean/null value and a quoted
//     key on the following line
//  4. collapse runs of consecutive commas into one
//
// Every pass tracks string literals and never modifies their contents: repair
// only removes or inserts punctuation. The function is idempotent —
// RepairDocument(RepairDocument(x)) == RepairDocument(x).
func RepairDocument(doc string) string {
	doc = stripTrailingCommas(doc)
	doc = insertMissingCommas(doc)
	doc = collapseCommaRuns(doc)
	return doc
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// stripTrailingCommas removes any comma whose next significant character
// (skipping whitespace and further commas) is a closing brace or bracket.
func stripTrailingCommas(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))

	inString, escaped := false, false
	for i := 0; i < len(doc); i++ {
		c := doc[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case ',':
			j := i + 1
			for j < len(doc) && (isJSONSpace(doc[j]) || doc[j] == ',') {
				j++
			}
			if j < len(doc) && (doc[j] == '}' || doc[j] == ']') {
				continue // drop the comma, keep the whitespace
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// insertMissingCommas adds a separating comma before a quoted string that
// follows a closed string, number, boolean, or null with only line-breaking
// whitespace in between. Whitespace outside strings is buffered so the comma
// lands directly after the previous value.
func insertMissingCommas(doc string) string {
	var b strings.Builder
	b.Grow(len(doc) + 8)

	inString, escaped := false, false
	var ws []byte // pending whitespace run outside strings
	var prev byte // last significant byte written outside string contents
	for i := 0; i < len(doc); i++ {
		c := doc[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
				prev = '"'
			}
			continue
		}

		if isJSONSpace(c) {
			ws = append(ws, c)
			continue
		}

		if c == '"' && bytes.IndexByte(ws, '\n') >= 0 && endsValue(prev) {
			b.WriteByte(',')
		}
		b.Write(ws)
		ws = ws[:0]
		b.WriteByte(c)
		prev = c
		if c == '"' {
			inString = true
		}
	}
	b.Write(ws)
	return b.String()
}

// endsValue reports whether prev can be the final character of a JSON value:
// a closing quote, a digit, or the tail letter of true/false/null.
func endsValue(prev byte) bool {
	return prev == '"' || (prev >= '0' && prev <= '9') || (prev >= 'a' && prev <= 'z')
}

// collapseCommaRuns reduces two or more consecutive commas (ignoring
// whitespace between them) to a single comma.
func collapseCommaRuns(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))

	inString, escaped := false, false
	var prevSig byte
	for i := 0; i < len(doc); i++ {
		c := doc[i]

		if inString {
			b.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		if c == ',' && prevSig == ',' {
			continue
		}
		if !isJSONSpace(c) {
			prevSig = c
		}
		b.WriteByte(c)
		if c == '"' {
			inString = true
		}
	}
	return b.String()
}
