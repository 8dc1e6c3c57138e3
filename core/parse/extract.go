package parse

import "strings"

// ExtractDocument locates the candidate JSON document inside arbitrary
// surrounding prose: the span from the first '{' or '[' to the last closing
// bracket of the same kind. Using the last closer tolerates trailing
// commentary after the JSON body; nesting correctness is deliberately left to
// the actual parse step. When no matching closer follows the opener — a
// truncated document — the span runs to the end of the text so the repair
// stage can close it.
//
// Returns a BoundaryNotFoundError when the text contains no opening bracket.
func ExtractDocument(text string) (string, error) {
	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", &BoundaryNotFoundError{}
	}

	closer := byte('}')
	if text[start] == '[' {
		closer = ']'
	}

	end := strings.LastIndexByte(text, closer)
	if end <= start {
		return text[start:], nil
	}
	return text[start : end+1], nil
}
