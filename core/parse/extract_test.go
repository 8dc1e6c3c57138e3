package parse

import (
	"errors"
	"testing"
)

// TestExtractDocument verifies boundary detection: the span from the first
// opening bracket to the last closing bracket of the same kind.
func TestExtractDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare object",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "bare array",
			input: `[1, 2, 3]`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "prose before and after an object",
			input: `Sure! Here is your analysis: {"a": 1} I hope this helps!`,
			want:  `{"a": 1}`,
		},
		{
			name:  "prose around an array",
			input: `The values are [1, 2, 3] as requested.`,
			want:  `[1, 2, 3]`,
		},
		{
			name:  "last matching closer wins over inner closers",
			input: `{"a": {"b": 2}} trailing note`,
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "array opener ignores later object braces",
			input: `[{"a": 1}, {"b": 2}] done`,
			want:  `[{"a": 1}, {"b": 2}]`,
		},
		{
			name:  "truncated object spans to end of text",
			input: `{"a": 1, "b": "unfinished`,
			want:  `{"a": 1, "b": "unfinished`,
		},
		{
			name:  "truncated array spans to end of text",
			input: `result: [1, 2, 3`,
			want:  `[1, 2, 3`,
		},
		{
			name:  "closer before opener is not a boundary",
			input: `} nonsense {"a": 1`,
			want:  `{"a": 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDocument(tt.input)
			if err != nil {
				t.Fatalf("ExtractDocument(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ExtractDocument(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestExtractDocument_NoBoundary verifies that text without any opening
// bracket is rejected with a typed error.
func TestExtractDocument_NoBoundary(t *testing.T) {
	inputs := []string{
		"I cannot provide financial advice.",
		"plain text with a ] stray closer",
		"",
	}
	for _, input := range inputs {
		_, err := ExtractDocument(input)
		if err == nil {
			t.Fatalf("ExtractDocument(%q) expected error, got nil", input)
		}
		var boundaryErr *BoundaryNotFoundError
		if !errors.As(err, &boundaryErr) {
			t.Errorf("ExtractDocument(%q) error = %T, want *BoundaryNotFoundError", input, err)
		}
	}
}
