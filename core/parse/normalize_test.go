package parse

import (
	"errors"
	"testing"
)

// TestNormalize verifies the character-level cleanup stages: fence stripping,
// double-encoding collapse, and invisible character removal.
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON passes through",
			input: `{"a": 1}`,
			want:  `{"a": 1}`,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  \n\t{\"a\": 1}\n  ",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with language tag stripped",
			input: "```json\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence without language tag stripped",
			input: "```\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "prose before the fence survives",
			input: "Here is the result:\n```json\n{\"a\": 1}\n```",
			want:  "Here is the result:\n{\"a\": 1}",
		},
		{
			name:  "opening fence without closing fence",
			input: "```json\n{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "double-encoded escapes collapsed",
			input: `{\"a\": \"x\",\n\"b\": 2}`,
			want:  "{\"a\": \"x\",\n\"b\": 2}",
		},
		{
			name:  "double-encoded backslash collapsed",
			input: `{\"path\": \"C:\\temp\"}\n`,
			want:  "{\"path\": \"C:\\temp\"}",
		},
		{
			name:  "single-encoded escapes left alone",
			input: `{"a": "x\ty"}`,
			want:  `{"a": "x\ty"}`,
		},
		{
			name:  "byte-order mark removed",
			input: "\uFEFF{\"a\": 1}",
			want:  `{"a": 1}`,
		},
		{
			name:  "zero-width space and null removed",
			input: "{\"a\":\u200B 1\x00}",
			want:  `{"a": 1}`,
		},
		{
			name:  "unicode line separator removed",
			input: "{\"a\":\u2028 1}",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestNormalize_EmptyInput verifies that empty and whitespace-only inputs are
// rejected with a typed error before any other stage runs.
func TestNormalize_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t  \n"} {
		_, err := Normalize(input)
		if err == nil {
			t.Fatalf("Normalize(%q) expected error, got nil", input)
		}
		var emptyErr *EmptyInputError
		if !errors.As(err, &emptyErr) {
			t.Errorf("Normalize(%q) error = %T, want *EmptyInputError", input, err)
		}
	}
}

// TestNormalize_Idempotent verifies that running Normalize on its own output
// changes nothing.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"\uFEFF{\"a\": \u200B1}",
		`{"a": 1}`,
	}
	for _, input := range inputs {
		once, err := Normalize(input)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", input, err)
		}
		twice, err := Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)) returned error: %v", input, err)
		}
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
