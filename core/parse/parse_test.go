package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// testRecord is a minimal Validator target for exercising the full pipeline.
type testRecord struct {
	Summary string   `json:"summary"`
	Score   *float64 `json:"score"`
	Tags    []string `json:"tags,omitempty"`
}

func (r *testRecord) Validate() error {
	if r.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	if r.Score == nil {
		return fmt.Errorf("score is required")
	}
	if *r.Score < 0 || *r.Score > 1 {
		return fmt.Errorf("score must be between 0 and 1")
	}
	return nil
}

// TestClean verifies that the combined text-level stages turn dirty model
// output into parseable JSON.
func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid JSON passes through unchanged",
			input: `{"summary": "ok", "score": 0.9}`,
			want:  `{"summary": "ok", "score": 0.9}`,
		},
		{
			name:  "fenced document with trailing comma",
			input: "```json\n{\"summary\": \"ok\", \"score\": 0.9,}\n```",
			want:  `{"summary": "ok", "score": 0.9}`,
		},
		{
			name:  "prose around the document",
			input: `Here is your analysis: {"summary": "ok", "score": 0.9} Let me know!`,
			want:  `{"summary": "ok", "score": 0.9}`,
		},
		{
			name:  "missing comma between properties",
			input: "{\"summary\": \"ok\"\n\"score\": 0.9}",
			want:  "{\"summary\": \"ok\",\n\"score\": 0.9}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clean(tt.input)
			if err != nil {
				t.Fatalf("Clean(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestClean_TruncatedDocument verifies that the generic repair fallback
// closes a truncated document rather than rejecting it.
func TestClean_TruncatedDocument(t *testing.T) {
	got, err := Clean(`{"summary": "ok", "tags": ["a", "b"`)
	if err != nil {
		t.Fatalf("Clean returned error: %v", err)
	}
	var rec testRecord
	if err := json.Unmarshal([]byte(got), &rec); err != nil {
		t.Fatalf("repaired document does not parse: %v", err)
	}
	if rec.Summary != "ok" {
		t.Errorf("Summary = %q, want %q", rec.Summary, "ok")
	}
	if len(rec.Tags) != 2 || rec.Tags[0] != "a" || rec.Tags[1] != "b" {
		t.Errorf("Tags = %v, want [a b]", rec.Tags)
	}
}

// TestParseStringAs_DirtyInput verifies the end-to-end recovery path: fenced,
// comma-damaged output still maps onto a validated record with every value
// intact.
func TestParseStringAs_DirtyInput(t *testing.T) {
	input := "Sure! Here you go:\n```json\n{\n  \"summary\": \"all good\",\n  \"score\": 0.75,\n  \"tags\": [\"a\", \"b\",],\n}\n```"

	rec, err := ParseStringAs[testRecord](input)
	if err != nil {
		t.Fatalf("ParseStringAs returned error: %v", err)
	}
	if rec.Summary != "all good" {
		t.Errorf("Summary = %q, want %q", rec.Summary, "all good")
	}
	if rec.Score == nil || *rec.Score != 0.75 {
		t.Errorf("Score = %v, want 0.75", rec.Score)
	}
	if len(rec.Tags) != 2 {
		t.Errorf("Tags = %v, want two entries", rec.Tags)
	}
}

// TestParseStringAs_NonDestructive verifies that recovery never alters the
// contents of string literals, even when they contain JSON-looking text.
func TestParseStringAs_NonDestructive(t *testing.T) {
	input := `{"summary": "use {braces}, [brackets], and trailing commas,", "score": 1}`

	rec, err := ParseStringAs[testRecord](input)
	if err != nil {
		t.Fatalf("ParseStringAs returned error: %v", err)
	}
	want := "use {braces}, [brackets], and trailing commas,"
	if rec.Summary != want {
		t.Errorf("Summary = %q, want %q", rec.Summary, want)
	}
}

// TestParseStringAs_SchemaEcho verifies that a schema echoed back in place of
// data is rejected with the marker key that identified it, for each marker.
func TestParseStringAs_SchemaEcho(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMarker string
	}{
		{
			name:       "dollar-schema key",
			input:      `{"$schema": "http://json-schema.org/draft-07/schema#", "type": "object"}`,
			wantMarker: "$schema",
		},
		{
			name:       "properties key",
			input:      `{"properties": {"summary": {"type": "string"}}}`,
			wantMarker: "properties",
		},
		{
			name:       "definitions key",
			input:      `{"definitions": {"record": {"type": "object"}}}`,
			wantMarker: "definitions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStringAs[testRecord](tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var echoErr *SchemaEchoError
			if !errors.As(err, &echoErr) {
				t.Fatalf("error = %T, want *SchemaEchoError", err)
			}
			if echoErr.Marker != tt.wantMarker {
				t.Errorf("Marker = %q, want %q", echoErr.Marker, tt.wantMarker)
			}
		})
	}
}

// TestParseStringAs_SchemaEcho_NestedKeysAllowed verifies that the marker
// keys only trigger at the top level; a data document may legitimately nest
// them.
func TestParseStringAs_SchemaEcho_NestedKeysAllowed(t *testing.T) {
	type doc struct {
		Summary string         `json:"summary"`
		Extra   map[string]any `json:"extra"`
	}
	input := `{"summary": "ok", "extra": {"properties": ["residential"]}}`

	rec, err := ParseStringAs[doc](input)
	if err != nil {
		t.Fatalf("ParseStringAs returned error: %v", err)
	}
	if rec.Summary != "ok" {
		t.Errorf("Summary = %q, want %q", rec.Summary, "ok")
	}
}

// TestParseStringAs_TypedFailures verifies that each failure mode surfaces as
// its documented error type with the zero record.
func TestParseStringAs_TypedFailures(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		rec, err := ParseStringAs[testRecord]("   ")
		var emptyErr *EmptyInputError
		if !errors.As(err, &emptyErr) {
			t.Fatalf("error = %T, want *EmptyInputError", err)
		}
		if rec.Summary != "" || rec.Score != nil {
			t.Errorf("expected zero record, got %+v", rec)
		}
	})

	t.Run("no JSON boundary", func(t *testing.T) {
		_, err := ParseStringAs[testRecord]("I cannot respond in JSON format.")
		var boundaryErr *BoundaryNotFoundError
		if !errors.As(err, &boundaryErr) {
			t.Fatalf("error = %T, want *BoundaryNotFoundError", err)
		}
	})

	t.Run("wrong shape for field", func(t *testing.T) {
		rec, err := ParseStringAs[testRecord](`{"summary": "ok", "score": 1, "tags": "not-an-array"}`)
		var typeErr *TypeMismatchError
		if !errors.As(err, &typeErr) {
			t.Fatalf("error = %T, want *TypeMismatchError", err)
		}
		if typeErr.Field != "tags" {
			t.Errorf("Field = %q, want %q", typeErr.Field, "tags")
		}
		if typeErr.Expected != "array" {
			t.Errorf("Expected = %q, want %q", typeErr.Expected, "array")
		}
		if rec.Summary != "" {
			t.Errorf("expected zero record, got %+v", rec)
		}
	})

	t.Run("validation failure discards the record", func(t *testing.T) {
		rec, err := ParseStringAs[testRecord](`{"score": 0.5}`)
		if err == nil {
			t.Fatal("expected validation error, got nil")
		}
		if rec.Score != nil {
			t.Errorf("expected zero record, got %+v", rec)
		}
	})
}
