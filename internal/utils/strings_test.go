package utils

import (
	"strings"
	"testing"
)

func TestJSONToString(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	t.Run("compact", func(t *testing.T) {
		got := JSONToString(payload{Name: "a", Count: 2})
		if got != `{"name":"a","count":2}` {
			t.Errorf("JSONToString = %q", got)
		}
	})

	t.Run("indented", func(t *testing.T) {
		got := JSONToString(payload{Name: "a", Count: 2}, true)
		if !strings.Contains(got, "\n  \"name\": \"a\"") {
			t.Errorf("JSONToString indented = %q", got)
		}
	})

	t.Run("unmarshalable value yields error JSON", func(t *testing.T) {
		got := JSONToString(make(chan int))
		if !strings.Contains(got, "failed to marshal") {
			t.Errorf("JSONToString = %q, want error JSON", got)
		}
	})
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string unchanged",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length unchanged",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "long string truncated with length note",
			input:  "hello world",
			maxLen: 5,
			want:   "hello... (truncated, total: 11 chars)",
		},
		{
			name:   "zero maxLen falls back to default",
			input:  strings.Repeat("x", DefaultMaxStringLength+1),
			maxLen: 0,
			want:   strings.Repeat("x", DefaultMaxStringLength) + "... (truncated, total: 501 chars)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPtr(t *testing.T) {
	f := Ptr(1.5)
	if f == nil || *f != 1.5 {
		t.Errorf("Ptr(1.5) = %v", f)
	}
	b := Ptr(false)
	if b == nil || *b != false {
		t.Errorf("Ptr(false) = %v", b)
	}
}

func TestTimer(t *testing.T) {
	timer := NewTimer()
	if timer.GetDuration() != 0 {
		t.Error("duration before Stop should be zero")
	}
	timer.Stop()
	if timer.GetDuration() < 0 {
		t.Error("duration after Stop should be non-negative")
	}
}
