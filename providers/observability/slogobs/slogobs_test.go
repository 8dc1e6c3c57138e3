package slogobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/wealthwise/wealthwise/providers/observability"
)

func newTestObserver() (*Observer, *bytes.Buffer) {
	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelDebug))
	return obs, &buf
}

// TestLogging verifies that each log level reaches the configured output with
// its attributes.
func TestLogging(t *testing.T) {
	obs, buf := newTestObserver()
	ctx := context.Background()

	obs.Info(ctx, "request completed", observability.String("request.id", "req-1"))
	obs.Warn(ctx, "admission rejected")
	obs.Error(ctx, "recovery failed", observability.Int("attempts", 3))
	obs.Debug(ctx, "fine detail")

	out := buf.String()
	for _, want := range []string{"request completed", "request.id=req-1", "admission rejected", "recovery failed", "attempts=3", "fine detail"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestLevelFiltering verifies that below-threshold records are dropped.
func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	obs := New(WithOutput(&buf), WithLevel(slog.LevelWarn))

	obs.Info(context.Background(), "not shown")
	obs.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "not shown") {
		t.Errorf("info record leaked past warn level:\n%s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing:\n%s", out)
	}
}

// TestSpanLifecycle verifies span start/end events and attribute
// accumulation.
func TestSpanLifecycle(t *testing.T) {
	obs, buf := newTestObserver()

	ctx, span := obs.StartSpan(context.Background(), "advisor.advice",
		observability.String("caller.id", "c1"))
	if ctx == nil {
		t.Fatal("StartSpan returned nil context")
	}

	span.SetAttributes(observability.Int("response.length", 128))
	span.AddEvent("record.validated")
	span.SetStatus(observability.StatusOK, "")
	span.End()

	out := buf.String()
	for _, want := range []string{"span.start", "advisor.advice", "caller.id=c1", "record.validated", "span.end", "response.length=128", "duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// TestSpanRecordError verifies errors are logged and retained on the span.
func TestSpanRecordError(t *testing.T) {
	obs, buf := newTestObserver()

	_, span := obs.StartSpan(context.Background(), "advisor.risk")
	span.RecordError(errors.New("upstream unavailable"))
	span.RecordError(nil) // no-op
	span.End()

	out := buf.String()
	if !strings.Contains(out, "upstream unavailable") {
		t.Errorf("output missing recorded error:\n%s", out)
	}
}

// TestWithLogger verifies that an injected logger wins over level and output
// options.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	obs := New(WithLogger(logger))

	obs.Info(context.Background(), "hello")

	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("injected logger not used:\n%s", buf.String())
	}
}
