// Package slogobs provides an observability.Provider backed by the standard
// library's log/slog. Spans are rendered as paired start/end debug events with
// a recorded duration, and log calls map one-to-one onto slog levels.
package slogobs
