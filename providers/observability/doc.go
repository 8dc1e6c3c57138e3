// Package observability defines the tracing and structured-logging
// abstraction used across the wealthwise advisory core. Components accept a
// [Provider] (or read an active [Span] from the context) instead of logging
// directly, so callers decide where telemetry goes: the slogobs subpackage
// routes everything through log/slog, and [Noop] discards it.
//
// The recovery pipeline itself never logs; only the advisory service and the
// HTTP transport layer emit spans and events.
package observability
