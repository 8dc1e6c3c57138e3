// Package utils contains small shared helpers used across the wealthwise
// module: a traced JSON-over-HTTP POST helper for provider transports, a
// wall-clock timer for request processing-time metadata, string truncation
// and JSON log formatting, and a generic pointer constructor for optional
// struct fields.
package utils
