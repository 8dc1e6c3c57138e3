// Package advisor orchestrates a single advisory request end to end:
// admission control, input validation, the model call, and recovery of the
// model's text into a validated record, stamped with request metadata.
//
// The service performs no retries and owns no I/O beyond the injected
// provider; every failure is returned to the caller as a typed error from
// the ratelimit, profile, parse, or advice packages, so the enclosing API
// layer can branch on kind rather than message text.
package advisor
