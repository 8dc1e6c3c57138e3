// Package profile defines the user-supplied financial input types — profile,
// goals, portfolio, and market preferences — and their validation rules.
// Validation collects every problem into a [ValidationResult] instead of
// stopping at the first, so the caller can report all input errors at once;
// suspicious-but-legal values surface as warnings rather than errors.
package profile
