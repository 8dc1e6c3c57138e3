// Package parse converts unreliable language-model output into validated,
// strongly-typed records. Models asked for JSON routinely return it wrapped
// in markdown fences, surrounded by prose, double-encoded, missing commas,
// truncated, or — worst case — echoing the requested schema instead of data.
//
// The package applies a layered, one-way recovery pipeline: character-level
// normalization, document boundary extraction, a bounded set of structural
// comma repairs, a generic best-effort JSON repair fallback, a schema-echo
// guard, and finally mapping into the caller's type. Every stage either
// succeeds or fails with a typed error; repaired output never alters the
// characters of any literal value, and a failure never yields a partial
// record.
//
// The main entry point is the generic [ParseStringAs] function. [Clean]
// exposes the text-level stages on their own for callers that want the
// repaired document rather than a typed value.
package parse
