// Package advice defines the typed records the advisory service expects a
// model to produce — the financial advice, market recommendation, and goal
// plan schemas — together with their field-level validation rules.
//
// Each record implements parse.Validator: required fields must be present,
// enumerated fields must take one of their closed set of values, and numeric
// fields must fall inside their declared ranges. Optional fields missing from
// a document default to their empty form and are never invented. A record
// that fails any check is discarded whole; partial records are never
// returned.
package advice
