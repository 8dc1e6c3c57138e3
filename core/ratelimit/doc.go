// Package ratelimit implements a sliding-window admission controller. A
// [Limiter] keeps, per caller identifier, the timestamps of recently admitted
// requests inside a trailing window; a request is admitted only while fewer
// than the allowed number of timestamps remain in the window. Capacity frees
// itself purely by time passing — there is no release operation.
//
// Limiters are explicitly constructed and injected (never a package-level
// singleton) and accept a replaceable clock, so tests can drive time
// deterministically.
package ratelimit
