// Package reconcile merges the two per-speaker emotion-job result streams of
// a call into one time-ordered conversation bundle.
//
// Two entry points exist. Combine takes a callback payload whose containers
// are explicitly labeled (response1 is the customer stream, response2 the
// representative stream), holds no state, and is safe for unlimited
// concurrent use. Accumulator supports jobs that complete independently: the
// first submitted batch is treated as the customer stream and the second as
// the representative stream, so callers must schedule customer audio as job
// one. An Accumulator is owned by a single in-flight call and must not be
// shared; any failure while building the bundle clears both slots so the
// next pair starts clean.
package reconcile
