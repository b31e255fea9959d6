// Package metrics derives the behavioral call-review scores from a
// reconciled conversation bundle.
//
// Every metric is a pure function over an immutable bundle: filler-word
// ratio, words per minute, script adherence, call control, customer
// motivation, representative certainty, and the customer sentiment journey.
// None mutates shared state or depends on another's output, so Compute runs
// them concurrently. Each function defines a numeric floor for degenerate
// input (empty bundles, zero denominators) and never returns NaN or an
// error.
//
// The scoring constants in this package (the 0.7 adherence similarity
// cutoff, the 1s silence gap, the certainty weights, the journey
// amplification) are fixed business values; stored reports depend on them
// staying put.
package metrics
