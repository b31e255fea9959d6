// Package predictions models the raw result payloads produced by the batch
// emotion-inference service and normalizes their two wire shapes into one
// flat utterance-prediction view.
//
// A result record either wraps a nested predictions list, with a per-model
// breakdown inside each entry, or carries the model breakdown directly.
// Utterances flattens both shapes identically, and every field is optional:
// a missing or malformed level yields no extracted utterances rather than an
// error, so downstream projection never branches on payload shape.
package predictions
