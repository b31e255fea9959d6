// Package conversation defines the reconciled transcript model shared by the
// scoring engine, the call store, and the CLI.
//
// A Bundle is the full time-ordered transcript of one two-party call. Each
// Utterance carries its speaker, start/end time in seconds, message text,
// and up to three polarity-tagged sentiments. Bundles are treated as
// immutable after reconciliation; every metric reads them without
// synchronization.
package conversation
