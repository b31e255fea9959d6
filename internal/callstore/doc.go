// Package callstore persists scored call records in SQLite.
//
// A call record couples the reconciled conversation bundle with its derived
// metrics report, keyed by a generated call ID. The store also holds the
// pending-batch slots that let the two emotion-job results of one call
// arrive across separate CLI invocations; a file lock serializes that
// pairing so concurrent ingests cannot interleave batches from different
// calls.
package callstore
