package callstore

import "errors"

// ErrNotFound indicates the requested call record does not exist.
var ErrNotFound = errors.New("call not found")

// ErrIngestLocked indicates another process currently holds the ingest
// pairing lock.
var ErrIngestLocked = errors.New("ingest lock held by another process")
