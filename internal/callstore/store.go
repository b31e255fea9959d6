package callstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"vauxly/internal/config"
	"vauxly/internal/conversation"
	"vauxly/internal/metrics"
)

// Store manages call persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond

	ingestLockAttempts      = 10
	ingestLockRetryInterval = 100 * time.Millisecond
)

// Open initializes or connects to the call database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "calls.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:   db,
		path: dbPath,
		lock: flock.New(filepath.Join(cfg.Paths.DataDir, "ingest.lock")),
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveCall inserts a new call record and returns it with its generated ID.
func (s *Store) SaveCall(ctx context.Context, bundle *conversation.Bundle, report metrics.Report) (*Call, error) {
	if bundle == nil {
		return nil, errors.New("save call: nil bundle")
	}

	bundleJSON, err := json.Marshal(bundle)
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	now := time.Now().UTC()
	call := &Call{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		Bundle:    *bundle,
		Report:    report,
	}

	timestamp := now.Format(time.RFC3339Nano)
	err = s.execWithRetry(ctx,
		`INSERT INTO calls (id, created_at, updated_at, utterance_count, bundle_json, report_json)
         VALUES (?, ?, ?, ?, ?, ?)`,
		call.ID, timestamp, timestamp, len(bundle.Conversation), string(bundleJSON), string(reportJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("insert call: %w", err)
	}
	return call, nil
}

// GetCall fetches one call record by ID. Returns ErrNotFound when no record
// exists.
func (s *Store) GetCall(ctx context.Context, id string) (*Call, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, updated_at, bundle_json, report_json FROM calls WHERE id = ?", id)

	var call Call
	var createdAt, updatedAt, bundleJSON, reportJSON string
	err := row.Scan(&call.ID, &createdAt, &updatedAt, &bundleJSON, &reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch call: %w", err)
	}

	if call.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if call.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	if err := json.Unmarshal([]byte(bundleJSON), &call.Bundle); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}
	if err := json.Unmarshal([]byte(reportJSON), &call.Report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &call, nil
}

// ListCalls returns summaries of all stored calls, newest first.
func (s *Store) ListCalls(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, utterance_count FROM calls ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list calls: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var summary Summary
		var createdAt string
		if err := rows.Scan(&summary.ID, &createdAt, &summary.UtteranceCount); err != nil {
			return nil, fmt.Errorf("scan call summary: %w", err)
		}
		if summary.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// DeleteCall removes a call record. Returns ErrNotFound when no record
// exists.
func (s *Store) DeleteCall(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM calls WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete call: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete call: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// WithIngestLock runs fn while holding the cross-process ingest lock,
// serializing pending-batch pairing. Acquisition is retried briefly; if the
// lock is still held, ErrIngestLocked is returned.
func (s *Store) WithIngestLock(ctx context.Context, fn func() error) error {
	var locked bool
	for attempt := 0; attempt < ingestLockAttempts; attempt++ {
		ok, err := s.lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquire ingest lock: %w", err)
		}
		if ok {
			locked = true
			break
		}
		select {
		case <-time.After(ingestLockRetryInterval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if !locked {
		return ErrIngestLocked
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

// PendingBatches returns the raw payloads currently held in the pending
// slots, keyed by slot number.
func (s *Store) PendingBatches(ctx context.Context) (map[int][]byte, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slot, payload FROM pending_batches ORDER BY slot")
	if err != nil {
		return nil, fmt.Errorf("list pending batches: %w", err)
	}
	defer rows.Close()

	pending := make(map[int][]byte)
	for rows.Next() {
		var slot int
		var payload []byte
		if err := rows.Scan(&slot, &payload); err != nil {
			return nil, fmt.Errorf("scan pending batch: %w", err)
		}
		pending[slot] = payload
	}
	return pending, rows.Err()
}

// StorePendingBatch writes a raw payload into a pending slot.
func (s *Store) StorePendingBatch(ctx context.Context, slot int, payload []byte) error {
	if slot != 1 && slot != 2 {
		return fmt.Errorf("store pending batch: invalid slot %d", slot)
	}
	err := s.execWithRetry(ctx,
		"INSERT OR REPLACE INTO pending_batches (slot, payload, stored_at) VALUES (?, ?, ?)",
		slot, payload, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store pending batch: %w", err)
	}
	return nil
}

// ClearPendingBatches empties both pending slots.
func (s *Store) ClearPendingBatches(ctx context.Context) error {
	if err := s.execWithRetry(ctx, "DELETE FROM pending_batches"); err != nil {
		return fmt.Errorf("clear pending batches: %w", err)
	}
	return nil
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = s.db.ExecContext(ctx, query, args...)
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}
