// Package recordstore presents one logical table per entity type, backed
// primarily by PostgreSQL with a transparent fallback to a local JSON
// document store when the relational backend is unreachable. Reads consult
// both backends and merge JSON-only fields onto relational rows so callers
// see a single coherent view regardless of which backend most recently
// accepted a write.
package recordstore

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stratodeck/copytrade/internal/pkg/logger"
)

var (
	// ErrNotFound is returned when a record exists in neither backend.
	ErrNotFound = errors.New("record not found")
	// ErrValidation wraps caller errors that must surface as 4xx.
	ErrValidation = errors.New("validation error")
)

// Store is the unified dual-backend record store. db may be nil when the
// relational store never came up; every operation then runs against the
// JSON document alone.
type Store struct {
	db   *sqlx.DB
	file *FileStore
}

// NewStore creates a record store over the given relational handle and
// fallback document path.
func NewStore(db *sqlx.DB, fallbackPath string) (*Store, error) {
	file, err := NewFileStore(fallbackPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open fallback store: %w", err)
	}
	return &Store{db: db, file: file}, nil
}

// File exposes the fallback document store, used by the reconcile utility.
func (s *Store) File() *FileStore {
	return s.file
}

// isBackendUnavailable classifies an error as a relational-backend outage,
// the only condition under which writes fall through to the JSON store.
// Anything else (constraint violations, bad SQL, validation) propagates.
func isBackendUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 08: connection exception, class 57: operator intervention,
		// class 53: insufficient resources
		code := pgErr.Code
		if strings.HasPrefix(code, "08") || strings.HasPrefix(code, "57") || strings.HasPrefix(code, "53") {
			return true
		}
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"no such host",
		"failed to connect",
		"i/o timeout",
		"conn closed",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// writeThrough attempts the relational write first and applies the same
// logical change to the JSON document on a classified backend failure.
// The returned flag reports whether the record ended up degraded (held only
// by the JSON store).
func (s *Store) writeThrough(ctx context.Context, op string, pgFn func(ctx context.Context) error, fileFn func(doc *Document) error) (bool, error) {
	if s.db != nil {
		err := pgFn(ctx)
		if err == nil {
			return false, nil
		}
		if !isBackendUnavailable(err) {
			return false, err
		}
		logger.Warn("relational backend unavailable, falling back to JSON store",
			logger.String("op", op),
			logger.Err(err),
		)
	}
	if err := s.file.Update(fileFn); err != nil {
		return true, err
	}
	return true, nil
}
