// Package sqlite implements the dictionary store against a Digital Pali
// Dictionary database file. The file is an externally produced artifact and
// is opened strictly read-only; the adapter never writes to it.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/palitools/paligloss/internal/domain"

	_ "modernc.org/sqlite"
)

// defaultMaxBindParams stays safely under SQLite's historical 999
// bind-variable ceiling; batched IN (...) clauses are chunked to this size.
const defaultMaxBindParams = 900

// Store provides read-only access to a dictionary database file.
type Store struct {
	db            *sql.DB
	maxBindParams int
}

// Option tunes a Store at open time.
type Option func(*Store)

// WithMaxBindParams overrides the per-query bind-variable ceiling.
// Values below 1 are ignored.
func WithMaxBindParams(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxBindParams = n
		}
	}
}

// Open opens the database file read-only and verifies that it carries the
// expected dictionary schema. A file that is missing any of the three core
// tables fails with domain.ErrInvalidBackend.
func Open(ctx context.Context, path string, opts ...Option) (*Store, error) {
	dsn := "file:" + path + "?immutable=1&mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open dictionary db: %w", err)
	}

	s := &Store{db: db, maxBindParams: defaultMaxBindParams}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.verifySchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database file is readable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping dictionary db: %w", err)
	}
	return nil
}

// verifySchema checks for the three tables the engine queries. The check
// runs once at open time so later query failures mean real I/O trouble, not
// a wrong file.
func (s *Store) verifySchema(ctx context.Context) error {
	const q = `SELECT count(*) FROM sqlite_master
		WHERE type = 'table' AND name IN ('dpd_headwords', 'lookup', 'dpd_roots')`

	var n int
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return fmt.Errorf("inspect dictionary schema: %w", err)
	}
	if n != 3 {
		return fmt.Errorf("dictionary schema: %w", domain.ErrInvalidBackend)
	}
	return nil
}

// chunk splits vs into slices of at most size elements.
func chunk[T any](vs []T, size int) [][]T {
	if len(vs) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(vs)+size-1)/size)
	for size < len(vs) {
		out = append(out, vs[:size])
		vs = vs[size:]
	}
	return append(out, vs)
}
