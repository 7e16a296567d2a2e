// Package store keeps a SQLite history of clustering runs so results can be
// compared across inputs, budgets and ranking methods.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("store: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	created_at INTEGER NOT NULL,
	input      TEXT NOT NULL,
	points     INTEGER NOT NULL,
	budget     INTEGER NOT NULL,
	method     TEXT NOT NULL,
	sizes      TEXT NOT NULL,
	product    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
`

// Run is one recorded clustering run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Input     string
	Points    int
	Budget    int
	Method    string
	Sizes     []int
	Product   uint64
}

// Store records runs in a SQLite database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
// Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	s, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// New wraps an existing database handle and ensures the schema.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is nil")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("store: ensure schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Save records r. An empty ID is filled with a new UUID and a zero CreatedAt
// with the current time. The stored run is returned.
func (s *Store) Save(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}
	sizes, err := json.Marshal(r.Sizes)
	if err != nil {
		return Run{}, fmt.Errorf("store: encode sizes: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs(id, created_at, input, points, budget, method, sizes, product)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.CreatedAt.UnixNano(), r.Input, r.Points, r.Budget, r.Method, string(sizes), int64(r.Product))
	if err != nil {
		return Run{}, fmt.Errorf("store: insert run %s: %w", r.ID, err)
	}

	return r, nil
}

// Get returns the run with the given id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, input, points, budget, method, sizes, product FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return r, err
}

// List returns up to limit runs, newest first. limit ≤ 0 returns all runs.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	q := `SELECT id, created_at, input, points, budget, method, sizes, product FROM runs
	      ORDER BY created_at DESC, id`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		created int64
		sizes   string
		product int64
	)
	if err := sc.Scan(&r.ID, &created, &r.Input, &r.Points, &r.Budget, &r.Method, &sizes, &product); err != nil {
		return Run{}, err
	}
	if err := json.Unmarshal([]byte(sizes), &r.Sizes); err != nil {
		return Run{}, fmt.Errorf("store: decode sizes of %s: %w", r.ID, err)
	}
	r.CreatedAt = time.Unix(0, created)
	r.Product = uint64(product)

	return r, nil
}
