package sqlite

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognicore/artikel/pkg/artikel/internalerr"
	"github.com/cognicore/artikel/pkg/artikel/store"
	"github.com/cognicore/artikel/pkg/artikel/suggest"
)

// sqliteStore implements store.Store on SQLite. Rows are keyed by ULID so
// entries of one bucket come back in insertion order.
type sqliteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	// A single connection serializes writers instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}

	return &sqliteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS sentence_results (
	id TEXT PRIMARY KEY,
	hash TEXT NOT NULL,
	text TEXT NOT NULL,
	suggestions TEXT NOT NULL,
	UNIQUE(hash, text)
);

CREATE INDEX IF NOT EXISTS idx_sentence_results_hash ON sentence_results(hash);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Now(), s.entropy).String()
}

// Get implements store.Store. Rows whose suggestions cannot be decoded are
// skipped and reported with store.ErrCorrupt.
func (s *sqliteStore) Get(ctx context.Context, hash string) (store.Bucket, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text, suggestions FROM sentence_results WHERE hash=? ORDER BY id`, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var (
		bucket store.Bucket
		bad    int
	)
	for rows.Next() {
		var (
			r   suggest.SentenceResult
			raw string
		)
		if err := rows.Scan(&r.Text, &raw); err != nil {
			return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
		}
		if err := json.Unmarshal([]byte(raw), &r.Suggestions); err != nil {
			bad++
			continue
		}
		bucket = append(bucket, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	if bad > 0 {
		return bucket, fmt.Errorf("%w: %d rows under %s", store.ErrCorrupt, bad, hash)
	}
	return bucket, nil
}

// Put replaces the rows of hash in one transaction. Row ids are fresh ULIDs
// so the bucket order is kept.
func (s *sqliteStore) Put(ctx context.Context, hash string, b store.Bucket) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sentence_results WHERE hash=?`, hash); err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sentence_results (id, hash, text, suggestions) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	defer stmt.Close()

	for _, r := range b {
		suggestions := r.Suggestions
		if suggestions == nil {
			suggestions = []suggest.Offset{}
		}
		raw, err := json.Marshal(suggestions)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, s.newID(), hash, r.Text, string(raw)); err != nil {
			return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	return nil
}

// Flush is a no-op: every Put commits.
func (s *sqliteStore) Flush(ctx context.Context) error { return nil }

// Len returns the number of cached sentences.
func (s *sqliteStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sentence_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", internalerr.ErrStoreUnavailable, err)
	}
	return n, nil
}
