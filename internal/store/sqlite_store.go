package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteStore persists histories through database/sql over the ncruces
// driver. Safe for concurrent use.
type SQLiteStore struct {
	mu       sync.RWMutex
	db       *sql.DB
	capacity int
}

var _ Storer = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS turns (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    caller_id TEXT NOT NULL,
    role TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_turns_caller ON turns(caller_id, id);
`

// NewSQLiteStore creates an in-memory SQLite store.
func NewSQLiteStore(capacity int) (*SQLiteStore, error) {
	return NewSQLiteStoreWithDSN(":memory:", capacity)
}

// NewSQLiteStoreWithDSN creates a store with a specific data source name.
// Use ":memory:" for ephemeral storage or a file path to persist.
func NewSQLiteStoreWithDSN(dsn string, capacity int) (*SQLiteStore, error) {
	if capacity <= 0 {
		capacity = 1
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	// One connection: ":memory:" databases are per-connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &SQLiteStore{db: db, capacity: capacity}, nil
}

// Append inserts the turn and trims the caller's log to capacity inside one
// transaction, so readers never observe an over-full history.
func (s *SQLiteStore) Append(callerID string, turn Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin append: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO turns (caller_id, role, content, created_at) VALUES (?, ?, ?, ?)`,
		callerID, turn.Role, turn.Content, turn.CreatedAt.UnixMilli(),
	); err != nil {
		return fmt.Errorf("store: insert turn: %w", err)
	}

	if _, err := tx.Exec(
		`DELETE FROM turns WHERE caller_id = ? AND id NOT IN (
			SELECT id FROM turns WHERE caller_id = ? ORDER BY id DESC LIMIT ?
		)`,
		callerID, callerID, s.capacity,
	); err != nil {
		return fmt.Errorf("store: trim history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit append: %w", err)
	}
	return nil
}

// Recent returns the caller's retained turns, oldest first.
func (s *SQLiteStore) Recent(callerID string) ([]Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT role, content, created_at FROM turns WHERE caller_id = ? ORDER BY id ASC`,
		callerID,
	)
	if err != nil {
		return nil, fmt.Errorf("store: query history: %w", err)
	}
	defer rows.Close()

	var out []Turn
	for rows.Next() {
		var t Turn
		var createdAt int64
		if err := rows.Scan(&t.Role, &t.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("store: scan turn: %w", err)
		}
		t.CreatedAt = time.UnixMilli(createdAt)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate history: %w", err)
	}
	if out == nil {
		out = []Turn{}
	}
	return out, nil
}

// Clear drops the caller's history.
func (s *SQLiteStore) Clear(callerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM turns WHERE caller_id = ?`, callerID); err != nil {
		return fmt.Errorf("store: clear history: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
