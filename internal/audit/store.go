// Package audit keeps a durable record of tool invocations in SQLite.
package audit

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Invocation is one recorded tool execution. Arguments are stored as a
// digest only; node names and file paths routinely appear in them.
type Invocation struct {
	ID        string
	Tool      string
	ArgsHash  string
	Status    string // ok or error
	Error     string
	Duration  time.Duration
	InvokedAt time.Time
}

// Store persists invocations. A nil *Store discards every record, so
// callers can thread it through unconditionally.
type Store struct {
	db *sql.DB
}

// Open opens the audit database at path, creating the schema if
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize audit schema: %w", err)
	}
	return s, nil
}

func (s *Store) initTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS invocations (
		id TEXT PRIMARY KEY,
		tool TEXT NOT NULL,
		args_hash TEXT NOT NULL,
		status TEXT NOT NULL,
		error_message TEXT,
		duration_ms INTEGER NOT NULL,
		invoked_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_invocations_tool ON invocations(tool);
	CREATE INDEX IF NOT EXISTS idx_invocations_invoked_at ON invocations(invoked_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record writes one invocation row.
func (s *Store) Record(ctx context.Context, inv Invocation) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO invocations (id, tool, args_hash, status, error_message, duration_ms, invoked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, inv.ID, inv.Tool, inv.ArgsHash, inv.Status, inv.Error, inv.Duration.Milliseconds(), inv.InvokedAt)
	if err != nil {
		return fmt.Errorf("failed to record invocation: %w", err)
	}
	return nil
}

// Recent returns up to limit invocations, newest first. limit <= 0
// selects a default of 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Invocation, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, tool, args_hash, status, error_message, duration_ms, invoked_at
		FROM invocations
		ORDER BY invoked_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query invocations: %w", err)
	}
	defer rows.Close()

	var out []Invocation
	for rows.Next() {
		var inv Invocation
		var errMsg sql.NullString
		var durationMS int64
		if err := rows.Scan(&inv.ID, &inv.Tool, &inv.ArgsHash, &inv.Status, &errMsg, &durationMS, &inv.InvokedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invocation: %w", err)
		}
		inv.Error = errMsg.String
		inv.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Digest fingerprints a tool's arguments so raw values never land in
// the database. Map marshaling is key-sorted, which keeps the digest
// stable for equal arguments.
func Digest(args map[string]any) string {
	b, err := json.Marshal(args)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
