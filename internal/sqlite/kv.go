// Package sqlite implements types.KVStore on top of an embedded SQLite
// database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/bookshelf/internal/kv"
	"github.com/mesh-intelligence/bookshelf/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "bookshelf.db"

// KV is a KVStore backed by a single SQLite table. Unlike a cache, the
// database file is the source of truth and survives between runs.
type KV struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open creates dataDir if needed, opens (or creates) the database inside it
// and applies the schema.
func Open(dataDir string) (*KV, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection serializes writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &KV{db: db}, nil
}

// Get returns the value stored under key, or ErrStorageNotFound.
func (s *KV) Get(key string) ([]byte, error) {
	if err := kv.ValidateKey(key); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, types.ErrStoreClosed
	}

	var value string
	err := s.db.QueryRow(selectKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, types.ErrStorageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set upserts value under key in a single statement.
func (s *KV) Set(key string, value []byte) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return types.ErrStoreClosed
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(upsertKV, key, string(value), now); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Close closes the database. Idempotent.
func (s *KV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
