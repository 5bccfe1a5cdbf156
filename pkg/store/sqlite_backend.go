package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createKVTableSQL = `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
`

// SQLiteBackend stores the events blob in a single-row key/value table
type SQLiteBackend struct {
	conn *sql.DB
	path string
}

// OpenSQLiteBackend opens (or creates) the database at path
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := conn.Exec(createKVTableSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &SQLiteBackend{conn: conn, path: path}, nil
}

func (b *SQLiteBackend) Read() (string, error) {
	var value string
	err := b.conn.QueryRow("SELECT value FROM kv WHERE key = ?", EventsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read events: %w", err)
	}
	return value, nil
}

func (b *SQLiteBackend) Write(data string) error {
	_, err := b.conn.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, EventsKey, data)
	if err != nil {
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Location() string {
	return b.path
}

func (b *SQLiteBackend) Close() error {
	return b.conn.Close()
}
