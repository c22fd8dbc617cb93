package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	_ "github.com/lib/pq"
)

// ErrEmbeddedCredentials indicates a connection string carries a username or
// password inline. Credentials must come from PG* environment variables or
// .pgpass instead.
var ErrEmbeddedCredentials = errors.New("connection string contains embedded credentials")

// PostgresBackend stores slots in a single-table Postgres database. Selected
// when the store path is a postgres:// connection string.
type PostgresBackend struct {
	connStr string
	db      *sql.DB
}

// ValidateConnString rejects connection strings with inline credentials.
func ValidateConnString(connStr string) error {
	u, err := url.Parse(connStr)
	if err != nil {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if u.User != nil && u.User.String() != "" {
		return ErrEmbeddedCredentials
	}
	return nil
}

func NewPostgresBackend(connStr string) (*PostgresBackend, error) {
	if err := ValidateConnString(connStr); err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			data BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	return &PostgresBackend{connStr: connStr, db: db}, nil
}

func (b *PostgresBackend) Read(slot string) ([]byte, error) {
	var data []byte
	row := b.db.QueryRow("SELECT data FROM slots WHERE name = $1", slot)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %q: %w", slot, err)
	}
	return data, nil
}

func (b *PostgresBackend) Write(slot string, data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO slots (name, data, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`,
		slot, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", slot, err)
	}
	return nil
}

func (b *PostgresBackend) Slots() ([]string, error) {
	rows, err := b.db.Query("SELECT name FROM slots ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		slots = append(slots, name)
	}
	return slots, rows.Err()
}

func (b *PostgresBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

var _ Backend = (*PostgresBackend)(nil)
