// Package local implements the durable local profile store on an SQLite
// file. This is the device-local durability floor: every save lands here
// synchronously before any best-effort remote mirroring happens. Profiles
// are stored as JSON documents keyed by normalized username, alongside a
// single active-session pointer row.
package local

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	username   TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session (
	id       INTEGER PRIMARY KEY CHECK (id = 1),
	username TEXT NOT NULL
);
`

// Store is the SQLite-backed implementation of profile.Store.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the store at the given file path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("local: create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("local: open database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("local: initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get implements profile.Store.
func (s *Store) Get(ctx context.Context, username profile.Username) (*profile.Profile, error) {
	var data string
	err := s.db.GetContext(ctx, &data,
		`SELECT data FROM profiles WHERE username = ?`, username.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("local: get profile %q: %w", username, err)
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("local: decode profile %q: %w", username, err)
	}
	p.Sanitize()
	return &p, nil
}

// Put implements profile.Store.
func (s *Store) Put(ctx context.Context, p *profile.Profile) error {
	if p == nil || !p.Username.IsValid() {
		return shared.NewDomainError("local", "Put", shared.ErrInvalidInput, "profile has no username")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("local: encode profile %q: %w", p.Username, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO profiles (username, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (username) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		p.Username.String(), string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("local: put profile %q: %w", p.Username, err)
	}
	return nil
}

// Session implements profile.Store.
func (s *Store) Session(ctx context.Context) (profile.Username, error) {
	var username string
	err := s.db.GetContext(ctx, &username, `SELECT username FROM session WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", shared.ErrNoActiveSession
	}
	if err != nil {
		return "", fmt.Errorf("local: read session: %w", err)
	}
	return profile.Username(username), nil
}

// SetSession implements profile.Store.
func (s *Store) SetSession(ctx context.Context, username profile.Username) error {
	if !username.IsValid() {
		return shared.NewDomainError("local", "SetSession", shared.ErrInvalidInput, "empty username")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (id, username) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET username = excluded.username`,
		username.String())
	if err != nil {
		return fmt.Errorf("local: set session: %w", err)
	}
	return nil
}

// ClearSession implements profile.Store.
func (s *Store) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = 1`); err != nil {
		return fmt.Errorf("local: clear session: %w", err)
	}
	return nil
}
