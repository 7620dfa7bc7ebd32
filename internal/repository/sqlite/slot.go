package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buildbridge/dashboard/internal/domain"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// SlotStore persists the single serialized Identity. The table has at most
// one row; writing overwrites it, clearing deletes it.
type SlotStore struct {
	db *sql.DB
}

// NewSlotStore opens (or creates) the slot database at the given file path.
func NewSlotStore(path string) (*SlotStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session slot path is required")
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping slot database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS session_slot (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slot table: %w", err)
	}

	return &SlotStore{db: db}, nil
}

// Save serializes the identity into the slot, overwriting any prior value.
func (s *SlotStore) Save(ctx context.Context, identity *domain.Identity) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO session_slot (id, payload, updated_at) VALUES (1, ?, datetime('now'))
		 ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to write slot: %w", err)
	}
	return nil
}

// Load reads the slot. An empty slot yields (nil, nil). A payload that does
// not parse is discarded: the slot is cleared and (nil, nil) returned, so a
// corrupt slot always fails open to the logged-out state.
func (s *SlotStore) Load(ctx context.Context) (*domain.Identity, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM session_slot WHERE id = 1`).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt session slot")
		if clearErr := s.Clear(ctx); clearErr != nil {
			return nil, fmt.Errorf("failed to clear corrupt slot: %w", clearErr)
		}
		return nil, nil
	}

	return &identity, nil
}

// Clear empties the slot. Idempotent.
func (s *SlotStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_slot`); err != nil {
		return fmt.Errorf("failed to clear slot: %w", err)
	}
	return nil
}

// Ping reports slot database connectivity.
func (s *SlotStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database.
func (s *SlotStore) Close() error {
	return s.db.Close()
}
