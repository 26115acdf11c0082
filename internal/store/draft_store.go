package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/andy/invoiceful/internal/db"
	"github.com/andy/invoiceful/internal/domain"
)

// draftKey identifies the single working draft.
const draftKey = "current"

// timeLayout is the RFC3339 format for storing times in SQLite
const timeLayout = time.RFC3339

// DraftStore is a SQLite implementation of Store
type DraftStore struct {
	db *db.DB
}

// NewDraftStore creates a new DraftStore
func NewDraftStore(database *db.DB) *DraftStore {
	return &DraftStore{db: database}
}

// Load reads the stored draft. A missing row or a blob that no longer parses
// both return nil so the caller starts from the default draft; only real
// database failures surface as errors.
func (s *DraftStore) Load(ctx context.Context) (*domain.Invoice, error) {
	query := `SELECT data FROM drafts WHERE key = ?`

	var data string
	err := s.db.QueryRowContext(ctx, query, draftKey).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var inv domain.Invoice
	if err := json.Unmarshal([]byte(data), &inv); err != nil {
		// Corrupt blob: recover silently with the default draft
		return nil, nil
	}

	return &inv, nil
}

// Save serializes the draft and upserts it under the working key
func (s *DraftStore) Save(ctx context.Context, inv domain.Invoice) error {
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	query := `
		INSERT INTO drafts (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	if _, err := s.db.ExecContext(ctx, query, draftKey, string(data), time.Now().Format(timeLayout)); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	return nil
}
