// Package store persists the current invoice draft. The reducer stays pure;
// callers load once at startup and save after every reduction.
package store

import (
	"context"

	"github.com/andy/invoiceful/internal/domain"
)

// Store is the draft persistence collaborator. Load returns nil when nothing
// usable is stored, in which case the caller falls back to the default draft.
// Save replaces whatever was stored before; callers treat it as
// fire-and-forget.
type Store interface {
	Load(ctx context.Context) (*domain.Invoice, error)
	Save(ctx context.Context, inv domain.Invoice) error
}
