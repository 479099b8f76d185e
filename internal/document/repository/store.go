package repository

import (
	"context"
	"errors"

	"github.com/gogotex/docstore/internal/document"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Store is the key-value table behind the document repository.
//
// Put must not retain d, and Get/All return values owned by the caller, so
// mutating a returned document never changes stored state.
type Store interface {
	// Get returns ErrNotFound when nothing is stored under id.
	Get(ctx context.Context, id string) (*document.Document, error)
	// Put replaces whatever is stored under d.ID.
	Put(ctx context.Context, d *document.Document) error
	// All returns every stored document in no particular order.
	All(ctx context.Context) ([]*document.Document, error)
}
