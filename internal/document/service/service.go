package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
	"github.com/google/uuid"
)

// Service defines the document operations used by the handler layer.
type Service interface {
	Save(ctx context.Context, d *document.Document) (*document.Document, error)
	FindByID(ctx context.Context, id string) (*document.Document, error)
	Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error)
}

// Repository upserts, looks up and searches documents held by a Store.
// Saves are serialized so the read-merge-write of one id is atomic and the
// original creation time survives concurrent updates.
type Repository struct {
	store repository.Store
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

// Option customizes a Repository.
type Option func(*Repository)

// WithClock replaces the time source used for new documents.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDGenerator replaces the generator used for documents saved without an id.
func WithIDGenerator(gen func() string) Option {
	return func(r *Repository) { r.newID = gen }
}

func NewRepository(store repository.Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewMemoryRepository returns a Repository backed by a fresh in-memory store.
func NewMemoryRepository(opts ...Option) *Repository {
	return NewRepository(repository.NewMemoryStore(), opts...)
}

// Save upserts d and returns the stored value. A document without an id gets
// a new one. When the id is already stored, its id and creation time are kept
// and everything else is replaced; otherwise the creation time defaults to
// now. d itself is not modified.
func (r *Repository) Save(ctx context.Context, d *document.Document) (*document.Document, error) {
	if d == nil {
		return nil, fmt.Errorf("document is nil: %w", document.ErrInvalidArgument)
	}
	incoming := d.Clone()
	if incoming.ID == "" {
		incoming.ID = r.newID()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.store.Get(ctx, incoming.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load document %s: %w", incoming.ID, err)
	}
	merged := document.Merge(existing, incoming, r.now())
	if err := r.store.Put(ctx, merged); err != nil {
		return nil, fmt.Errorf("store document %s: %w", merged.ID, err)
	}

	op := "insert"
	if existing != nil {
		op = "update"
	}
	metrics.DocumentsSaved.WithLabelValues(op).Inc()
	logger.Debugf("document %s: %s (created %s)", merged.ID, op, merged.Created.Format(time.RFC3339Nano))
	return merged.Clone(), nil
}

// FindByID returns the document stored under id, or nil when there is none.
// An empty id is never found.
func (r *Repository) FindByID(ctx context.Context, id string) (*document.Document, error) {
	if id == "" {
		return nil, nil
	}
	d, err := r.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.Lookups.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("find document %s: %w", id, err)
	}
	metrics.Lookups.WithLabelValues("hit").Inc()
	return d, nil
}

// Search scans every stored document and returns those matching all criteria
// of req, in no particular order. A nil req is the same as an empty one.
func (r *Repository) Search(ctx context.Context, req *document.SearchRequest) ([]*document.Document, error) {
	all, err := r.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}
	out := make([]*document.Document, 0, len(all))
	for _, d := range all {
		if req.Matches(d) {
			out = append(out, d)
		}
	}
	metrics.Searches.Inc()
	metrics.SearchResults.Observe(float64(len(out)))
	logger.Debugf("search matched %d of %d documents", len(out), len(all))
	return out, nil
}
