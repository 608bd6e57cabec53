// Package excuse implements the recent-excuse repository in process memory.
// Records live for the lifetime of the process; there is no eviction.
package excuse

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/excuse-backend/internal/domain"
)

// Repo stores generated excuses keyed by ID.
type Repo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]domain.Excuse
	order []uuid.UUID // insertion order
	now   func() time.Time
	newID func() uuid.UUID
}

// Option customizes a Repo.
type Option func(*Repo)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Repo) { r.now = now }
}

// WithIDGenerator overrides the ID source.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(r *Repo) { r.newID = newID }
}

// New creates an empty repository.
func New(opts ...Option) *Repo {
	r := &Repo{
		byID:  make(map[uuid.UUID]domain.Excuse),
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create assigns a fresh ID and timestamp, stores the excuse and returns it.
// Category and tone are stored as given.
func (r *Repo) Create(_ context.Context, category domain.Category, tone domain.Tone, content string) domain.Excuse {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := domain.Excuse{
		ID:        r.newID(),
		Category:  category,
		Tone:      tone,
		Content:   content,
		CreatedAt: r.now().UTC(),
	}

	if _, exists := r.byID[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	r.byID[e.ID] = e

	return e
}

// Recent returns up to limit excuses ordered by CreatedAt DESC.
// Excuses with equal timestamps keep their insertion order.
// Returns an empty slice if the repository is empty.
func (r *Repo) Recent(_ context.Context, limit int) []domain.Excuse {
	if limit <= 0 {
		limit = domain.DefaultRecentLimit
	}

	r.mu.RLock()
	all := make([]domain.Excuse, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.byID[id])
	}
	r.mu.RUnlock()

	slices.SortStableFunc(all, func(a, b domain.Excuse) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Count returns the number of stored excuses.
func (r *Repo) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
