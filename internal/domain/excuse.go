package domain

import (
	"time"

	"github.com/google/uuid"
)

// Believability bounds.
const (
	MinBelievability     = 1
	MaxBelievability     = 10
	DefaultBelievability = 7
)

// Recent listing limits.
const (
	// DefaultRecentLimit is the page size when a caller asks for none.
	DefaultRecentLimit = 10
	// MaxRecentLimit is the largest page a caller may request.
	MaxRecentLimit = 100
)

// Excuse is a generated excuse kept in the recent-excuse store.
// ID and CreatedAt are assigned once at creation and never change.
type Excuse struct {
	ID        uuid.UUID
	Category  Category
	Tone      Tone
	Content   string
	CreatedAt time.Time
}

// GenerationResult is the normalized output of one generation attempt.
type GenerationResult struct {
	Excuse        string
	Believability int
	Source        Source
}

// FakeContact is the placeholder caller shown by the simulated emergency call.
type FakeContact struct {
	Name         string
	Relationship string
}

// ClampBelievability forces n into [MinBelievability, MaxBelievability].
func ClampBelievability(n int) int {
	return max(MinBelievability, min(MaxBelievability, n))
}
