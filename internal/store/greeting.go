package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/phrazzld/greeter-api/internal/domain"
)

// GreetingStore persists greetings.
type GreetingStore interface {
	// List returns at most limit greetings starting at offset, oldest first.
	// An empty page yields an empty slice.
	List(ctx context.Context, offset, limit int) ([]*domain.Greeting, error)

	// Count returns the total number of stored greetings.
	Count(ctx context.Context) (int, error)

	// GetByID returns ErrGreetingNotFound when no greeting has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Greeting, error)

	// Create validates and inserts a new greeting. Validation failures wrap
	// ErrInvalidEntity and a repeated id wraps ErrDuplicate.
	Create(ctx context.Context, greeting *domain.Greeting) error

	// WithTx returns a store bound to tx.
	WithTx(tx *sql.Tx) GreetingStore
}
