package service

import (
	"database/sql"

	"github.com/phrazzld/greeter-api/internal/store"
)

// GreetingRepositoryAdapter pairs a store.GreetingStore with the pool it runs on
// so the service can open transactions.
type GreetingRepositoryAdapter struct {
	store.GreetingStore
	db *sql.DB
}

// NewGreetingRepositoryAdapter creates a GreetingRepository backed by greetingStore.
func NewGreetingRepositoryAdapter(greetingStore store.GreetingStore, db *sql.DB) *GreetingRepositoryAdapter {
	return &GreetingRepositoryAdapter{GreetingStore: greetingStore, db: db}
}

// DB returns the pool used for transactions.
func (a *GreetingRepositoryAdapter) DB() *sql.DB {
	return a.db
}

var _ GreetingRepository = (*GreetingRepositoryAdapter)(nil)
