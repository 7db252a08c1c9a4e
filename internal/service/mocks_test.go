package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/store"
)

// MockGreetingRepository mocks GreetingRepository. WithTx returns the same mock.
type MockGreetingRepository struct {
	mock.Mock
	db *sql.DB
}

func (m *MockGreetingRepository) List(ctx context.Context, offset, limit int) ([]*domain.Greeting, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Greeting), args.Error(1)
}

func (m *MockGreetingRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockGreetingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Greeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Greeting), args.Error(1)
}

func (m *MockGreetingRepository) Create(ctx context.Context, g *domain.Greeting) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGreetingRepository) WithTx(*sql.Tx) store.GreetingStore {
	return m
}

func (m *MockGreetingRepository) DB() *sql.DB {
	return m.db
}
