package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/service"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) ListGreetings(ctx context.Context, window pagination.PageWindow) (*service.GreetingPage, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GreetingPage), args.Error(1)
}

func (m *MockGreetingService) GetGreeting(ctx context.Context, id uuid.UUID) (*domain.Greeting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Greeting), args.Error(1)
}

func (m *MockGreetingService) CreateGreeting(ctx context.Context, name string) (*domain.Greeting, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Greeting), args.Error(1)
}
