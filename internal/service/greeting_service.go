package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/platform/logger"
	"github.com/phrazzld/greeter-api/internal/store"
)

// GreetingRepository is the persistence the service needs.
type GreetingRepository interface {
	store.GreetingStore
	DB() *sql.DB
}

// GreetingPage is one window of greetings together with the collection size.
type GreetingPage struct {
	Greetings []*domain.Greeting
	Total     int
	Window    pagination.PageWindow
}

// GreetingService provides greeting operations.
type GreetingService interface {
	ListGreetings(ctx context.Context, window pagination.PageWindow) (*GreetingPage, error)
	GetGreeting(ctx context.Context, id uuid.UUID) (*domain.Greeting, error)
	CreateGreeting(ctx context.Context, name string) (*domain.Greeting, error)
}

type greetingServiceImpl struct {
	repo   GreetingRepository
	logger *slog.Logger
}

// NewGreetingService creates a GreetingService. repo is required.
func NewGreetingService(repo GreetingRepository, log *slog.Logger) (GreetingService, error) {
	if repo == nil {
		return nil, &GreetingServiceError{
			Operation: "create_service",
			Message:   "repo cannot be nil",
		}
	}
	if log == nil {
		log = slog.Default()
	}
	return &greetingServiceImpl{
		repo:   repo,
		logger: log.With(slog.String("component", "greeting_service")),
	}, nil
}

// ListGreetings returns the greetings inside window and the total count. A
// window past the end of the collection skips the page query.
func (s *greetingServiceImpl) ListGreetings(ctx context.Context, window pagination.PageWindow) (*GreetingPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	total, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("failed to count greetings", slog.String("error", err.Error()))
		return nil, NewGreetingServiceError("list_greetings", "failed to count greetings", err)
	}

	greetings := []*domain.Greeting{}
	if window.Offset < total {
		greetings, err = s.repo.List(ctx, window.Offset, window.Limit)
		if err != nil {
			log.Error("failed to list greetings",
				slog.String("error", err.Error()),
				slog.Int("offset", window.Offset),
				slog.Int("limit", window.Limit))
			return nil, NewGreetingServiceError("list_greetings", "failed to list greetings", err)
		}
	}

	return &GreetingPage{Greetings: greetings, Total: total, Window: window}, nil
}

// GetGreeting returns ErrGreetingNotFound when id is unknown.
func (s *greetingServiceImpl) GetGreeting(ctx context.Context, id uuid.UUID) (*domain.Greeting, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		mapped := NewGreetingServiceError("get_greeting", "failed to retrieve greeting", err)
		if errors.Is(mapped, ErrGreetingNotFound) {
			log.Debug("greeting not found", slog.String("greeting_id", id.String()))
		} else {
			log.Error("failed to retrieve greeting",
				slog.String("error", err.Error()),
				slog.String("greeting_id", id.String()))
		}
		return nil, mapped
	}
	return g, nil
}

// CreateGreeting builds a greeting for name, stores it and returns the stored row.
func (s *greetingServiceImpl) CreateGreeting(ctx context.Context, name string) (*domain.Greeting, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	g, err := domain.NewGreeting(name)
	if err != nil {
		log.Debug("rejected greeting", slog.String("error", err.Error()))
		return nil, NewGreetingServiceError("create_greeting", "failed to create greeting object", err)
	}

	var stored *domain.Greeting
	err = store.RunInTransaction(ctx, s.repo.DB(), func(ctx context.Context, tx *sql.Tx) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, g); err != nil {
			return NewGreetingServiceError("create_greeting", "failed to save greeting", err)
		}
		var err error
		stored, err = txRepo.GetByID(ctx, g.ID)
		if err != nil {
			return NewGreetingServiceError("create_greeting", "failed to read back greeting", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to create greeting",
			slog.String("error", err.Error()),
			slog.String("greeting_id", g.ID.String()))
		return nil, err
	}

	log.Info("greeting created", slog.String("greeting_id", stored.ID.String()))
	return stored, nil
}
