package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/platform/logger"
	"github.com/phrazzld/greeter-api/internal/store"
)

const greetingColumns = "id, created_at, updated_at, name, message"

// PostgresGreetingStore implements store.GreetingStore.
type PostgresGreetingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.GreetingStore = (*PostgresGreetingStore)(nil)

// NewPostgresGreetingStore creates a greeting store on db, which may be a pool
// or a transaction owned by the caller. A nil logger selects slog.Default.
func NewPostgresGreetingStore(db store.DBTX, log *slog.Logger) *PostgresGreetingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresGreetingStore{
		db:     db,
		logger: log.With(slog.String("component", "greeting_store")),
	}
}

// WithTx implements store.GreetingStore.
func (s *PostgresGreetingStore) WithTx(tx *sql.Tx) store.GreetingStore {
	return &PostgresGreetingStore{db: tx, logger: s.logger}
}

// List implements store.GreetingStore.
func (s *PostgresGreetingStore) List(ctx context.Context, offset, limit int) ([]*domain.Greeting, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + greetingColumns + `
		FROM greetings
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to list greetings",
			slog.String("error", err.Error()),
			slog.Int("offset", offset),
			slog.Int("limit", limit))
		return nil, store.NewStoreError("greeting", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	greetings := make([]*domain.Greeting, 0, limit)
	for rows.Next() {
		g, err := scanGreeting(rows)
		if err != nil {
			return nil, store.NewStoreError("greeting", "list", "scan failed", err)
		}
		greetings = append(greetings, g)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("greeting", "list", "row iteration failed", MapError(err))
	}

	log.Debug("listed greetings",
		slog.Int("offset", offset),
		slog.Int("limit", limit),
		slog.Int("count", len(greetings)))
	return greetings, nil
}

// Count implements store.GreetingStore.
func (s *PostgresGreetingStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM greetings`).Scan(&n); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count greetings",
			slog.String("error", err.Error()))
		return 0, store.NewStoreError("greeting", "count", "query failed", MapError(err))
	}
	return n, nil
}

// GetByID implements store.GreetingStore.
func (s *PostgresGreetingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Greeting, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving greeting by ID", slog.String("greeting_id", id.String()))

	row := s.db.QueryRowContext(ctx, `SELECT `+greetingColumns+` FROM greetings WHERE id = $1`, id)
	g, err := scanGreeting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("greeting not found", slog.String("greeting_id", id.String()))
			return nil, store.ErrGreetingNotFound
		}
		log.Error("failed to get greeting",
			slog.String("error", err.Error()),
			slog.String("greeting_id", id.String()))
		return nil, store.NewStoreError("greeting", "get", "query failed", MapError(err))
	}
	return g, nil
}

// Create implements store.GreetingStore.
func (s *PostgresGreetingStore) Create(ctx context.Context, g *domain.Greeting) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := g.Validate(); err != nil {
		log.Warn("greeting validation failed during create",
			slog.String("error", err.Error()),
			slog.String("greeting_id", g.ID.String()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO greetings (`+greetingColumns+`) VALUES ($1, $2, $3, $4, $5)`,
		g.ID, g.CreatedAt, g.UpdatedAt, g.Name, g.Message)
	if err != nil {
		mapped := MapError(err)
		if store.IsDuplicateError(mapped) {
			log.Warn("duplicate greeting id", slog.String("greeting_id", g.ID.String()))
		} else {
			log.Error("failed to create greeting",
				slog.String("error", err.Error()),
				slog.String("greeting_id", g.ID.String()))
		}
		return store.NewStoreError("greeting", "create", "insert failed", mapped)
	}

	log.Info("greeting created", slog.String("greeting_id", g.ID.String()))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGreeting(row rowScanner) (*domain.Greeting, error) {
	var g domain.Greeting
	if err := row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt, &g.Name, &g.Message); err != nil {
		return nil, err
	}
	g.CreatedAt = g.CreatedAt.UTC()
	g.UpdatedAt = g.UpdatedAt.UTC()
	return &g, nil
}
