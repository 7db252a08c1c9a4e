package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/store"
)

func newTestService(t *testing.T) (GreetingService, *MockGreetingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := &MockGreetingRepository{db: db}
	svc, err := NewGreetingService(repo, nil)
	require.NoError(t, err)
	return svc, repo, sqlMock
}

func mustGreeting(t *testing.T, name string) *domain.Greeting {
	t.Helper()
	g, err := domain.NewGreeting(name)
	require.NoError(t, err)
	return g
}

func TestNewGreetingService_RequiresRepo(t *testing.T) {
	svc, err := NewGreetingService(nil, nil)
	assert.Nil(t, svc)
	var svcErr *GreetingServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_service", svcErr.Operation)
}

func TestListGreetings(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	page := []*domain.Greeting{mustGreeting(t, "a"), mustGreeting(t, "b")}
	repo.On("Count", ctx).Return(25, nil)
	repo.On("List", ctx, 20, 20).Return(page, nil)

	got, err := svc.ListGreetings(ctx, pagination.PageWindow{Offset: 20, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, 25, got.Total)
	assert.Equal(t, page, got.Greetings)
	assert.Equal(t, pagination.PageWindow{Offset: 20, Limit: 20}, got.Window)
	repo.AssertExpectations(t)
}

func TestListGreetings_PastEndSkipsQuery(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	repo.On("Count", ctx).Return(5, nil)

	got, err := svc.ListGreetings(ctx, pagination.PageWindow{Offset: 20, Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, got.Greetings)
	assert.Empty(t, got.Greetings)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestListGreetings_CountError(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	cause := store.NewStoreError("greeting", "count", "query failed", errors.New("db down"))
	repo.On("Count", ctx).Return(0, cause)

	_, err := svc.ListGreetings(ctx, pagination.PageWindow{Offset: 0, Limit: pagination.DefaultPageSize})
	var svcErr *GreetingServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "list_greetings", svcErr.Operation)

	var storeErr *store.StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestGetGreeting(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	g := mustGreeting(t, "Ada")
	repo.On("GetByID", ctx, g.ID).Return(g, nil)

	got, err := svc.GetGreeting(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)
}

func TestGetGreeting_NotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, store.ErrGreetingNotFound)

	_, err := svc.GetGreeting(ctx, id)
	assert.Equal(t, ErrGreetingNotFound, err)
}

func TestCreateGreeting(t *testing.T) {
	svc, repo, sqlMock := newTestService(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	var created *domain.Greeting
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *domain.Greeting) bool {
		return g.Name == "Ada" && g.Message == "Hello Ada!"
	})).Run(func(args mock.Arguments) {
		created = args.Get(1).(*domain.Greeting)
	}).Return(nil)

	stored := mustGreeting(t, "Ada")
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(stored, nil)

	got, err := svc.CreateGreeting(context.Background(), "Ada")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Same(t, stored, got)
	repo.AssertCalled(t, "GetByID", mock.Anything, created.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreateGreeting_InvalidName(t *testing.T) {
	svc, repo, sqlMock := newTestService(t)

	_, err := svc.CreateGreeting(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidGreeting)
	assert.ErrorIs(t, err, domain.ErrEmptyGreetingName)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCreateGreeting_StoreErrorRollsBack(t *testing.T) {
	svc, repo, sqlMock := newTestService(t)

	sqlMock.ExpectBegin()
	sqlMock.ExpectRollback()

	cause := errors.New("insert failed")
	repo.On("Create", mock.Anything, mock.Anything).Return(cause)

	_, err := svc.CreateGreeting(context.Background(), "Ada")
	var svcErr *GreetingServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "create_greeting", svcErr.Operation)
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
