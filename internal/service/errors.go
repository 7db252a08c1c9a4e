package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/store"
)

var (
	// ErrGreetingNotFound indicates that the greeting does not exist.
	ErrGreetingNotFound = errors.New("greeting not found")

	// ErrInvalidGreeting indicates that the request could not produce a valid
	// greeting. The wrapped domain error carries the reason.
	ErrInvalidGreeting = errors.New("invalid greeting")
)

// GreetingServiceError wraps unexpected failures with the operation that hit them.
type GreetingServiceError struct {
	Operation string // e.g. "list_greetings"
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *GreetingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("greeting service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("greeting service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GreetingServiceError) Unwrap() error {
	return e.Err
}

// NewGreetingServiceError maps known store and domain conditions to service
// sentinels and wraps everything else.
func NewGreetingServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrGreetingNotFound), errors.Is(err, store.ErrGreetingNotFound):
		return ErrGreetingNotFound
	case errors.Is(err, ErrInvalidGreeting):
		return err
	case errors.Is(err, domain.ErrValidation), errors.Is(err, store.ErrInvalidEntity):
		return fmt.Errorf("%w: %w", ErrInvalidGreeting, err)
	}

	return &GreetingServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
