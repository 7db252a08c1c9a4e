package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// Specific validation errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed.
	ErrInvalidID = errors.New("invalid ID")
)

// Greeting validation errors.
var (
	ErrEmptyGreetingID        = fmt.Errorf("%w: greeting ID cannot be empty", ErrValidation)
	ErrEmptyGreetingName      = fmt.Errorf("%w: greeting name cannot be empty", ErrValidation)
	ErrGreetingNameTooLong    = fmt.Errorf("%w: greeting name is too long", ErrValidation)
	ErrGreetingMessageTooLong = fmt.Errorf("%w: greeting message is too long", ErrValidation)
)
