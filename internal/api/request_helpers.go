package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Accepted lengths of a textual UUID: bare hex up to the braced/hyphenated form.
const (
	minIDLength = 32
	maxIDLength = 36
)

// getPathUUID parses the UUID path parameter paramName.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if len(raw) < minIDLength || len(raw) > maxIDLength {
		return uuid.Nil, &ArgumentError{
			Kind:   ErrInvalidURLArgument,
			Detail: "ID length should be between 32 and 36 chars",
		}
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ArgumentError{
			Kind:   ErrInvalidURLArgument,
			Detail: "ID is not a valid UUID",
			Err:    err,
		}
	}
	return id, nil
}

// validationDetail turns the first validator failure into a client message.
func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Request body is invalid"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required", field)
	case "max":
		return fmt.Sprintf("Field %q must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("Field %q is invalid", field)
	}
}
