package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/greeter-api/internal/api/shared"
	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/service"
	"github.com/phrazzld/greeter-api/internal/store"
)

// Error titles of the JSON:API error documents.
const (
	TitleInvalidQueryArgument = "Invalid Query Argument"
	TitleInvalidURLArgument   = "Invalid URL Argument"
	TitleInvalidBodyArgument  = "Invalid Body Argument"
	TitleNotFound             = "Not Found"
	TitleMethodNotAllowed     = "Method Not Allowed"
	TitleDatabaseError        = "Database Error"
	TitleServerError          = "Server Error"
)

// ServerErrorDetail is the only detail ever returned with an unexpected failure.
const ServerErrorDetail = "See log for details"

var (
	// ErrInvalidURLArgument marks a malformed path parameter.
	ErrInvalidURLArgument = errors.New("invalid URL argument")

	// ErrInvalidBodyArgument marks a body that cannot be decoded or validated.
	ErrInvalidBodyArgument = errors.New("invalid body argument")
)

// ArgumentError carries a client-safe detail for a 400 response. Kind is one of
// ErrInvalidURLArgument or ErrInvalidBodyArgument.
type ArgumentError struct {
	Kind   error
	Detail string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *ArgumentError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// HandleAPIError writes the error document for err. Details returned to the
// client are fixed strings or messages built for clients; anything else only
// reaches the log, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, title, detail := classifyError(err)
	shared.RespondWithErrorAndLog(w, r, status, title, detail, err)
}

func classifyError(err error) (int, string, string) {
	var queryErr *pagination.QueryArgumentError
	var argErr *ArgumentError
	var storeErr *store.StoreError

	switch {
	case errors.As(err, &queryErr):
		return http.StatusBadRequest, TitleInvalidQueryArgument, queryErr.Detail

	case errors.As(err, &argErr):
		title := TitleInvalidBodyArgument
		if errors.Is(argErr.Kind, ErrInvalidURLArgument) {
			title = TitleInvalidURLArgument
		}
		return http.StatusBadRequest, title, argErr.Detail

	case errors.Is(err, service.ErrInvalidGreeting):
		return http.StatusBadRequest, TitleInvalidBodyArgument, greetingValidationDetail(err)

	case errors.Is(err, service.ErrGreetingNotFound):
		return http.StatusNotFound, TitleNotFound, "Greeting does not exist"

	case errors.As(err, &storeErr):
		return http.StatusInternalServerError, TitleDatabaseError,
			fmt.Sprintf("Could not %s %s", storeErr.Operation, storeErr.Entity)

	case errors.Is(err, store.ErrTransactionFailed):
		return http.StatusInternalServerError, TitleDatabaseError, "Transaction failed"

	default:
		return http.StatusInternalServerError, TitleServerError, ServerErrorDetail
	}
}

func greetingValidationDetail(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyGreetingName):
		return "Name is required"
	case errors.Is(err, domain.ErrGreetingNameTooLong):
		return fmt.Sprintf("Name must be at most %d characters", domain.MaxGreetingNameLength)
	case errors.Is(err, domain.ErrGreetingMessageTooLong):
		return fmt.Sprintf("Greeting message must be at most %d characters", domain.MaxGreetingMessageLength)
	default:
		return "Greeting is invalid"
	}
}

// NotFound answers requests no route matched.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, TitleNotFound, "Requested URL not found")
}

// MethodNotAllowed answers requests whose path matched with another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, TitleMethodNotAllowed,
		fmt.Sprintf("Method %s is not allowed for this URL", r.Method))
}
