package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/greeter-api/internal/api/shared"
	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/platform/logger"
)

// errDeliberateFailure backs the internal error probe.
var errDeliberateFailure = errors.New("deliberate internal failure")

// HelloHandler serves the hello world endpoint and the error probes that
// exercise the error responses end to end.
type HelloHandler struct {
	logger *slog.Logger
}

// NewHelloHandler creates a HelloHandler.
func NewHelloHandler(log *slog.Logger) *HelloHandler {
	if log == nil {
		log = slog.Default()
	}
	return &HelloHandler{logger: log.With(slog.String("component", "hello_handler"))}
}

// Routes mounts the hello endpoints on r.
func (h *HelloHandler) Routes(r chi.Router) {
	r.Get("/", h.HelloWorld)
	r.Get("/internal_error", h.InternalError)
	r.Get("/query_error", h.QueryError)
}

// HelloWorld handles GET /hello_world.
func (h *HelloHandler) HelloWorld(w http.ResponseWriter, r *http.Request) {
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("hello world requested")
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Data: MessageData{Message: domain.GreetingMessage("World")},
	})
}

// InternalError handles GET /hello_world/internal_error.
func (h *HelloHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, errDeliberateFailure)
}

// QueryError handles GET /hello_world/query_error.
func (h *HelloHandler) QueryError(w http.ResponseWriter, r *http.Request) {
	HandleAPIError(w, r, &pagination.QueryArgumentError{Detail: "test"})
}
