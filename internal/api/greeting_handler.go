package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/greeter-api/internal/api/shared"
	"github.com/phrazzld/greeter-api/internal/domain"
	"github.com/phrazzld/greeter-api/internal/jsonapi"
	"github.com/phrazzld/greeter-api/internal/pagination"
	"github.com/phrazzld/greeter-api/internal/platform/logger"
	"github.com/phrazzld/greeter-api/internal/service"
)

// GreetingsPath is the collection path of greetings.
const GreetingsPath = "/hello_world/greetings"

// GreetingHandlerConfig controls link generation and the accepted page window.
type GreetingHandlerConfig struct {
	// PublicURL prefixes every emitted link, e.g. "https://api.example.com".
	PublicURL       string
	PageSize        int
	LimitToPageSize bool
}

// GreetingHandler serves the greetings collection.
type GreetingHandler struct {
	service         service.GreetingService
	resource        jsonapi.ResourceDescriptor
	registry        jsonapi.TypeRegistry
	pageSize        int
	limitToPageSize bool
	logger          *slog.Logger
}

// NewGreetingHandler creates a GreetingHandler. A non-positive page size falls
// back to pagination.DefaultPageSize.
func NewGreetingHandler(svc service.GreetingService, cfg GreetingHandlerConfig, log *slog.Logger) *GreetingHandler {
	if svc == nil {
		panic("greeting service cannot be nil for GreetingHandler")
	}
	if log == nil {
		log = slog.Default()
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}

	resource := jsonapi.ResourceDescriptor{
		Type:          domain.GreetingResourceType,
		CollectionURL: cfg.PublicURL + GreetingsPath,
	}
	return &GreetingHandler{
		service:         svc,
		resource:        resource,
		registry:        jsonapi.NewTypeRegistry(map[string]jsonapi.ResourceDescriptor{jsonapi.RootKey: resource}),
		pageSize:        pageSize,
		limitToPageSize: cfg.LimitToPageSize,
		logger:          log.With(slog.String("component", "greeting_handler")),
	}
}

// Routes mounts the greeting endpoints on r.
func (h *GreetingHandler) Routes(r chi.Router) {
	r.Get("/", h.ListGreetings)
	r.Post("/", h.CreateGreeting)
	r.Get("/{id}", h.GetGreeting)
}

// ListGreetings handles GET /hello_world/greetings.
func (h *GreetingHandler) ListGreetings(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	window, err := pagination.FromQuery(r.URL.Query(), h.pageSize, h.limitToPageSize)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	page, err := h.service.ListGreetings(r.Context(), window)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	docs, err := jsonapi.SerializeAll(domain.GreetingEntities(page.Greetings), h.registry)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("listed greetings",
		slog.Int("offset", window.Offset),
		slog.Int("limit", window.Limit),
		slog.Int("total", page.Total),
		slog.Int("returned", len(docs)))

	shared.RespondWithJSON(w, r, http.StatusOK, ListResponse{
		Links: pagination.BuildCountedLinks(h.resource.CollectionURL, window.Offset, window.Limit, page.Total),
		Data:  docs,
	})
}

// GetGreeting handles GET /hello_world/greetings/{id}.
func (h *GreetingHandler) GetGreeting(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	g, err := h.service.GetGreeting(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrGreetingNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusNotFound, TitleNotFound,
				fmt.Sprintf("Greeting %q does not exist", id.String()), err)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	h.respondWithGreeting(w, r, http.StatusOK, g)
}

// CreateGreeting handles POST /hello_world/greetings.
func (h *GreetingHandler) CreateGreeting(w http.ResponseWriter, r *http.Request) {
	var req CreateGreetingRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, &ArgumentError{
			Kind:   ErrInvalidBodyArgument,
			Detail: "Body must be a JSON object with a name",
			Err:    err,
		})
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		HandleAPIError(w, r, &ArgumentError{
			Kind:   ErrInvalidBodyArgument,
			Detail: validationDetail(err),
			Err:    err,
		})
		return
	}

	g, err := h.service.CreateGreeting(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", h.resource.ResourceURL(g.ID.String()))
	h.respondWithGreeting(w, r, http.StatusCreated, g)
}

func (h *GreetingHandler) respondWithGreeting(w http.ResponseWriter, r *http.Request, status int, g *domain.Greeting) {
	doc, err := jsonapi.Serialize(g.Entity(), h.registry)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, status, doc)
}
