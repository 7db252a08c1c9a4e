package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/greeter-api/internal/api"
	apimw "github.com/phrazzld/greeter-api/internal/api/middleware"
)

// setupRouter builds the router with the middleware chain and every route.
func (app *application) setupRouter() http.Handler {
	cfg := app.config

	r := chi.NewRouter()
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apimw.NewTraceMiddleware(app.logger))
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(app.metrics.Middleware)
	r.Use(apimw.CORS(cfg.HTTP.CORSAllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	hello := api.NewHelloHandler(app.logger)
	greetings := api.NewGreetingHandler(app.greetingService, api.GreetingHandlerConfig{
		PublicURL:       cfg.Server.PublicURL,
		PageSize:        cfg.Pagination.PageSize,
		LimitToPageSize: cfg.Pagination.LimitToPageSize,
	}, app.logger)

	r.Route("/hello_world", func(r chi.Router) {
		r.Use(apimw.RateLimit(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow()))
		hello.Routes(r)
		r.Route("/greetings", greetings.Routes)
	})

	return r
}
