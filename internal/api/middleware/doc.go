// Package middleware provides the HTTP middleware chain shared by every route:
// trace IDs with request-scoped loggers, Prometheus request metrics, CORS and
// rate limiting.
package middleware
