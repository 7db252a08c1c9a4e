package shared

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/phrazzld/greeter-api/internal/platform/logger"
	"github.com/phrazzld/greeter-api/internal/redact"
)

// ErrorObject is a single JSON:API error.
type ErrorObject struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// ErrorDocument is the top-level body of every error response.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// NewErrorDocument builds a document holding one error.
func NewErrorDocument(status int, title, detail string) ErrorDocument {
	return ErrorDocument{Errors: []ErrorObject{{
		Status: status,
		Title:  title,
		Detail: detail,
	}}}
}

// serverErrorBody is written when a response cannot be encoded.
const serverErrorBody = `{"errors":[{"status":500,"title":"Server Error","detail":"See log for details"}]}`

// RespondWithJSON writes data as JSON with the given status code. HTML
// characters are not escaped, so links keep their literal query strings.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(serverErrorBody))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body.Bytes())
}

// RespondWithError writes a JSON:API error document.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	RespondWithErrorAndLog(w, r, status, title, detail, nil)
}

// RespondWithErrorAndLog writes a JSON:API error document containing only the
// safe title and detail, and logs err after redaction. 5xx responses are
// logged at ERROR, 429 at WARN and other statuses at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, title, detail string, err error) {
	attrs := []slog.Attr{
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("title", title),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status == http.StatusTooManyRequests:
		level = slog.LevelWarn
	}
	logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, status, NewErrorDocument(status, title, detail))
}
