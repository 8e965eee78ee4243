package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/schedule-api/internal/http/middleware"
	"github.com/preston-bernstein/schedule-api/internal/logging"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeProblem = "application/problem+json"
	problemTypeBadReq  = "https://tools.ietf.org/html/rfc9110#section-15.5.1"
)

// problemDetails is an RFC 7807 body.
type problemDetails struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail"`
	RequestID string `json:"requestId,omitempty"`
}

// decodeBody reads a JSON payload. A missing, malformed or null body reports false.
func decodeBody[T any](r *http.Request) (T, bool) {
	var payload *T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload == nil {
		var zero T
		return zero, false
	}
	return *payload, true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, out Outcome) {
	logger := loggerFromContext(r, h.logger)
	switch {
	case out.Problem != "":
		writeProblem(w, r, out.Status, out.Problem, logger)
	case out.Message != "":
		writeError(w, r, out.Status, out.Message, logger)
	default:
		if out.Location != "" {
			w.Header().Set("Location", out.Location)
		}
		if out.Body == nil {
			w.WriteHeader(out.Status)
			return
		}
		writeJSON(w, out.Status, out.Body, logger)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	writeBody(w, contentTypeJSON, status, payload, logger)
}

func writeBody(w http.ResponseWriter, contentType string, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	body := map[string]string{"error": message}
	if reqID := requestID(r); reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string, logger *slog.Logger) {
	body := problemDetails{
		Type:      problemTypeBadReq,
		Title:     http.StatusText(status),
		Status:    status,
		Detail:    detail,
		RequestID: requestID(r),
	}
	writeBody(w, contentTypeProblem, status, body, logger)
}

func requestID(r *http.Request) string {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.RequestIDHeader)
	}
	return reqID
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
