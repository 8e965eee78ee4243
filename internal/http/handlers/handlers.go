package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/schedule-api/internal/app/games"
	"github.com/preston-bernstein/schedule-api/internal/app/teams"
)

// Handler wires HTTP routes to the game and team services.
type Handler struct {
	games  *games.Service
	teams  *teams.Service
	logger *slog.Logger
	ready  func() bool
}

// NewHandler constructs a Handler. A nil ready func reports ready.
func NewHandler(gamesSvc *games.Service, teamsSvc *teams.Service, logger *slog.Logger, ready func() bool) *Handler {
	return &Handler{
		games:  gamesSvc,
		teams:  teamsSvc,
		logger: logger,
		ready:  ready,
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.health(r))
}

// Ready reports readiness for traffic (e.g., for Kubernetes readiness checks).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.readiness())
}

func (h *Handler) health(r *nethttp.Request) Outcome {
	if err := r.Context().Err(); err != nil {
		return Fail(nethttp.StatusServiceUnavailable, "shutting down")
	}
	return OK(map[string]string{"status": "ok"})
}

func (h *Handler) readiness() Outcome {
	if h.ready == nil || h.ready() {
		return OK(map[string]string{"status": "ready"})
	}
	return Fail(nethttp.StatusServiceUnavailable, "not ready")
}

// pathID reads the {id} route parameter as an integer.
func pathID(r *nethttp.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

// NotFound answers unknown paths with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, Fail(nethttp.StatusNotFound, "not found"))
}

// MethodNotAllowed answers known paths requested with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, Fail(nethttp.StatusMethodNotAllowed, "method not allowed"))
}
