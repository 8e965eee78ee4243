package handlers

import (
	nethttp "net/http"

	"github.com/cockroachdb/errors"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
	"github.com/preston-bernstein/schedule-api/internal/store"
)

const (
	invalidBody  = "invalid request body"
	gameNotFound = "game not found"
	teamNotFound = "team not found"
	idTaken      = "id already exists"
)

// failure maps service errors onto outcomes. Unknown errors are logged and hidden.
func (h *Handler) failure(r *nethttp.Request, err error, notFound string) Outcome {
	switch {
	case errors.Is(err, domaingames.ErrFinalScoreTied):
		return ValidationProblem(domaingames.FinalScoreTiedMessage)
	case errors.Is(err, store.ErrNotFound):
		return Fail(nethttp.StatusNotFound, notFound)
	case errors.Is(err, store.ErrDuplicateID):
		return Fail(nethttp.StatusConflict, idTaken)
	default:
		if logger := loggerFromContext(r, h.logger); logger != nil {
			logger.Error("request failed", "err", err)
		}
		return Fail(nethttp.StatusInternalServerError, "internal error")
	}
}
