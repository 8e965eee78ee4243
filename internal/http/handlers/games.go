package handlers

import (
	nethttp "net/http"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
)

const invalidGameID = "invalid game id"

// ListGames returns every game.
func (h *Handler) ListGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, OK(h.games.Games()))
}

// FinalGames returns games whose result is final.
func (h *Handler) FinalGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, OK(h.games.FinalGames()))
}

// GetGame returns a specific game if present.
func (h *Handler) GetGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.getGame(r))
}

// CreateGame stores a new game and points the client at it.
func (h *Handler) CreateGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.createGame(r))
}

// UpdateGame overwrites an existing game.
func (h *Handler) UpdateGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.updateGame(r))
}

// UpdateGameScore applies a partial score update.
func (h *Handler) UpdateGameScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.updateGameScore(r))
}

// DeleteGame removes a game and echoes it back.
func (h *Handler) DeleteGame(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.deleteGame(r))
}

func (h *Handler) getGame(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidGameID)
	}
	game, found := h.games.GameByID(id)
	if !found {
		return Fail(nethttp.StatusNotFound, gameNotFound)
	}
	return OK(game)
}

func (h *Handler) createGame(r *nethttp.Request) Outcome {
	game, ok := decodeBody[domaingames.Game](r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidBody)
	}
	created, err := h.games.Create(game)
	if err != nil {
		return h.failure(r, err, gameNotFound)
	}
	return Created(created.Location(), created)
}

func (h *Handler) updateGame(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidGameID)
	}
	game, ok := decodeBody[domaingames.Game](r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidBody)
	}
	if err := h.games.Update(id, game); err != nil {
		return h.failure(r, err, gameNotFound)
	}
	return NoContent()
}

func (h *Handler) updateGameScore(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidGameID)
	}
	update, ok := decodeBody[domaingames.ScoreUpdate](r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidBody)
	}
	if err := h.games.UpdateScore(r.Context(), id, update); err != nil {
		return h.failure(r, err, gameNotFound)
	}
	return NoContent()
}

func (h *Handler) deleteGame(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidGameID)
	}
	game, err := h.games.Delete(id)
	if err != nil {
		return h.failure(r, err, gameNotFound)
	}
	return OK(game)
}
