package handlers

import (
	nethttp "net/http"

	domainteams "github.com/preston-bernstein/schedule-api/internal/domain/teams"
)

const invalidTeamID = "invalid team id"

// ListTeams returns every team.
func (h *Handler) ListTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, OK(h.teams.Teams()))
}

// GetTeam returns a specific team if present.
func (h *Handler) GetTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.getTeam(r))
}

// CreateTeam stores a new team.
func (h *Handler) CreateTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.createTeam(r))
}

// UpdateTeam overwrites the name and abbreviation of a team.
func (h *Handler) UpdateTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.updateTeam(r))
}

// DeleteTeam removes a team and echoes it back.
func (h *Handler) DeleteTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.respond(w, r, h.deleteTeam(r))
}

func (h *Handler) getTeam(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidTeamID)
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		return Fail(nethttp.StatusNotFound, teamNotFound)
	}
	return OK(team)
}

func (h *Handler) createTeam(r *nethttp.Request) Outcome {
	team, ok := decodeBody[domainteams.Team](r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidBody)
	}
	created, err := h.teams.Create(team)
	if err != nil {
		return h.failure(r, err, teamNotFound)
	}
	return Created(created.Location(), created)
}

func (h *Handler) updateTeam(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidTeamID)
	}
	team, ok := decodeBody[domainteams.Team](r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidBody)
	}
	if err := h.teams.Update(id, team); err != nil {
		return h.failure(r, err, teamNotFound)
	}
	return NoContent()
}

func (h *Handler) deleteTeam(r *nethttp.Request) Outcome {
	id, ok := pathID(r)
	if !ok {
		return Fail(nethttp.StatusBadRequest, invalidTeamID)
	}
	team, err := h.teams.Delete(id)
	if err != nil {
		return h.failure(r, err, teamNotFound)
	}
	return OK(team)
}
