package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/schedule-api/internal/http/handlers"
)

// Route is one entry of the API surface. The router and the OpenAPI document
// are both built from the same table.
type Route struct {
	Method    string
	Pattern   string
	Name      string
	Summary   string
	Tag       string
	Body      string
	Responses []int
	Handler   nethttp.HandlerFunc
}

const (
	tagGames = "Games"
	tagTeams = "Teams"
)

// Routes returns the API routes bound to h.
func Routes(h *handlers.Handler) []Route {
	return []Route{
		{
			Method: nethttp.MethodGet, Pattern: "/games", Name: "GetGames", Tag: tagGames,
			Summary:   "Retrieve all games",
			Responses: []int{nethttp.StatusOK},
			Handler:   h.ListGames,
		},
		{
			Method: nethttp.MethodGet, Pattern: "/games/final", Name: "GetFinalGames", Tag: tagGames,
			Summary:   "Retrieve games with final scores",
			Responses: []int{nethttp.StatusOK},
			Handler:   h.FinalGames,
		},
		{
			Method: nethttp.MethodGet, Pattern: "/games/{id}", Name: "GetGame", Tag: tagGames,
			Summary:   "Retrieve one game by game id",
			Responses: []int{nethttp.StatusOK, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.GetGame,
		},
		{
			Method: nethttp.MethodPost, Pattern: "/games", Name: "CreateGame", Tag: tagGames, Body: schemaGame,
			Summary:   "Create a new game",
			Responses: []int{nethttp.StatusCreated, nethttp.StatusBadRequest, nethttp.StatusConflict},
			Handler:   h.CreateGame,
		},
		{
			Method: nethttp.MethodPut, Pattern: "/games/{id}", Name: "UpdateGame", Tag: tagGames, Body: schemaGame,
			Summary:   "Update an existing game",
			Responses: []int{nethttp.StatusNoContent, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.UpdateGame,
		},
		{
			Method: nethttp.MethodPatch, Pattern: "/games/{id}", Name: "UpdateGameScore", Tag: tagGames, Body: schemaScoreUpdate,
			Summary:   "Update score and status of an existing game",
			Responses: []int{nethttp.StatusNoContent, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.UpdateGameScore,
		},
		{
			Method: nethttp.MethodDelete, Pattern: "/games/{id}", Name: "DeleteGame", Tag: tagGames,
			Summary:   "Delete an existing game",
			Responses: []int{nethttp.StatusOK, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.DeleteGame,
		},
		{
			Method: nethttp.MethodGet, Pattern: "/teams", Name: "GetTeams", Tag: tagTeams,
			Summary:   "Retrieve all teams",
			Responses: []int{nethttp.StatusOK},
			Handler:   h.ListTeams,
		},
		{
			Method: nethttp.MethodGet, Pattern: "/teams/{id}", Name: "GetTeam", Tag: tagTeams,
			Summary:   "Retrieve one team by team id",
			Responses: []int{nethttp.StatusOK, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.GetTeam,
		},
		{
			Method: nethttp.MethodPost, Pattern: "/teams", Name: "CreateTeam", Tag: tagTeams, Body: schemaTeam,
			Summary:   "Create a new team",
			Responses: []int{nethttp.StatusCreated, nethttp.StatusBadRequest, nethttp.StatusConflict},
			Handler:   h.CreateTeam,
		},
		{
			Method: nethttp.MethodPut, Pattern: "/teams/{id}", Name: "UpdateTeam", Tag: tagTeams, Body: schemaTeam,
			Summary:   "Update an existing team",
			Responses: []int{nethttp.StatusNoContent, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.UpdateTeam,
		},
		{
			Method: nethttp.MethodDelete, Pattern: "/teams/{id}", Name: "DeleteTeam", Tag: tagTeams,
			Summary:   "Delete an existing team",
			Responses: []int{nethttp.StatusOK, nethttp.StatusBadRequest, nethttp.StatusNotFound},
			Handler:   h.DeleteTeam,
		},
	}
}
