// Package seed loads the fixed sample schedule into an empty store at startup.
package seed

import (
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
	"github.com/preston-bernstein/schedule-api/internal/domain/teams"
	"github.com/preston-bernstein/schedule-api/internal/logging"
)

// Store is the subset of the store the seeder needs.
type Store interface {
	SeedGames([]domaingames.Game) bool
	SeedTeams([]teams.Team) bool
}

// Result reports which collections were populated.
type Result struct {
	Games bool
	Teams bool
}

var kickoff = time.Date(2023, time.July, 23, 22, 0, 0, 0, time.UTC)

// Teams returns the four sample teams.
func Teams() []teams.Team {
	return []teams.Team{
		{ID: 1, TeamName: "Team One", Abbreviation: "ONE"},
		{ID: 2, TeamName: "Team Two", Abbreviation: "TWO"},
		{ID: 3, TeamName: "Team Three", Abbreviation: "THR"},
		{ID: 4, TeamName: "Team Four", Abbreviation: "FOR"},
	}
}

// Games returns eight unplayed games pairing every team home and away.
func Games() []domaingames.Game {
	pairs := [][2]int{{1, 2}, {3, 4}, {2, 1}, {4, 3}, {1, 4}, {2, 3}, {4, 1}, {3, 2}}
	out := make([]domaingames.Game, 0, len(pairs))
	for i, p := range pairs {
		out = append(out, domaingames.Game{
			ID:           i + 1,
			GameDateTime: kickoff,
			HomeTeamID:   p[0],
			AwayTeamID:   p[1],
		})
	}
	return out
}

// Seed populates each empty collection. Collections that already hold data are left alone,
// so repeated calls never insert twice.
func Seed(store Store, logger *slog.Logger) Result {
	res := Result{
		Games: store.SeedGames(Games()),
		Teams: store.SeedTeams(Teams()),
	}
	logging.Info(logger, "store seeded",
		slog.Bool("games_seeded", res.Games),
		slog.Bool("teams_seeded", res.Teams),
	)
	return res
}
