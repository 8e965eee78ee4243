package testutil

import (
	"time"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
	domainteams "github.com/preston-bernstein/schedule-api/internal/domain/teams"
)

// Kickoff is the start time shared by game fixtures.
var Kickoff = time.Date(2023, time.July, 23, 22, 0, 0, 0, time.UTC)

// SampleGame returns an unplayed game between teams 1 and 2 with the provided id.
func SampleGame(id int) domaingames.Game {
	return domaingames.Game{
		ID:           id,
		GameDateTime: Kickoff,
		HomeTeamID:   1,
		AwayTeamID:   2,
	}
}

// SampleTeam returns a team fixture with the provided id.
func SampleTeam(id int) domainteams.Team {
	return domainteams.Team{
		ID:           id,
		TeamName:     "Team " + string(rune('A'+id%26)),
		Abbreviation: "TM" + string(rune('A'+id%26)),
	}
}
