package games

import (
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
)

// FinalScoreTiedMessage is returned to clients when a final score update is rejected.
const FinalScoreTiedMessage = "Home and away scores cannot be the same if the game is a final."

// ErrFinalScoreTied marks a score update that would finalize a tied game.
var ErrFinalScoreTied = errors.New(FinalScoreTiedMessage)

// Game is the scheduled matchup between two teams.
// HomeTeamID and AwayTeamID are not checked against the teams collection.
type Game struct {
	ID            int       `json:"id"`
	GameDateTime  time.Time `json:"gameDateTime"`
	HomeTeamID    int       `json:"homeTeamId"`
	AwayTeamID    int       `json:"awayTeamId"`
	HomeTeamScore int       `json:"homeTeamScore"`
	AwayTeamScore int       `json:"awayTeamScore"`
	IsFinal       bool      `json:"isFinal"`
}

// ScoreUpdate carries the only fields a partial game update may change.
type ScoreUpdate struct {
	HomeTeamScore int  `json:"homeTeamScore"`
	AwayTeamScore int  `json:"awayTeamScore"`
	IsFinal       bool `json:"isFinal"`
}

// TiedFinal reports whether the update would mark a tied game as final.
func (u ScoreUpdate) TiedFinal() bool {
	return u.IsFinal && u.HomeTeamScore == u.AwayTeamScore
}

// Replace overwrites every mutable field of g with the values from src. The id is kept.
func (g *Game) Replace(src Game) {
	g.GameDateTime = src.GameDateTime
	g.HomeTeamID = src.HomeTeamID
	g.AwayTeamID = src.AwayTeamID
	g.HomeTeamScore = src.HomeTeamScore
	g.AwayTeamScore = src.AwayTeamScore
	g.IsFinal = src.IsFinal
}

// ApplyScore overwrites the score and final flag only.
func (g *Game) ApplyScore(u ScoreUpdate) {
	g.HomeTeamScore = u.HomeTeamScore
	g.AwayTeamScore = u.AwayTeamScore
	g.IsFinal = u.IsFinal
}

// Location is the resource path of the game.
func (g Game) Location() string {
	return "/games/" + strconv.Itoa(g.ID)
}
