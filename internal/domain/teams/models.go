package teams

import "strconv"

// Team is a club that games are scheduled between.
type Team struct {
	ID           int    `json:"id"`
	TeamName     string `json:"teamName"`
	Abbreviation string `json:"abbreviation"`
}

// Replace overwrites the name and abbreviation with the values from src.
func (t *Team) Replace(src Team) {
	t.TeamName = src.TeamName
	t.Abbreviation = src.Abbreviation
}

// Location is the resource path of the team.
func (t Team) Location() string {
	return "/teams/" + strconv.Itoa(t.ID)
}
