package store

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
	"github.com/preston-bernstein/schedule-api/internal/domain/teams"
)

// MemoryStore keeps games and teams in memory for the life of the process.
// Every operation holds the store lock for its whole lookup-and-mutate sequence.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[int]domaingames.Game
	teams map[int]teams.Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[int]domaingames.Game),
		teams: make(map[int]teams.Team),
	}
}

// ListGames returns a copy of all games ordered by id.
func (s *MemoryStore) ListGames() []domaingames.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaingames.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id int) (domaingames.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// InsertGame adds a game, rejecting ids already present.
func (s *MemoryStore) InsertGame(g domaingames.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[g.ID]; exists {
		return errors.Wrapf(ErrDuplicateID, "game %d", g.ID)
	}
	s.games[g.ID] = g
	return nil
}

// UpdateGame applies mutate to the stored game and returns the result.
func (s *MemoryStore) UpdateGame(id int, mutate func(*domaingames.Game)) (domaingames.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return domaingames.Game{}, errors.Wrapf(ErrNotFound, "game %d", id)
	}
	mutate(&g)
	g.ID = id
	s.games[id] = g
	return g, nil
}

// DeleteGame removes a game and returns what was stored.
func (s *MemoryStore) DeleteGame(id int) (domaingames.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return domaingames.Game{}, errors.Wrapf(ErrNotFound, "game %d", id)
	}
	delete(s.games, id)
	return g, nil
}

// SeedGames inserts games only when the collection is empty and reports whether it did.
func (s *MemoryStore) SeedGames(items []domaingames.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.games) > 0 || len(items) == 0 {
		return false
	}
	for _, g := range items {
		s.games[g.ID] = g
	}
	return true
}

// ListTeams returns a copy of all teams ordered by id.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetTeam retrieves a team by ID.
func (s *MemoryStore) GetTeam(id int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	return t, ok
}

// InsertTeam adds a team, rejecting ids already present.
func (s *MemoryStore) InsertTeam(t teams.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.teams[t.ID]; exists {
		return errors.Wrapf(ErrDuplicateID, "team %d", t.ID)
	}
	s.teams[t.ID] = t
	return nil
}

// UpdateTeam applies mutate to the stored team and returns the result.
func (s *MemoryStore) UpdateTeam(id int, mutate func(*teams.Team)) (teams.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return teams.Team{}, errors.Wrapf(ErrNotFound, "team %d", id)
	}
	mutate(&t)
	t.ID = id
	s.teams[id] = t
	return t, nil
}

// DeleteTeam removes a team and returns what was stored.
func (s *MemoryStore) DeleteTeam(id int) (teams.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return teams.Team{}, errors.Wrapf(ErrNotFound, "team %d", id)
	}
	delete(s.teams, id)
	return t, nil
}

// SeedTeams inserts teams only when the collection is empty and reports whether it did.
func (s *MemoryStore) SeedTeams(items []teams.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.teams) > 0 || len(items) == 0 {
		return false
	}
	for _, t := range items {
		s.teams[t.ID] = t
	}
	return true
}

// Counts returns the number of stored games and teams.
func (s *MemoryStore) Counts() (games int, teamCount int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games), len(s.teams)
}
