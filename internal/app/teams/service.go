package teams

import (
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/schedule-api/internal/domain/teams"
	"github.com/preston-bernstein/schedule-api/internal/metrics"
)

const resource = "teams"

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	ListTeams() []teams.Team
	GetTeam(id int) (teams.Team, bool)
	InsertTeam(t teams.Team) error
	UpdateTeam(id int, mutate func(*teams.Team)) (teams.Team, error)
	DeleteTeam(id int) (teams.Team, error)
}

// Service coordinates team operations using a Store.
type Service struct {
	store   Store
	metrics *metrics.Recorder
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, recorder *metrics.Recorder) *Service {
	return &Service{store: store, metrics: recorder}
}

// Teams returns the current set of teams.
func (s *Service) Teams() []teams.Team {
	return s.store.ListTeams()
}

// TeamByID returns a single team if present.
func (s *Service) TeamByID(id int) (teams.Team, bool) {
	return s.store.GetTeam(id)
}

// Create stores the team as given; the client chooses the id.
func (s *Service) Create(t teams.Team) (teams.Team, error) {
	err := s.store.InsertTeam(t)
	s.metrics.RecordOperation(resource, "create", err)
	if err != nil {
		return teams.Team{}, errors.Wrap(err, "create team")
	}
	return t, nil
}

// Update overwrites the team name and abbreviation.
func (s *Service) Update(id int, t teams.Team) error {
	_, err := s.store.UpdateTeam(id, func(existing *teams.Team) {
		existing.Replace(t)
	})
	s.metrics.RecordOperation(resource, "update", err)
	return errors.Wrap(err, "update team")
}

// Delete removes a team and returns it.
func (s *Service) Delete(id int) (teams.Team, error) {
	t, err := s.store.DeleteTeam(id)
	s.metrics.RecordOperation(resource, "delete", err)
	if err != nil {
		return teams.Team{}, errors.Wrap(err, "delete team")
	}
	return t, nil
}
