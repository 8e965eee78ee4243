package teams

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/schedule-api/internal/domain/teams"
	"github.com/preston-bernstein/schedule-api/internal/metrics"
	"github.com/preston-bernstein/schedule-api/internal/store"
)

type stubTeamStore struct {
	byID      map[int]teams.Team
	insertErr error
}

func (s *stubTeamStore) ListTeams() []teams.Team {
	out := make([]teams.Team, 0, len(s.byID))
	for _, t := range s.byID {
		out = append(out, t)
	}
	return out
}

func (s *stubTeamStore) GetTeam(id int) (teams.Team, bool) {
	val, ok := s.byID[id]
	return val, ok
}

func (s *stubTeamStore) InsertTeam(t teams.Team) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.byID[t.ID] = t
	return nil
}

func (s *stubTeamStore) UpdateTeam(id int, mutate func(*teams.Team)) (teams.Team, error) {
	t, ok := s.byID[id]
	if !ok {
		return teams.Team{}, store.ErrNotFound
	}
	mutate(&t)
	s.byID[id] = t
	return t, nil
}

func (s *stubTeamStore) DeleteTeam(id int) (teams.Team, error) {
	t, ok := s.byID[id]
	if !ok {
		return teams.Team{}, store.ErrNotFound
	}
	delete(s.byID, id)
	return t, nil
}

func TestTeamsService(t *testing.T) {
	st := &stubTeamStore{byID: map[int]teams.Team{1: {ID: 1, TeamName: "Team One", Abbreviation: "ONE"}}}
	svc := NewService(st, nil)

	if len(svc.Teams()) != 1 {
		t.Fatalf("expected teams from store")
	}
	if _, ok := svc.TeamByID(1); !ok {
		t.Fatalf("expected team by id")
	}
	if _, ok := svc.TeamByID(2); ok {
		t.Fatalf("expected missing team")
	}
}

func TestTeamCRUDLifecycle(t *testing.T) {
	rec := metrics.NewRecorder()
	svc := NewService(store.NewMemoryStore(), rec)
	five := teams.Team{ID: 5, TeamName: "Team Five", Abbreviation: "FIV"}

	if _, err := svc.Create(five); err != nil {
		t.Fatalf("create: %v", err)
	}
	if got, ok := svc.TeamByID(5); !ok || got != five {
		t.Fatalf("expected created team, got %+v", got)
	}

	if err := svc.Update(5, teams.Team{ID: 99, TeamName: "Fivers", Abbreviation: "FVR"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.TeamByID(5)
	if got.ID != 5 || got.TeamName != "Fivers" || got.Abbreviation != "FVR" {
		t.Fatalf("unexpected team after update %+v", got)
	}

	removed, err := svc.Delete(5)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.TeamName != "Fivers" {
		t.Fatalf("expected removed team returned, got %+v", removed)
	}
	if _, ok := svc.TeamByID(5); ok {
		t.Fatalf("expected team gone after delete")
	}
	if rec.Snapshot("teams", "delete").Calls != 1 {
		t.Fatalf("expected delete recorded")
	}
}

func TestTeamErrorsWrapSentinels(t *testing.T) {
	st := &stubTeamStore{byID: map[int]teams.Team{}, insertErr: store.ErrDuplicateID}
	svc := NewService(st, nil)

	if _, err := svc.Create(teams.Team{ID: 1}); !errors.Is(err, store.ErrDuplicateID) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := svc.Update(1, teams.Team{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
	if _, err := svc.Delete(1); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}
