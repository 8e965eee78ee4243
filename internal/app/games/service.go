package games

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
	"github.com/preston-bernstein/schedule-api/internal/logging"
	"github.com/preston-bernstein/schedule-api/internal/metrics"
)

const resource = "games"

// Store defines the contract for persisting and retrieving games.
type Store interface {
	ListGames() []domaingames.Game
	GetGame(id int) (domaingames.Game, bool)
	InsertGame(g domaingames.Game) error
	UpdateGame(id int, mutate func(*domaingames.Game)) (domaingames.Game, error)
	DeleteGame(id int) (domaingames.Game, error)
}

// Service coordinates game operations using a Store.
type Service struct {
	store    Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	validate *validator.Validate
}

// NewService constructs a Service with the provided Store. Logger and recorder may be nil.
func NewService(store Store, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		metrics:  recorder,
		validate: newValidator(),
	}
}

// Games returns every game.
func (s *Service) Games() []domaingames.Game {
	return s.store.ListGames()
}

// FinalGames returns only games whose result is final.
func (s *Service) FinalGames() []domaingames.Game {
	all := s.store.ListGames()
	final := make([]domaingames.Game, 0, len(all))
	for _, g := range all {
		if g.IsFinal {
			final = append(final, g)
		}
	}
	return final
}

// GameByID returns a single game if present.
func (s *Service) GameByID(id int) (domaingames.Game, bool) {
	return s.store.GetGame(id)
}

// Create stores the game as given; the client chooses the id.
func (s *Service) Create(g domaingames.Game) (domaingames.Game, error) {
	err := s.store.InsertGame(g)
	s.metrics.RecordOperation(resource, "create", err)
	if err != nil {
		return domaingames.Game{}, errors.Wrap(err, "create game")
	}
	return g, nil
}

// Update replaces every mutable field of an existing game.
func (s *Service) Update(id int, g domaingames.Game) error {
	_, err := s.store.UpdateGame(id, func(existing *domaingames.Game) {
		existing.Replace(g)
	})
	s.metrics.RecordOperation(resource, "update", err)
	return errors.Wrap(err, "update game")
}

// UpdateScore validates the update and, when it passes, applies the score and final flag.
// A rejected update never reaches the store.
func (s *Service) UpdateScore(ctx context.Context, id int, update domaingames.ScoreUpdate) error {
	if err := s.validateScore(ctx, update); err != nil {
		if errors.Is(err, domaingames.ErrFinalScoreTied) {
			s.metrics.RecordValidationRejection(resource)
			logging.Info(logging.FromContext(ctx, s.logger), domaingames.FinalScoreTiedMessage,
				slog.Int(logging.FieldID, id),
			)
		}
		return err
	}

	_, err := s.store.UpdateGame(id, func(existing *domaingames.Game) {
		existing.ApplyScore(update)
	})
	s.metrics.RecordOperation(resource, "update_score", err)
	return errors.Wrap(err, "update game score")
}

// Delete removes a game and returns it.
func (s *Service) Delete(id int) (domaingames.Game, error) {
	g, err := s.store.DeleteGame(id)
	s.metrics.RecordOperation(resource, "delete", err)
	if err != nil {
		return domaingames.Game{}, errors.Wrap(err, "delete game")
	}
	return g, nil
}
