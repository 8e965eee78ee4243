package games

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	domaingames "github.com/preston-bernstein/schedule-api/internal/domain/games"
)

const tagFinalNotTied = "final_not_tied"

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(scoreUpdateRule, domaingames.ScoreUpdate{})
	return v
}

// scoreUpdateRule rejects a final result with level scores.
func scoreUpdateRule(sl validator.StructLevel) {
	update, ok := sl.Current().Interface().(domaingames.ScoreUpdate)
	if !ok {
		return
	}
	if update.TiedFinal() {
		sl.ReportError(update.IsFinal, "IsFinal", "isFinal", tagFinalNotTied, "")
	}
}

func (s *Service) validateScore(ctx context.Context, update domaingames.ScoreUpdate) error {
	err := s.validate.StructCtx(ctx, update)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Tag() == tagFinalNotTied {
				return errors.WithStack(domaingames.ErrFinalScoreTied)
			}
		}
	}
	return errors.Wrap(err, "validate score update")
}
