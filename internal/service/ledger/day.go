package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// GetDay returns the caller's ledger for the day of date.
func (s *Service) GetDay(ctx context.Context, date time.Time) (*domain.NutrientLedger, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.ledgers.GetByKey(ctx, domain.NewLedgerKey(userID, date))
	if err != nil {
		return nil, fmt.Errorf("get ledger: %w", err)
	}
	return l, nil
}

// OpenDay creates the caller's ledger for a day with zero totals. The goal
// comes from the input, else from the track's daily calorie, else from the
// configured default. Opening an existing day returns it unchanged with
// created=false.
func (s *Service) OpenDay(ctx context.Context, input OpenDayInput) (_ *domain.NutrientLedger, created bool, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, false, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, false, err
	}

	goal, err := s.resolveGoal(ctx, input.TrackID, input.GoalCalorie)
	if err != nil {
		return nil, false, err
	}

	key := domain.NewLedgerKey(userID, input.Date)
	l, created, err := s.ledgers.Open(ctx, &domain.NutrientLedger{
		ID:          uuid.New(),
		UserID:      key.UserID,
		Date:        key.Date,
		TrackID:     input.TrackID,
		GoalCalorie: goal,
	})
	if err != nil {
		return nil, false, fmt.Errorf("open ledger: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "day opened",
			slog.String("user_id", userID.String()),
			slog.String("date", key.Date.Format(time.DateOnly)),
			slog.Float64("goal_calorie", goal),
		)
	}
	return l, created, nil
}

// resolveGoal picks the explicit goal, else the track's daily calorie, else
// the default. A named track must exist either way.
func (s *Service) resolveGoal(ctx context.Context, trackID *uuid.UUID, explicit *float64) (float64, error) {
	goal := s.defaultGoal
	if trackID != nil {
		track, err := s.tracks.GetTrack(ctx, *trackID)
		if err != nil {
			return 0, fmt.Errorf("get track: %w", err)
		}
		if track.DailyCalorie > 0 {
			goal = track.DailyCalorie
		}
	}
	if explicit != nil {
		goal = *explicit
	}
	return goal, nil
}

// ListRange returns the caller's ledgers between two days inclusive,
// ordered by date.
func (s *Service) ListRange(ctx context.Context, input ListRangeInput) ([]domain.NutrientLedger, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ledgers, err := s.ledgers.ListRange(ctx, userID, domain.DayOf(input.From), domain.DayOf(input.To))
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	return ledgers, nil
}
