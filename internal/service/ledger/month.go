package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// MonthStats summarises the caller's ledgers of one calendar month.
type MonthStats struct {
	Year        int
	Month       int
	DaysInMonth int
	OpenedDays  int
	// RecordedDays counts days with any consumed nutrients.
	RecordedDays int
	// AverageCalorie is the mean consumed calorie over recorded days, zero
	// when nothing was recorded.
	AverageCalorie float64
}

// OpenMonth opens every day of a month for the caller, skipping days that
// are already open. It returns the month's ledgers in date order and the
// number of days this call opened. Each day is opened independently, so a
// failed call can simply be retried.
func (s *Service) OpenMonth(ctx context.Context, input OpenMonthInput) (_ []domain.NutrientLedger, opened int, err error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	goal, err := s.resolveGoal(ctx, input.TrackID, input.GoalCalorie)
	if err != nil {
		return nil, 0, err
	}

	first, last := input.bounds()
	ledgers := make([]domain.NutrientLedger, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		l, created, err := s.ledgers.Open(ctx, &domain.NutrientLedger{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        d,
			TrackID:     input.TrackID,
			GoalCalorie: goal,
		})
		if err != nil {
			return nil, opened, fmt.Errorf("open ledger %s: %w", d.Format(time.DateOnly), err)
		}
		if created {
			opened++
		}
		ledgers = append(ledgers, *l)
	}

	s.log.InfoContext(ctx, "month opened",
		slog.String("user_id", userID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.Int("opened", opened),
	)
	return ledgers, opened, nil
}

// MonthStats reports how many days of a month the caller recorded meals on
// and their average consumed calorie.
func (s *Service) MonthStats(ctx context.Context, input MonthInput) (*MonthStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	first, last := input.bounds()
	ledgers, err := s.ledgers.ListRange(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}

	stats := &MonthStats{
		Year:        input.Year,
		Month:       input.Month,
		DaysInMonth: last.Day(),
		OpenedDays:  len(ledgers),
	}
	total := decimal.Zero
	for _, l := range ledgers {
		if l.Consumed.IsZero() {
			continue
		}
		stats.RecordedDays++
		total = total.Add(domain.Exact(l.Consumed.Calorie))
	}
	if stats.RecordedDays > 0 {
		stats.AverageCalorie = total.
			Div(decimal.NewFromInt(int64(stats.RecordedDays))).
			Round(2).
			InexactFloat64()
	}
	return stats, nil
}
