// Package audit compares nutrient ledgers against the dishes recorded under
// them. Ledger totals are maintained incrementally, so any difference
// means a write path skipped or doubled a delta.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// DefaultTolerance is the largest per-nutrient difference not reported.
const DefaultTolerance = 0.01

type driftFinder interface {
	FindDrift(ctx context.Context, from, to time.Time, tolerance float64) ([]domain.LedgerDrift, error)
}

// Service scans ledgers for drift.
type Service struct {
	drifts driftFinder
	log    *slog.Logger
}

// NewService creates a new audit service.
func NewService(log *slog.Logger, drifts driftFinder) *Service {
	return &Service{
		drifts: drifts,
		log:    log.With("service", "audit"),
	}
}

// Input selects the days to scan.
type Input struct {
	From      time.Time
	To        time.Time
	Tolerance float64
	// Workers caps the number of days scanned concurrently.
	Workers int
}

// Validate checks all fields and collects all errors.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if !i.From.IsZero() && !i.To.IsZero() && domain.DayOf(i.To).Before(domain.DayOf(i.From)) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.Tolerance < 0 {
		errs = append(errs, domain.FieldError{Field: "tolerance", Message: "must be non-negative"})
	}
	if i.Workers < 1 {
		errs = append(errs, domain.FieldError{Field: "workers", Message: "must be at least 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Run scans every day in [From, To] and returns the drifted ledgers ordered
// by date, then user. Days are scanned in parallel; the first failure
// cancels the rest.
func (s *Service) Run(ctx context.Context, input Input) ([]domain.LedgerDrift, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var days []time.Time
	for d := domain.DayOf(input.From); !d.After(domain.DayOf(input.To)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	perDay := make([][]domain.LedgerDrift, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(input.Workers)
	for i, day := range days {
		g.Go(func() error {
			found, err := s.drifts.FindDrift(gctx, day, day, input.Tolerance)
			if err != nil {
				return fmt.Errorf("scan %s: %w", day.Format(time.DateOnly), err)
			}
			perDay[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	drifts := slices.Concat(perDay...)
	for _, d := range drifts {
		diff := d.Diff()
		s.log.WarnContext(ctx, "ledger drift",
			slog.String("user_id", d.Key.UserID.String()),
			slog.String("date", d.Key.Date.Format(time.DateOnly)),
			slog.Float64("calorie_diff", diff.Calorie),
			slog.Float64("carb_diff", diff.Carb),
			slog.Float64("protein_diff", diff.Protein),
			slog.Float64("fat_diff", diff.Fat),
		)
	}

	s.log.InfoContext(ctx, "ledger audit completed",
		slog.Int("days", len(days)),
		slog.Int("drifted", len(drifts)),
	)
	return drifts, nil
}
