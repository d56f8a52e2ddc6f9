package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// MaxRangeDays limits ListRange to roughly one year.
const MaxRangeDays = 366

type ledgerRepo interface {
	GetByKey(ctx context.Context, key domain.LedgerKey) (*domain.NutrientLedger, error)
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.NutrientLedger, error)
	Open(ctx context.Context, l *domain.NutrientLedger) (*domain.NutrientLedger, bool, error)
	UpdateBody(ctx context.Context, key domain.LedgerKey, body domain.BodyLog) (*domain.NutrientLedger, error)
}

type trackReader interface {
	GetTrack(ctx context.Context, trackID uuid.UUID) (*domain.Track, error)
}

// Service exposes the per-day nutrient ledger to the caller. Totals are
// read only; they change through the meal service.
type Service struct {
	ledgers     ledgerRepo
	tracks      trackReader
	log         *slog.Logger
	defaultGoal float64
}

// NewService creates a new ledger service. defaultGoal is the calorie goal
// of a day opened without a track.
func NewService(
	log *slog.Logger,
	ledgers ledgerRepo,
	tracks trackReader,
	defaultGoal float64,
) *Service {
	return &Service{
		ledgers:     ledgers,
		tracks:      tracks,
		log:         log.With("service", "ledger"),
		defaultGoal: defaultGoal,
	}
}
