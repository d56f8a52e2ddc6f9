// Package meal records the dishes a user eats and keeps every derived value
// consistent with them: the day's nutrient ledger and the plan compliance
// checks.
//
// Each write runs in a single transaction. The dish is locked for the
// duration, every path applies one net delta to the affected ledger, and a
// failure anywhere rolls back the dish, ledger and compliance writes
// together.
package meal

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/config"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/compliance"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dishRepo interface {
	GetByID(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	GetForUpdate(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	ListByDay(ctx context.Context, key domain.LedgerKey) ([]domain.Dish, error)
	Create(ctx context.Context, d *domain.Dish) (*domain.Dish, error)
	Update(ctx context.Context, d *domain.Dish) (*domain.Dish, error)
	Delete(ctx context.Context, dishID uuid.UUID) error
}

type ledgerRepo interface {
	ApplyDelta(ctx context.Context, key domain.LedgerKey, delta domain.Nutrients) (*domain.NutrientLedger, error)
}

type catalogRepo interface {
	GetByKey(ctx context.Context, label int64) (*domain.FoodFacts, error)
}

type planRepo interface {
	GetRoutine(ctx context.Context, routineID uuid.UUID) (*domain.Routine, error)
	FindRoutine(ctx context.Context, trackID uuid.UUID, dayIndex int, mealTime domain.MealTime) (*domain.Routine, error)
	GetPlannedFood(ctx context.Context, plannedFoodID uuid.UUID) (*domain.PlannedFood, error)
}

type complianceTracker interface {
	CreateCheck(ctx context.Context, in compliance.CheckInput) error
	RemoveCheck(ctx context.Context, userID, dishID uuid.UUID) (*domain.PlannedFoodCheck, error)
	RemoveCheckStrict(ctx context.Context, userID, plannedFoodID, dishID uuid.UUID) (*domain.PlannedFoodCheck, error)
	FulfillingCheck(ctx context.Context, userID, plannedFoodID uuid.UUID) (*domain.PlannedFoodCheck, error)
	EnsureNotFulfilled(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) error
	SetCheckQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dish lifecycle and its reconciliation.
type Service struct {
	log     *slog.Logger
	dishes  dishRepo
	ledgers ledgerRepo
	catalog catalogRepo
	plans   planRepo
	tracker complianceTracker
	tx      txManager
	cfg     config.MealConfig
}

// NewService creates a new Meal service.
func NewService(
	logger *slog.Logger,
	dishes dishRepo,
	ledgers ledgerRepo,
	catalog catalogRepo,
	plans planRepo,
	tracker complianceTracker,
	tx txManager,
	cfg config.MealConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "meal"),
		dishes:  dishes,
		ledgers: ledgers,
		catalog: catalog,
		plans:   plans,
		tracker: tracker,
		tx:      tx,
		cfg:     cfg,
	}
}
