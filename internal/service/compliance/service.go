// Package compliance tracks which planned foods and routines a user has
// fulfilled.
//
// A routine check is one boolean per (routine, user) and follows an
// asymmetric rule: it becomes true as soon as any planned food of the
// routine gains a check, and becomes false only when the number of planned
// food checks left in the routine drops to zero.
//
// Write methods do not open transactions. They are meant to run inside the
// caller's TxManager.RunInTx callback so that check changes commit together
// with the dish and ledger writes that caused them.
package compliance

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

type checkRepo interface {
	CreateFoodCheck(ctx context.Context, c domain.PlannedFoodCheck) error
	GetFoodCheckByDish(ctx context.Context, dishID uuid.UUID) (*domain.PlannedFoodCheck, error)
	GetFoodCheckByPlannedFood(ctx context.Context, plannedFoodID, userID uuid.UUID) (*domain.PlannedFoodCheck, error)
	ListFoodChecks(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) ([]domain.PlannedFoodCheck, error)
	CountFoodChecks(ctx context.Context, routineID, userID uuid.UUID) (int, error)
	DeleteFoodCheck(ctx context.Context, plannedFoodID, dishID, userID uuid.UUID) error
	SetFoodCheckQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error
	GetRoutineCheck(ctx context.Context, routineID, userID uuid.UUID) (*domain.RoutineCheck, error)
	SetRoutineCheck(ctx context.Context, c domain.RoutineCheck) error
}

type planReader interface {
	GetRoutine(ctx context.Context, routineID uuid.UUID) (*domain.Routine, error)
}

// Service maintains planned food checks and routine checks.
type Service struct {
	checks checkRepo
	plans  planReader
	log    *slog.Logger
}

// NewService creates a new compliance service.
func NewService(
	log *slog.Logger,
	checks checkRepo,
	plans planReader,
) *Service {
	return &Service{
		checks: checks,
		plans:  plans,
		log:    log.With("service", "compliance"),
	}
}
