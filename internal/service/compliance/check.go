package compliance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// CheckInput identifies the dish that now fulfils a planned food.
type CheckInput struct {
	UserID      uuid.UUID
	PlannedFood *domain.PlannedFood
	DishID      uuid.UUID
	Quantity    int
}

// CreateCheck records that a dish fulfils a planned food and marks the
// routine complete. Returns domain.ErrCheckAlreadyExists if the planned food
// is already fulfilled for the user.
func (s *Service) CreateCheck(ctx context.Context, in CheckInput) error {
	existing, err := s.FulfillingCheck(ctx, in.UserID, in.PlannedFood.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("planned food %s dish %s: %w", in.PlannedFood.ID, existing.DishID, domain.ErrCheckAlreadyExists)
	}

	now := time.Now().UTC()
	err = s.checks.CreateFoodCheck(ctx, domain.PlannedFoodCheck{
		PlannedFoodID: in.PlannedFood.ID,
		DishID:        in.DishID,
		UserID:        in.UserID,
		RoutineID:     in.PlannedFood.RoutineID,
		Quantity:      in.Quantity,
		CheckedAt:     now,
	})
	if err != nil {
		return fmt.Errorf("create planned food check: %w", err)
	}

	if err := s.checks.SetRoutineCheck(ctx, domain.RoutineCheck{
		RoutineID:  in.PlannedFood.RoutineID,
		UserID:     in.UserID,
		IsComplete: true,
		CheckedAt:  now,
	}); err != nil {
		return fmt.Errorf("complete routine: %w", err)
	}

	s.log.DebugContext(ctx, "planned food checked",
		slog.String("user_id", in.UserID.String()),
		slog.String("planned_food_id", in.PlannedFood.ID.String()),
		slog.String("dish_id", in.DishID.String()),
	)
	return nil
}

// RemoveCheck drops the check owned by a dish, if any, and re-evaluates the
// routine it belonged to. A dish without a check is a no-op and returns nil.
func (s *Service) RemoveCheck(ctx context.Context, userID, dishID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	check, err := s.checks.GetFoodCheckByDish(ctx, dishID)
	if errors.Is(err, domain.ErrCheckNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get check of dish: %w", err)
	}

	if err := s.checks.DeleteFoodCheck(ctx, check.PlannedFoodID, dishID, userID); err != nil {
		return nil, fmt.Errorf("delete planned food check: %w", err)
	}

	if _, err := s.Reevaluate(ctx, userID, check.RoutineID); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "planned food unchecked",
		slog.String("user_id", userID.String()),
		slog.String("planned_food_id", check.PlannedFoodID.String()),
		slog.String("dish_id", dishID.String()),
	)
	return check, nil
}

// Reevaluate applies the count rule: the routine check turns false only
// when no planned food check of the routine remains. It never turns a
// routine check true. Returns the resulting completion state.
func (s *Service) Reevaluate(ctx context.Context, userID, routineID uuid.UUID) (bool, error) {
	remaining, err := s.checks.CountFoodChecks(ctx, routineID, userID)
	if err != nil {
		return false, fmt.Errorf("count remaining checks: %w", err)
	}

	rc, err := s.checks.GetRoutineCheck(ctx, routineID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get routine check: %w", err)
	}

	if remaining > 0 || !rc.IsComplete {
		return rc.IsComplete, nil
	}

	if err := s.checks.SetRoutineCheck(ctx, domain.RoutineCheck{
		RoutineID:  routineID,
		UserID:     userID,
		IsComplete: false,
		CheckedAt:  time.Now().UTC(),
	}); err != nil {
		return false, fmt.Errorf("reset routine check: %w", err)
	}

	s.log.InfoContext(ctx, "routine no longer complete",
		slog.String("user_id", userID.String()),
		slog.String("routine_id", routineID.String()),
	)
	return false, nil
}

// FulfillingCheck returns the check fulfilling a planned food for the user,
// or nil when the planned food is not fulfilled.
func (s *Service) FulfillingCheck(ctx context.Context, userID, plannedFoodID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	check, err := s.checks.GetFoodCheckByPlannedFood(ctx, plannedFoodID, userID)
	if errors.Is(err, domain.ErrCheckNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fulfilling check: %w", err)
	}
	return check, nil
}

// EnsureNotFulfilled fails with domain.ErrDishAlreadyExists if any of the
// planned foods already has a check for the user.
func (s *Service) EnsureNotFulfilled(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) error {
	checks, err := s.checks.ListFoodChecks(ctx, userID, plannedFoodIDs)
	if err != nil {
		return fmt.Errorf("list planned food checks: %w", err)
	}
	if len(checks) > 0 {
		return fmt.Errorf("planned food %s: %w", checks[0].PlannedFoodID, domain.ErrDishAlreadyExists)
	}
	return nil
}

// SetCheckQuantity keeps the quantity recorded on a dish's check in sync
// with the dish. Returns domain.ErrCheckNotFound if the dish has no check.
func (s *Service) SetCheckQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error {
	if err := s.checks.SetFoodCheckQuantity(ctx, dishID, quantity); err != nil {
		return fmt.Errorf("set check quantity: %w", err)
	}
	return nil
}

// RemoveCheckStrict drops the check linking a dish to a planned food and
// re-evaluates the routine. Unlike RemoveCheck it fails with
// domain.ErrCheckNotFound when the row is missing.
func (s *Service) RemoveCheckStrict(ctx context.Context, userID, plannedFoodID, dishID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	check, err := s.checks.GetFoodCheckByDish(ctx, dishID)
	if err != nil {
		return nil, fmt.Errorf("get check of dish: %w", err)
	}
	if check.PlannedFoodID != plannedFoodID {
		return nil, fmt.Errorf("dish %s planned food %s: %w", dishID, plannedFoodID, domain.ErrCheckNotFound)
	}

	if err := s.checks.DeleteFoodCheck(ctx, plannedFoodID, dishID, userID); err != nil {
		return nil, fmt.Errorf("delete planned food check: %w", err)
	}

	if _, err := s.Reevaluate(ctx, userID, check.RoutineID); err != nil {
		return nil, err
	}
	return check, nil
}
