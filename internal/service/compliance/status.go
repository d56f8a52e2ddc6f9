package compliance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// RoutineStatus reports the caller's progress on a routine.
func (s *Service) RoutineStatus(ctx context.Context, routineID uuid.UUID) (*domain.RoutineStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	routine, err := s.plans.GetRoutine(ctx, routineID)
	if err != nil {
		return nil, fmt.Errorf("get routine: %w", err)
	}

	ids := make([]uuid.UUID, len(routine.PlannedFoods))
	for i, pf := range routine.PlannedFoods {
		ids[i] = pf.ID
	}

	checks, err := s.checks.ListFoodChecks(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list planned food checks: %w", err)
	}

	status := &domain.RoutineStatus{
		RoutineID:      routineID,
		PlannedCount:   len(ids),
		FulfilledCount: len(checks),
	}

	rc, err := s.checks.GetRoutineCheck(ctx, routineID, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("get routine check: %w", err)
	default:
		status.IsComplete = rc.IsComplete
	}

	return status, nil
}
