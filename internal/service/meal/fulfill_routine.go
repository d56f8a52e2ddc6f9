package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/compliance"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// FulfillRoutine records one dish per planned food of a routine, each at
// its planned quantity, and completes the routine. Fails with
// domain.ErrDishAlreadyExists before writing anything if any planned food
// is already fulfilled.
func (s *Service) FulfillRoutine(ctx context.Context, input FulfillRoutineInput) ([]domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created []domain.Dish
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		routine, err := s.plans.GetRoutine(txCtx, input.RoutineID)
		if err != nil {
			return fmt.Errorf("get routine: %w", err)
		}
		if len(routine.PlannedFoods) == 0 {
			return domain.NewValidationError("routine_id", "routine has no planned foods")
		}

		ids := make([]uuid.UUID, len(routine.PlannedFoods))
		for i, pf := range routine.PlannedFoods {
			ids[i] = pf.ID
		}
		if err := s.tracker.EnsureNotFulfilled(txCtx, userID, ids); err != nil {
			return err
		}

		now := time.Now().UTC()
		trackID := routine.TrackID
		dishes := make([]*domain.Dish, len(routine.PlannedFoods))
		delta := newLedgerDelta()
		for i := range routine.PlannedFoods {
			pf := &routine.PlannedFoods[i]
			d := &domain.Dish{
				ID:        uuid.New(),
				UserID:    userID,
				Date:      domain.DayOf(input.Date),
				MealTime:  routine.MealTime,
				DayIndex:  routine.DayIndex,
				Quantity:  pf.Quantity,
				TrackID:   &trackID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			d.Bind(pf)
			if err := s.priceDish(txCtx, d); err != nil {
				return err
			}
			delta.add(d.LedgerKey(), d.Portion.Nutrients)
			dishes[i] = d
		}

		if err := s.apply(txCtx, delta); err != nil {
			return err
		}

		created = make([]domain.Dish, 0, len(dishes))
		for i, d := range dishes {
			stored, err := s.dishes.Create(txCtx, d)
			if err != nil {
				return fmt.Errorf("create dish: %w", err)
			}
			if err := s.tracker.CreateCheck(txCtx, compliance.CheckInput{
				UserID:      userID,
				PlannedFood: &routine.PlannedFoods[i],
				DishID:      stored.ID,
				Quantity:    stored.Quantity,
			}); err != nil {
				return err
			}
			created = append(created, *stored)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "routine fulfilled",
		slog.String("user_id", userID.String()),
		slog.String("routine_id", input.RoutineID.String()),
		slog.Int("dishes", len(created)),
	)

	return created, nil
}
