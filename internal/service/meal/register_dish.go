package meal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/compliance"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// RegisterDish records a dish on the caller's ledger for the day. The dish
// is priced once here and the snapshot is stored with it. Registering
// against a planned food binds the dish to it, places it in that food's
// routine slot (track, day index and meal time) and completes the routine.
//
// The day's ledger must already be open; otherwise domain.ErrLedgerNotFound.
func (s *Service) RegisterDish(ctx context.Context, input RegisterDishInput) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	if input.PlannedFoodID == nil && !input.identity().IsValid() {
		return nil, domain.ErrInvalidIdentity
	}

	now := time.Now().UTC()
	dish := &domain.Dish{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       domain.DayOf(input.Date),
		MealTime:   input.MealTime,
		DayIndex:   input.DayIndex,
		Name:       strings.TrimSpace(input.Name),
		Quantity:   input.Quantity,
		CatalogKey: input.CatalogKey,
		TrackID:    input.TrackID,
		ImageRef:   input.ImageRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var created *domain.Dish
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var pf *domain.PlannedFood
		if input.PlannedFoodID != nil {
			var err error
			pf, err = s.plans.GetPlannedFood(txCtx, *input.PlannedFoodID)
			if err != nil {
				return fmt.Errorf("get planned food: %w", err)
			}

			existing, err := s.tracker.FulfillingCheck(txCtx, userID, pf.ID)
			if err != nil {
				return err
			}
			if existing != nil {
				return fmt.Errorf("planned food %s: %w", pf.ID, domain.ErrDishAlreadyExists)
			}

			routine, err := s.plans.GetRoutine(txCtx, pf.RoutineID)
			if err != nil {
				return fmt.Errorf("get routine: %w", err)
			}
			trackID := routine.TrackID
			dish.TrackID = &trackID
			dish.DayIndex = routine.DayIndex
			dish.MealTime = routine.MealTime

			dish.Bind(pf)
			if dish.Quantity == 0 {
				dish.Quantity = pf.Quantity
			}
		}

		if err := s.priceDish(txCtx, dish); err != nil {
			return err
		}

		delta := newLedgerDelta()
		delta.add(dish.LedgerKey(), dish.Portion.Nutrients)
		if err := s.apply(txCtx, delta); err != nil {
			return err
		}

		var err error
		created, err = s.dishes.Create(txCtx, dish)
		if err != nil {
			return fmt.Errorf("create dish: %w", err)
		}

		if pf != nil {
			if err := s.tracker.CreateCheck(txCtx, compliance.CheckInput{
				UserID:      userID,
				PlannedFood: pf,
				DishID:      created.ID,
				Quantity:    created.Quantity,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "dish registered",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", created.ID.String()),
		slog.Int("quantity", created.Quantity),
		slog.Float64("calorie", created.Portion.Nutrients.Calorie),
	)

	return created, nil
}
