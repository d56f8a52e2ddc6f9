package meal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/compliance"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// UpdatePath names how an update was reconciled.
type UpdatePath string

const (
	// PathRescale kept the food and scaled the snapshot by quantity.
	PathRescale UpdatePath = "RESCALE"
	// PathMerge folded the dish into the dish already fulfilling the
	// planned food it now names.
	PathMerge UpdatePath = "MERGE"
	// PathRepoint bound the dish to the unfulfilled planned food it now names.
	PathRepoint UpdatePath = "REPOINT"
	// PathReprice changed the food to one the routine does not plan.
	PathReprice UpdatePath = "REPRICE"
)

// UpdateResult is the outcome of UpdateDish.
type UpdateResult struct {
	// Dish carries the food after the update. After a merge it is the
	// surviving dish, not the edited one.
	Dish *domain.Dish
	Path UpdatePath
	// RemovedDishID is set after a merge to the ID of the deleted dish.
	RemovedDishID *uuid.UUID
	// RemovedImageRef is the deleted dish's image, left for the caller to
	// clean up.
	RemovedImageRef *string
}

// UpdateDish changes a dish's quantity and optionally the food it names,
// then reconciles the ledger and plan compliance. Exactly one net ledger
// delta is applied.
//
// Returns domain.ErrRecordNotFound if the dish does not exist and
// domain.ErrUnauthorized if it belongs to another user.
func (s *Service) UpdateDish(ctx context.Context, input UpdateDishInput) (*UpdateResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var result *UpdateResult
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dish, err := s.dishes.GetForUpdate(txCtx, input.DishID)
		if err != nil {
			return err
		}
		if dish.UserID != userID {
			return domain.ErrUnauthorized
		}

		next := input.identity(dish.Identity())
		if !next.IsValid() {
			return domain.ErrInvalidIdentity
		}

		if dish.Identity().Matches(next) {
			result, err = s.rescale(txCtx, dish, input.Quantity)
		} else {
			result, err = s.swapIdentity(txCtx, dish, next, input.Quantity)
		}
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.InfoContext(ctx, "dish updated",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", input.DishID.String()),
		slog.String("path", string(result.Path)),
		slog.Int("quantity", input.Quantity),
	)

	return result, nil
}

// rescale keeps the food and scales the snapshot by new/old quantity.
func (s *Service) rescale(ctx context.Context, dish *domain.Dish, qty int) (*UpdateResult, error) {
	old := dish.Portion.Nutrients

	dish.Portion = dish.Portion.Scale(qty, dish.Quantity)
	dish.Quantity = qty
	dish.UpdatedAt = time.Now().UTC()

	updated, err := s.dishes.Update(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}

	delta := newLedgerDelta()
	delta.add(dish.LedgerKey(), updated.Portion.Nutrients.Sub(old))
	if err := s.apply(ctx, delta); err != nil {
		return nil, err
	}

	if dish.PlannedFoodID != nil {
		if err := s.tracker.SetCheckQuantity(ctx, dish.ID, qty); err != nil {
			return nil, err
		}
	}

	return &UpdateResult{Dish: updated, Path: PathRescale}, nil
}

// swapIdentity reconciles a dish whose food changed. The routine covering
// the dish's track, day and meal decides the path: the new food may be
// planned and already fulfilled (merge), planned and open (re-point), or
// not planned at all (re-price).
func (s *Service) swapIdentity(ctx context.Context, dish *domain.Dish, next domain.FoodIdentity, qty int) (*UpdateResult, error) {
	match, err := s.matchPlannedFood(ctx, dish, next)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return s.reprice(ctx, dish, next, qty)
	}

	check, err := s.tracker.FulfillingCheck(ctx, dish.UserID, match.ID)
	if err != nil {
		return nil, err
	}
	if check != nil && check.DishID != dish.ID {
		return s.merge(ctx, dish, match, check.DishID, qty)
	}
	return s.repoint(ctx, dish, match, qty)
}

func (s *Service) matchPlannedFood(ctx context.Context, dish *domain.Dish, next domain.FoodIdentity) (*domain.PlannedFood, error) {
	if dish.TrackID == nil {
		return nil, nil
	}

	routine, err := s.plans.FindRoutine(ctx, *dish.TrackID, dish.DayIndex, dish.MealTime)
	if errors.Is(err, domain.ErrRoutineNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find routine: %w", err)
	}

	return routine.MatchFood(next), nil
}

// merge adds the new quantity to the surviving dish, priced with the
// planned food's facts, and deletes the edited dish with its check. No
// check is created.
func (s *Service) merge(ctx context.Context, dish *domain.Dish, pf *domain.PlannedFood, survivorID uuid.UUID, qty int) (*UpdateResult, error) {
	survivor, err := s.dishes.GetForUpdate(ctx, survivorID)
	if err != nil {
		return nil, fmt.Errorf("lock surviving dish: %w", err)
	}

	added := &domain.Dish{Quantity: qty}
	added.Bind(pf)
	if err := s.priceDish(ctx, added); err != nil {
		return nil, err
	}

	survivor.Quantity += qty
	survivor.Portion = survivor.Portion.Add(added.Portion)
	survivor.UpdatedAt = time.Now().UTC()

	updated, err := s.dishes.Update(ctx, survivor)
	if err != nil {
		return nil, fmt.Errorf("update surviving dish: %w", err)
	}
	if err := s.tracker.SetCheckQuantity(ctx, survivor.ID, survivor.Quantity); err != nil {
		return nil, err
	}

	if err := s.dropCheck(ctx, dish); err != nil {
		return nil, err
	}
	if err := s.dishes.Delete(ctx, dish.ID); err != nil {
		return nil, fmt.Errorf("delete merged dish: %w", err)
	}

	delta := newLedgerDelta()
	delta.add(survivor.LedgerKey(), added.Portion.Nutrients)
	delta.add(dish.LedgerKey(), dish.Portion.Nutrients.Neg())
	if err := s.apply(ctx, delta); err != nil {
		return nil, err
	}

	removed := dish.ID
	return &UpdateResult{
		Dish:            updated,
		Path:            PathMerge,
		RemovedDishID:   &removed,
		RemovedImageRef: dish.ImageRef,
	}, nil
}

// repoint binds the dish to an unfulfilled planned food, re-prices it and
// moves its check there.
func (s *Service) repoint(ctx context.Context, dish *domain.Dish, pf *domain.PlannedFood, qty int) (*UpdateResult, error) {
	old := dish.Portion.Nutrients

	if err := s.dropCheck(ctx, dish); err != nil {
		return nil, err
	}

	dish.Bind(pf)
	dish.Quantity = qty
	if err := s.priceDish(ctx, dish); err != nil {
		return nil, err
	}
	dish.UpdatedAt = time.Now().UTC()

	updated, err := s.dishes.Update(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}

	if err := s.tracker.CreateCheck(ctx, compliance.CheckInput{
		UserID:      dish.UserID,
		PlannedFood: pf,
		DishID:      dish.ID,
		Quantity:    qty,
	}); err != nil {
		return nil, err
	}

	delta := newLedgerDelta()
	delta.add(dish.LedgerKey(), updated.Portion.Nutrients.Sub(old))
	if err := s.apply(ctx, delta); err != nil {
		return nil, err
	}

	return &UpdateResult{Dish: updated, Path: PathRepoint}, nil
}

// reprice gives the dish an unplanned food, unbinds it and re-evaluates the
// routine it used to fulfil.
func (s *Service) reprice(ctx context.Context, dish *domain.Dish, next domain.FoodIdentity, qty int) (*UpdateResult, error) {
	old := dish.Portion.Nutrients

	if err := s.dropCheck(ctx, dish); err != nil {
		return nil, err
	}

	dish.Unbind()
	dish.CatalogKey = next.CatalogKey
	dish.Name = next.Name
	dish.Quantity = qty
	if err := s.priceDish(ctx, dish); err != nil {
		return nil, err
	}
	dish.UpdatedAt = time.Now().UTC()

	updated, err := s.dishes.Update(ctx, dish)
	if err != nil {
		return nil, fmt.Errorf("update dish: %w", err)
	}

	delta := newLedgerDelta()
	delta.add(dish.LedgerKey(), updated.Portion.Nutrients.Sub(old))
	if err := s.apply(ctx, delta); err != nil {
		return nil, err
	}

	return &UpdateResult{Dish: updated, Path: PathReprice}, nil
}

// dropCheck removes the check owned by a dish. A dish bound to a planned
// food must own its check.
func (s *Service) dropCheck(ctx context.Context, dish *domain.Dish) error {
	if dish.PlannedFoodID != nil {
		_, err := s.tracker.RemoveCheckStrict(ctx, dish.UserID, *dish.PlannedFoodID, dish.ID)
		return err
	}
	_, err := s.tracker.RemoveCheck(ctx, dish.UserID, dish.ID)
	return err
}
