package meal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// DeleteDish removes a dish, subtracts its snapshot from the ledger and
// drops its plan check. The deleted dish is returned so the caller can
// release its image.
//
// Returns domain.ErrRecordNotFound if the dish does not exist or belongs to
// another user.
func (s *Service) DeleteDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var deleted *domain.Dish
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dish, err := s.dishes.GetForUpdate(txCtx, dishID)
		if err != nil {
			return err
		}
		if dish.UserID != userID {
			return fmt.Errorf("dish %s: %w", dishID, domain.ErrRecordNotFound)
		}

		delta := newLedgerDelta()
		delta.add(dish.LedgerKey(), dish.Portion.Nutrients.Neg())
		if err := s.apply(txCtx, delta); err != nil {
			return err
		}

		if err := s.dropCheck(txCtx, dish); err != nil {
			return err
		}

		if err := s.dishes.Delete(txCtx, dish.ID); err != nil {
			return fmt.Errorf("delete dish: %w", err)
		}

		deleted = dish
		return nil
	})
	if txErr != nil {
		if !errors.Is(txErr, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "delete dish failed",
				slog.String("dish_id", dishID.String()),
				slog.String("error", txErr.Error()),
			)
		}
		return nil, txErr
	}

	s.log.InfoContext(ctx, "dish deleted",
		slog.String("user_id", userID.String()),
		slog.String("dish_id", dishID.String()),
	)

	return deleted, nil
}
