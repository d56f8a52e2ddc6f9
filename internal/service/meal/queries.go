package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// GetDish returns one of the caller's dishes.
func (s *Service) GetDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dish, err := s.dishes.GetByID(ctx, dishID)
	if err != nil {
		return nil, err
	}
	if dish.UserID != userID {
		return nil, fmt.Errorf("dish %s: %w", dishID, domain.ErrRecordNotFound)
	}
	return dish, nil
}

// ListDishes returns the caller's dishes for a day.
func (s *Service) ListDishes(ctx context.Context, date time.Time) ([]domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	dishes, err := s.dishes.ListByDay(ctx, domain.NewLedgerKey(userID, date))
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return dishes, nil
}

// SetFavorite marks or unmarks a dish as favorite. The ledger and plan
// checks are not affected.
func (s *Service) SetFavorite(ctx context.Context, dishID uuid.UUID, favorite bool) (*domain.Dish, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Dish
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		dish, err := s.dishes.GetForUpdate(txCtx, dishID)
		if err != nil {
			return err
		}
		if dish.UserID != userID {
			return domain.ErrUnauthorized
		}
		if dish.Favorite == favorite {
			updated = dish
			return nil
		}

		dish.Favorite = favorite
		dish.UpdatedAt = time.Now().UTC()
		updated, err = s.dishes.Update(txCtx, dish)
		if err != nil {
			return fmt.Errorf("update dish: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.log.DebugContext(ctx, "dish favorite set",
		slog.String("dish_id", dishID.String()),
		slog.Bool("favorite", favorite),
	)
	return updated, nil
}
