package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/pkg/ctxutil"
)

// UpdateBodyLog edits the hand-entered fields of a day. Nutrient totals
// are never touched here.
func (s *Service) UpdateBodyLog(ctx context.Context, input BodyLogInput) (*domain.NutrientLedger, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := domain.NewLedgerKey(userID, input.Date)
	l, err := s.ledgers.UpdateBody(ctx, key, input.body())
	if err != nil {
		return nil, fmt.Errorf("update body log: %w", err)
	}

	s.log.DebugContext(ctx, "body log updated",
		slog.String("user_id", userID.String()),
		slog.String("date", key.Date.Format(time.DateOnly)),
	)
	return l, nil
}
