package meal

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// facts resolves the per-unit facts of a food. Catalog foods are looked up
// by key; free text gets the flat fallback calorie value and no macros.
func (s *Service) facts(ctx context.Context, id domain.FoodIdentity) (domain.FoodFacts, error) {
	if !id.IsValid() {
		return domain.FoodFacts{}, domain.ErrInvalidIdentity
	}
	if id.CatalogKey == nil {
		return domain.FallbackFacts(id.Name, s.cfg.FallbackCaloriePerUnit), nil
	}

	facts, err := s.catalog.GetByKey(ctx, *id.CatalogKey)
	if err != nil {
		return domain.FoodFacts{}, fmt.Errorf("get catalog facts: %w", err)
	}
	return *facts, nil
}

// priceDish sets the dish snapshot from its identity and quantity. A dish
// without a name takes the catalog name.
func (s *Service) priceDish(ctx context.Context, d *domain.Dish) error {
	facts, err := s.facts(ctx, d.Identity())
	if err != nil {
		return err
	}
	if d.Name == "" {
		d.Name = facts.Name
	}
	d.Portion = facts.Price(d.Quantity)
	return nil
}

// ---------------------------------------------------------------------------
// Ledger deltas
// ---------------------------------------------------------------------------

// ledgerDelta accumulates nutrient changes per ledger so that an operation
// writes each affected ledger exactly once.
type ledgerDelta struct {
	keys   []domain.LedgerKey
	totals map[string]domain.Nutrients
}

func newLedgerDelta() *ledgerDelta {
	return &ledgerDelta{totals: make(map[string]domain.Nutrients)}
}

func (d *ledgerDelta) add(key domain.LedgerKey, n domain.Nutrients) {
	k := ledgerKeyString(key)
	cur, ok := d.totals[k]
	if !ok {
		d.keys = append(d.keys, key)
	}
	d.totals[k] = cur.Add(n)
}

// apply writes the accumulated deltas. A ledger is written even when its
// delta is zero so that a missing ledger is always reported.
func (s *Service) apply(ctx context.Context, d *ledgerDelta) error {
	for _, key := range d.keys {
		delta := d.totals[ledgerKeyString(key)]
		if _, err := s.ledgers.ApplyDelta(ctx, key, delta); err != nil {
			return fmt.Errorf("apply ledger delta: %w", err)
		}
		s.log.DebugContext(ctx, "ledger delta applied",
			slog.String("user_id", key.UserID.String()),
			slog.String("date", key.Date.Format(time.DateOnly)),
			slog.Float64("calorie", delta.Calorie),
		)
	}
	return nil
}

func ledgerKeyString(key domain.LedgerKey) string {
	return key.UserID.String() + "/" + key.Date.Format(time.DateOnly)
}
