// Package foodcatalog implements read access to the nutrition catalog
// table. The catalog is maintained by another service; this package never
// writes to it.
package foodcatalog

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var foodColumns = []string{"label", "name", "size", "unit", "calorie", "carb", "protein", "fat"}

type foodRow struct {
	Label   int64   `db:"label"`
	Name    string  `db:"name"`
	Size    float64 `db:"size"`
	Unit    string  `db:"unit"`
	Calorie float64 `db:"calorie"`
	Carb    float64 `db:"carb"`
	Protein float64 `db:"protein"`
	Fat     float64 `db:"fat"`
}

// Repo looks up per-unit food facts by catalog label.
type Repo struct {
	db postgres.Querier
}

// New creates a new food catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByKey returns the per-unit facts of a catalog food.
// Returns domain.ErrCatalogEntryNotFound if the label is unknown.
func (r *Repo) GetByKey(ctx context.Context, label int64) (*domain.FoodFacts, error) {
	query, args, err := postgres.Builder.
		Select(foodColumns...).
		From("foods").
		Where(squirrel.Eq{"label": label}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build food query: %w", err)
	}

	var row foodRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrCatalogEntryNotFound, "food", label)
	}

	return &domain.FoodFacts{
		Label: row.Label,
		Name:  row.Name,
		Size:  row.Size,
		Unit:  row.Unit,
		PerUnit: domain.Nutrients{
			Carb:    row.Carb,
			Protein: row.Protein,
			Fat:     row.Fat,
			Calorie: row.Calorie,
		},
	}, nil
}

// Count returns the number of catalog entries.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From("foods").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build food count query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}
