// Package dish implements the consumption record repository using PostgreSQL.
package dish

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

const table = "dishes"

var dishColumns = []string{
	"id", "user_id", "record_date", "meal_time", "day_index", "name", "quantity",
	"carb", "protein", "fat", "calorie", "size", "unit",
	"food_label", "planned_food_id", "track_id", "image_ref", "favorite", "goal_met",
	"created_at", "updated_at",
}

type dishRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	RecordDate    time.Time  `db:"record_date"`
	MealTime      string     `db:"meal_time"`
	DayIndex      int        `db:"day_index"`
	Name          string     `db:"name"`
	Quantity      int        `db:"quantity"`
	Carb          float64    `db:"carb"`
	Protein       float64    `db:"protein"`
	Fat           float64    `db:"fat"`
	Calorie       float64    `db:"calorie"`
	Size          float64    `db:"size"`
	Unit          string     `db:"unit"`
	FoodLabel     *int64     `db:"food_label"`
	PlannedFoodID *uuid.UUID `db:"planned_food_id"`
	TrackID       *uuid.UUID `db:"track_id"`
	ImageRef      *string    `db:"image_ref"`
	Favorite      bool       `db:"favorite"`
	GoalMet       bool       `db:"goal_met"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// Repo provides dish persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dish repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dish by primary key regardless of owner.
// Returns domain.ErrRecordNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	return r.get(ctx, dishID, false)
}

// GetForUpdate returns a dish and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	return r.get(ctx, dishID, true)
}

// ListByDay returns a user's dishes recorded under one ledger day, in
// creation order.
func (r *Repo) ListByDay(ctx context.Context, key domain.LedgerKey) ([]domain.Dish, error) {
	query, args, err := postgres.Builder.
		Select(dishColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": key.UserID, "record_date": domain.DayOf(key.Date)}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dish list query: %w", err)
	}

	var rows []dishRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}

	dishes := make([]domain.Dish, len(rows))
	for i, row := range rows {
		dishes[i] = *toDomain(row)
	}
	return dishes, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dish and returns the stored row.
func (r *Repo) Create(ctx context.Context, d *domain.Dish) (*domain.Dish, error) {
	query, args, err := postgres.Builder.
		Insert(table).
		Columns(dishColumns...).
		Values(
			d.ID, d.UserID, domain.DayOf(d.Date), string(d.MealTime), d.DayIndex, d.Name, d.Quantity,
			domain.Exact(d.Portion.Nutrients.Carb), domain.Exact(d.Portion.Nutrients.Protein),
			domain.Exact(d.Portion.Nutrients.Fat), domain.Exact(d.Portion.Nutrients.Calorie),
			d.Portion.Size, d.Portion.Unit,
			d.CatalogKey, d.PlannedFoodID, d.TrackID, d.ImageRef, d.Favorite, d.GoalMet,
			d.CreatedAt, d.UpdatedAt,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dish insert: %w", err)
	}

	var row dishRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrRecordNotFound, "dish", d.ID)
	}

	return toDomain(row), nil
}

// Update overwrites the mutable fields of a dish: identity, quantity,
// snapshot, plan binding and favorite flag.
func (r *Repo) Update(ctx context.Context, d *domain.Dish) (*domain.Dish, error) {
	query, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"name":            d.Name,
			"quantity":        d.Quantity,
			"carb":            domain.Exact(d.Portion.Nutrients.Carb),
			"protein":         domain.Exact(d.Portion.Nutrients.Protein),
			"fat":             domain.Exact(d.Portion.Nutrients.Fat),
			"calorie":         domain.Exact(d.Portion.Nutrients.Calorie),
			"size":            d.Portion.Size,
			"unit":            d.Portion.Unit,
			"food_label":      d.CatalogKey,
			"planned_food_id": d.PlannedFoodID,
			"goal_met":        d.GoalMet,
			"favorite":        d.Favorite,
			"updated_at":      d.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": d.ID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dish update: %w", err)
	}

	var row dishRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrRecordNotFound, "dish", d.ID)
	}

	return toDomain(row), nil
}

// Delete removes a dish. Returns domain.ErrRecordNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, dishID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": dishID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build dish delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, domain.ErrRecordNotFound, "dish", dishID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dish %s: %w", dishID, domain.ErrRecordNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) get(ctx context.Context, dishID uuid.UUID, lock bool) (*domain.Dish, error) {
	b := postgres.Builder.
		Select(dishColumns...).
		From(table).
		Where(squirrel.Eq{"id": dishID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build dish query: %w", err)
	}

	var row dishRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrRecordNotFound, "dish", dishID)
	}

	return toDomain(row), nil
}

func columnList() string {
	return strings.Join(dishColumns, ", ")
}

func toDomain(row dishRow) *domain.Dish {
	return &domain.Dish{
		ID:       row.ID,
		UserID:   row.UserID,
		Date:     domain.DayOf(row.RecordDate),
		MealTime: domain.MealTime(row.MealTime),
		DayIndex: row.DayIndex,
		Name:     row.Name,
		Quantity: row.Quantity,
		Portion: domain.Portion{
			Nutrients: domain.Nutrients{Carb: row.Carb, Protein: row.Protein, Fat: row.Fat, Calorie: row.Calorie},
			Size:      row.Size,
			Unit:      row.Unit,
		},
		CatalogKey:    row.FoodLabel,
		PlannedFoodID: row.PlannedFoodID,
		TrackID:       row.TrackID,
		ImageRef:      row.ImageRef,
		Favorite:      row.Favorite,
		GoalMet:       row.GoalMet,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
