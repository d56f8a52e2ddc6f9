// Package compliance implements routine and planned-food check persistence
// using PostgreSQL.
package compliance

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/dietrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

const (
	foodChecksTable    = "planned_food_checks"
	routineChecksTable = "routine_checks"
)

var (
	foodCheckColumns    = []string{"planned_food_id", "dish_id", "user_id", "routine_id", "quantity", "checked_at"}
	routineCheckColumns = []string{"routine_id", "user_id", "is_complete", "checked_at"}
)

type foodCheckRow struct {
	PlannedFoodID uuid.UUID `db:"planned_food_id"`
	DishID        uuid.UUID `db:"dish_id"`
	UserID        uuid.UUID `db:"user_id"`
	RoutineID     uuid.UUID `db:"routine_id"`
	Quantity      int       `db:"quantity"`
	CheckedAt     time.Time `db:"checked_at"`
}

type routineCheckRow struct {
	RoutineID  uuid.UUID `db:"routine_id"`
	UserID     uuid.UUID `db:"user_id"`
	IsComplete bool      `db:"is_complete"`
	CheckedAt  time.Time `db:"checked_at"`
}

// Repo provides compliance check persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new compliance repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Planned food checks
// ---------------------------------------------------------------------------

// CreateFoodCheck inserts a planned food check.
// Returns domain.ErrCheckAlreadyExists if the planned food is already
// fulfilled for the user or the dish already fulfils something.
func (r *Repo) CreateFoodCheck(ctx context.Context, c domain.PlannedFoodCheck) error {
	query, args, err := postgres.Builder.
		Insert(foodChecksTable).
		Columns(foodCheckColumns...).
		Values(c.PlannedFoodID, c.DishID, c.UserID, c.RoutineID, c.Quantity, c.CheckedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build food check insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		if postgres.IsUniqueViolation(err, "") {
			return fmt.Errorf("planned food %s dish %s: %w", c.PlannedFoodID, c.DishID, domain.ErrCheckAlreadyExists)
		}
		return postgres.MapError(err, domain.ErrCheckNotFound, "planned_food_check", c.PlannedFoodID)
	}

	return nil
}

// GetFoodCheckByDish returns the check owned by a dish.
// Returns domain.ErrCheckNotFound if the dish fulfils nothing.
func (r *Repo) GetFoodCheckByDish(ctx context.Context, dishID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	return r.getFoodCheck(ctx, squirrel.Eq{"dish_id": dishID}, dishID)
}

// GetFoodCheckByPlannedFood returns the check fulfilling a planned food for a user.
// Returns domain.ErrCheckNotFound if the planned food is not fulfilled.
func (r *Repo) GetFoodCheckByPlannedFood(ctx context.Context, plannedFoodID, userID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	return r.getFoodCheck(ctx, squirrel.Eq{"planned_food_id": plannedFoodID, "user_id": userID}, plannedFoodID)
}

// ListFoodChecks returns the user's checks among the given planned foods.
func (r *Repo) ListFoodChecks(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) ([]domain.PlannedFoodCheck, error) {
	if len(plannedFoodIDs) == 0 {
		return []domain.PlannedFoodCheck{}, nil
	}

	query, args, err := postgres.Builder.
		Select(foodCheckColumns...).
		From(foodChecksTable).
		Where(squirrel.Eq{"user_id": userID, "planned_food_id": plannedFoodIDs}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build food check list: %w", err)
	}

	var rows []foodCheckRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list food checks: %w", err)
	}

	checks := make([]domain.PlannedFoodCheck, len(rows))
	for i, row := range rows {
		checks[i] = toDomainFoodCheck(row)
	}
	return checks, nil
}

// CountFoodChecks returns how many planned foods of a routine the user has
// fulfilled.
func (r *Repo) CountFoodChecks(ctx context.Context, routineID, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(foodChecksTable).
		Where(squirrel.Eq{"routine_id": routineID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build food check count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count food checks of routine %s: %w", routineID, err)
	}
	return n, nil
}

// DeleteFoodCheck removes the check for the exact (planned food, dish, user)
// triple. Returns domain.ErrCheckNotFound if no such row exists.
func (r *Repo) DeleteFoodCheck(ctx context.Context, plannedFoodID, dishID, userID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete(foodChecksTable).
		Where(squirrel.Eq{"planned_food_id": plannedFoodID, "dish_id": dishID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build food check delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, domain.ErrCheckNotFound, "planned_food_check", plannedFoodID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("planned food %s dish %s: %w", plannedFoodID, dishID, domain.ErrCheckNotFound)
	}
	return nil
}

// SetFoodCheckQuantity updates the quantity recorded on a dish's check.
// Returns domain.ErrCheckNotFound if the dish fulfils nothing.
func (r *Repo) SetFoodCheckQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error {
	query, args, err := postgres.Builder.
		Update(foodChecksTable).
		Set("quantity", quantity).
		Where(squirrel.Eq{"dish_id": dishID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build food check quantity update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, domain.ErrCheckNotFound, "planned_food_check", dishID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dish %s: %w", dishID, domain.ErrCheckNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Routine checks
// ---------------------------------------------------------------------------

// GetRoutineCheck returns the user's completion flag for a routine.
// Returns domain.ErrNotFound if the routine was never checked.
func (r *Repo) GetRoutineCheck(ctx context.Context, routineID, userID uuid.UUID) (*domain.RoutineCheck, error) {
	query, args, err := postgres.Builder.
		Select(routineCheckColumns...).
		From(routineChecksTable).
		Where(squirrel.Eq{"routine_id": routineID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build routine check query: %w", err)
	}

	var row routineCheckRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrNotFound, "routine_check", routineID)
	}

	return &domain.RoutineCheck{
		RoutineID:  row.RoutineID,
		UserID:     row.UserID,
		IsComplete: row.IsComplete,
		CheckedAt:  row.CheckedAt,
	}, nil
}

// SetRoutineCheck upserts the user's completion flag for a routine.
func (r *Repo) SetRoutineCheck(ctx context.Context, c domain.RoutineCheck) error {
	query, args, err := postgres.Builder.
		Insert(routineChecksTable).
		Columns(routineCheckColumns...).
		Values(c.RoutineID, c.UserID, c.IsComplete, c.CheckedAt).
		Suffix("ON CONFLICT (routine_id, user_id) DO UPDATE SET is_complete = EXCLUDED.is_complete, checked_at = EXCLUDED.checked_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build routine check upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, domain.ErrRoutineNotFound, "routine_check", c.RoutineID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getFoodCheck(ctx context.Context, where squirrel.Eq, key uuid.UUID) (*domain.PlannedFoodCheck, error) {
	query, args, err := postgres.Builder.
		Select(foodCheckColumns...).
		From(foodChecksTable).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build food check query: %w", err)
	}

	var row foodCheckRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrCheckNotFound, "planned_food_check", key)
	}

	c := toDomainFoodCheck(row)
	return &c, nil
}

func toDomainFoodCheck(row foodCheckRow) domain.PlannedFoodCheck {
	return domain.PlannedFoodCheck{
		PlannedFoodID: row.PlannedFoodID,
		DishID:        row.DishID,
		UserID:        row.UserID,
		RoutineID:     row.RoutineID,
		Quantity:      row.Quantity,
		CheckedAt:     row.CheckedAt,
	}
}
