// Package plan implements read access to tracks, routines and planned foods
// using PostgreSQL. Plan authoring lives in another service; this package
// only reads what the reconciliation engine needs.
package plan

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

var (
	trackColumns       = []string{"id", "user_id", "name", "duration", "daily_calorie", "start_date", "finish_date", "created_at"}
	routineColumns     = []string{"id", "track_id", "title", "meal_time", "day_index", "calorie"}
	plannedFoodColumns = []string{"id", "routine_id", "food_label", "food_name", "quantity"}
)

type trackRow struct {
	ID           uuid.UUID  `db:"id"`
	UserID       uuid.UUID  `db:"user_id"`
	Name         string     `db:"name"`
	Duration     int        `db:"duration"`
	DailyCalorie float64    `db:"daily_calorie"`
	StartDate    *time.Time `db:"start_date"`
	FinishDate   *time.Time `db:"finish_date"`
	CreatedAt    time.Time  `db:"created_at"`
}

type routineRow struct {
	ID       uuid.UUID `db:"id"`
	TrackID  uuid.UUID `db:"track_id"`
	Title    string    `db:"title"`
	MealTime string    `db:"meal_time"`
	DayIndex int       `db:"day_index"`
	Calorie  float64   `db:"calorie"`
}

type plannedFoodRow struct {
	ID        uuid.UUID `db:"id"`
	RoutineID uuid.UUID `db:"routine_id"`
	FoodLabel *int64    `db:"food_label"`
	FoodName  string    `db:"food_name"`
	Quantity  int       `db:"quantity"`
}

// Repo reads plan structure.
type Repo struct {
	db postgres.Querier
}

// New creates a new plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetTrack returns a track by ID.
func (r *Repo) GetTrack(ctx context.Context, trackID uuid.UUID) (*domain.Track, error) {
	query, args, err := postgres.Builder.
		Select(trackColumns...).
		From("tracks").
		Where(squirrel.Eq{"id": trackID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build track query: %w", err)
	}

	var row trackRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrNotFound, "track", trackID)
	}

	return &domain.Track{
		ID:           row.ID,
		UserID:       row.UserID,
		Name:         row.Name,
		Duration:     row.Duration,
		DailyCalorie: row.DailyCalorie,
		StartDate:    row.StartDate,
		FinishDate:   row.FinishDate,
		CreatedAt:    row.CreatedAt,
	}, nil
}

// GetRoutine returns a routine with its planned foods.
// Returns domain.ErrRoutineNotFound if it does not exist or was deleted.
func (r *Repo) GetRoutine(ctx context.Context, routineID uuid.UUID) (*domain.Routine, error) {
	return r.getRoutine(ctx, squirrel.Eq{"id": routineID}, routineID)
}

// FindRoutine returns the routine of a track covering the given day and
// meal time, with its planned foods.
func (r *Repo) FindRoutine(ctx context.Context, trackID uuid.UUID, dayIndex int, mealTime domain.MealTime) (*domain.Routine, error) {
	where := squirrel.Eq{
		"track_id":  trackID,
		"day_index": dayIndex,
		"meal_time": string(mealTime),
	}
	return r.getRoutine(ctx, where, fmt.Sprintf("%s/%d/%s", trackID, dayIndex, mealTime))
}

// GetPlannedFood returns a single planned food.
func (r *Repo) GetPlannedFood(ctx context.Context, plannedFoodID uuid.UUID) (*domain.PlannedFood, error) {
	query, args, err := postgres.Builder.
		Select(plannedFoodColumns...).
		From("planned_foods").
		Where(squirrel.Eq{"id": plannedFoodID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build planned food query: %w", err)
	}

	var row plannedFoodRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrPlannedFoodNotFound, "planned_food", plannedFoodID)
	}

	pf := toDomainPlannedFood(row)
	return &pf, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getRoutine(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.Routine, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(routineColumns...).
		From("routines").
		Where(where).
		Where(squirrel.Eq{"deleted": false}).
		OrderBy("created_at").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build routine query: %w", err)
	}

	var row routineRow
	if err := pgxscan.Get(ctx, q, &row, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.ErrRoutineNotFound, "routine", key)
	}

	foods, err := r.listPlannedFoods(ctx, q, row.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Routine{
		ID:           row.ID,
		TrackID:      row.TrackID,
		Title:        row.Title,
		MealTime:     domain.MealTime(row.MealTime),
		DayIndex:     row.DayIndex,
		Calorie:      row.Calorie,
		PlannedFoods: foods,
	}, nil
}

func (r *Repo) listPlannedFoods(ctx context.Context, q postgres.Querier, routineID uuid.UUID) ([]domain.PlannedFood, error) {
	query, args, err := postgres.Builder.
		Select(plannedFoodColumns...).
		From("planned_foods").
		Where(squirrel.Eq{"routine_id": routineID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build planned foods query: %w", err)
	}

	var rows []plannedFoodRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list planned foods of routine %s: %w", routineID, err)
	}

	foods := make([]domain.PlannedFood, len(rows))
	for i, row := range rows {
		foods[i] = toDomainPlannedFood(row)
	}
	return foods, nil
}

func toDomainPlannedFood(row plannedFoodRow) domain.PlannedFood {
	return domain.PlannedFood{
		ID:         row.ID,
		RoutineID:  row.RoutineID,
		CatalogKey: row.FoodLabel,
		Name:       row.FoodName,
		Quantity:   row.Quantity,
	}
}
