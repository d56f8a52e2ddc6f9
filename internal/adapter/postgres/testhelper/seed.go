package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueLabel returns a catalog label unlikely to collide across tests
// sharing the database.
func uniqueLabel() int64 {
	return int64(uuid.New().ID())
}

// SeedFood inserts a catalog food with the given per-unit calorie and
// macros. Returns the facts as the catalog reports them.
func SeedFood(t *testing.T, pool *pgxpool.Pool, name string, perUnit domain.Nutrients) domain.FoodFacts {
	t.Helper()

	facts := domain.FoodFacts{
		Label:   uniqueLabel(),
		Name:    name + " " + uniqueSuffix(),
		Size:    100,
		Unit:    "g",
		PerUnit: perUnit,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO foods (label, name, size, unit, calorie, carb, protein, fat)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		facts.Label, facts.Name, facts.Size, facts.Unit,
		perUnit.Calorie, perUnit.Carb, perUnit.Protein, perUnit.Fat,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFood insert: %v", err)
	}

	return facts
}

// SeedTrack creates a track owned by userID.
func SeedTrack(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, dailyCalorie float64) domain.Track {
	t.Helper()

	track := domain.Track{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "track " + uniqueSuffix(),
		Duration:     7,
		DailyCalorie: dailyCalorie,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tracks (id, user_id, name, duration, daily_calorie) VALUES ($1, $2, $3, $4, $5)`,
		track.ID, track.UserID, track.Name, track.Duration, track.DailyCalorie,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTrack insert: %v", err)
	}

	return track
}

// SeedRoutine creates a routine with one planned food per entry of foods.
// A food with a nil CatalogKey is planned by free-text name.
func SeedRoutine(t *testing.T, pool *pgxpool.Pool, trackID uuid.UUID, mealTime domain.MealTime, dayIndex int, foods ...domain.PlannedFood) domain.Routine {
	t.Helper()
	ctx := context.Background()

	routine := domain.Routine{
		ID:       uuid.New(),
		TrackID:  trackID,
		Title:    string(mealTime) + " " + uniqueSuffix(),
		MealTime: mealTime,
		DayIndex: dayIndex,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO routines (id, track_id, title, meal_time, day_index) VALUES ($1, $2, $3, $4, $5)`,
		routine.ID, routine.TrackID, routine.Title, string(routine.MealTime), routine.DayIndex,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoutine insert routine: %v", err)
	}

	for _, pf := range foods {
		pf.ID = uuid.New()
		pf.RoutineID = routine.ID
		if pf.Quantity == 0 {
			pf.Quantity = 1
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO planned_foods (id, routine_id, food_label, food_name, quantity) VALUES ($1, $2, $3, $4, $5)`,
			pf.ID, pf.RoutineID, pf.CatalogKey, pf.Name, pf.Quantity,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedRoutine insert planned food: %v", err)
		}
		routine.PlannedFoods = append(routine.PlannedFoods, pf)
	}

	return routine
}
