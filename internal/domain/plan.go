package domain

import (
	"time"

	"github.com/google/uuid"
)

// Track is a multi-day meal plan.
type Track struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Duration     int
	DailyCalorie float64
	StartDate    *time.Time
	FinishDate   *time.Time
	CreatedAt    time.Time
}

// Routine is a prescribed meal of a track on one day index and meal time.
type Routine struct {
	ID           uuid.UUID
	TrackID      uuid.UUID
	Title        string
	MealTime     MealTime
	DayIndex     int
	Calorie      float64
	PlannedFoods []PlannedFood
}

// MatchFood returns the planned food whose identity matches id, or nil.
func (r *Routine) MatchFood(id FoodIdentity) *PlannedFood {
	for i := range r.PlannedFoods {
		if r.PlannedFoods[i].Identity().Matches(id) {
			return &r.PlannedFoods[i]
		}
	}
	return nil
}

// PlannedFood is a target food listed in a routine.
type PlannedFood struct {
	ID         uuid.UUID
	RoutineID  uuid.UUID
	CatalogKey *int64
	Name       string
	Quantity   int
}

// Identity returns the food identity of the planned item.
func (p *PlannedFood) Identity() FoodIdentity {
	return FoodIdentity{CatalogKey: p.CatalogKey, Name: p.Name}
}
