package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoutineCheck is the per-user completion flag of a routine.
type RoutineCheck struct {
	RoutineID  uuid.UUID
	UserID     uuid.UUID
	IsComplete bool
	CheckedAt  time.Time
}

// PlannedFoodCheck links a planned food to the dish currently fulfilling it.
type PlannedFoodCheck struct {
	PlannedFoodID uuid.UUID
	DishID        uuid.UUID
	UserID        uuid.UUID
	RoutineID     uuid.UUID
	Quantity      int
	CheckedAt     time.Time
}

// RoutineStatus summarises how much of a routine a user has fulfilled.
type RoutineStatus struct {
	RoutineID      uuid.UUID
	IsComplete     bool
	PlannedCount   int
	FulfilledCount int
}
