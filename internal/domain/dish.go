package domain

import (
	"time"

	"github.com/google/uuid"
)

// Dish is a consumption record: one food eaten by a user on a day, with the
// nutrient snapshot priced at write time.
type Dish struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          time.Time
	MealTime      MealTime
	DayIndex      int
	Name          string
	Quantity      int
	Portion       Portion
	CatalogKey    *int64
	PlannedFoodID *uuid.UUID
	TrackID       *uuid.UUID
	ImageRef      *string
	Favorite      bool
	GoalMet       bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LedgerKey returns the key of the ledger this dish counts towards.
func (d *Dish) LedgerKey() LedgerKey {
	return LedgerKey{UserID: d.UserID, Date: d.Date}
}

// Identity returns the food identity the dish currently represents.
func (d *Dish) Identity() FoodIdentity {
	return FoodIdentity{CatalogKey: d.CatalogKey, Name: d.Name}
}

// Bind links the dish to a planned food and takes over its identity.
func (d *Dish) Bind(pf *PlannedFood) {
	id := pf.ID
	d.PlannedFoodID = &id
	d.CatalogKey = pf.CatalogKey
	d.Name = pf.Name
	d.GoalMet = true
}

// Unbind drops the planned food link.
func (d *Dish) Unbind() {
	d.PlannedFoodID = nil
	d.GoalMet = false
}
