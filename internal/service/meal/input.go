package meal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/config"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// RegisterDishInput holds the parameters for recording a dish.
//
// A dish names its food by CatalogKey or by free-text Name. With
// PlannedFoodID set the dish takes the planned food's identity and routine
// slot instead, overriding TrackID, DayIndex and MealTime, and a zero
// Quantity means the planned quantity.
type RegisterDishInput struct {
	Date          time.Time
	MealTime      domain.MealTime
	DayIndex      int
	CatalogKey    *int64
	Name          string
	Quantity      int
	PlannedFoodID *uuid.UUID
	TrackID       *uuid.UUID
	ImageRef      *string
}

// Validate checks all fields and collects all errors.
func (i RegisterDishInput) Validate(cfg config.MealConfig) error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !i.MealTime.IsValid() {
		errs = append(errs, domain.FieldError{Field: "meal_time", Message: "invalid value"})
	}
	if i.DayIndex < 0 {
		errs = append(errs, domain.FieldError{Field: "day_index", Message: "must be non-negative"})
	}

	minQty := 1
	if i.PlannedFoodID != nil {
		minQty = 0
	}
	if i.Quantity < minQty || i.Quantity > cfg.MaxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: quantityMessage(minQty, cfg.MaxQuantity)})
	}
	if len(strings.TrimSpace(i.Name)) > cfg.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.ImageRef != nil && strings.TrimSpace(*i.ImageRef) == "" {
		errs = append(errs, domain.FieldError{Field: "image_ref", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RegisterDishInput) identity() domain.FoodIdentity {
	return domain.FoodIdentity{CatalogKey: i.CatalogKey, Name: strings.TrimSpace(i.Name)}
}

// UpdateDishInput changes a dish's quantity and, optionally, the food it
// names. With neither CatalogKey nor Name set the identity is unchanged.
type UpdateDishInput struct {
	DishID     uuid.UUID
	Quantity   int
	CatalogKey *int64
	Name       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDishInput) Validate(cfg config.MealConfig) error {
	var errs []domain.FieldError

	if i.DishID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dish_id", Message: "required"})
	}
	if i.Quantity < 1 || i.Quantity > cfg.MaxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: quantityMessage(1, cfg.MaxQuantity)})
	}
	if i.Name != nil && len(strings.TrimSpace(*i.Name)) > cfg.MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// identity resolves the food the dish should name after the update.
func (i UpdateDishInput) identity(current domain.FoodIdentity) domain.FoodIdentity {
	var name string
	if i.Name != nil {
		name = strings.TrimSpace(*i.Name)
	}
	switch {
	case i.CatalogKey != nil:
		return domain.FoodIdentity{CatalogKey: i.CatalogKey, Name: name}
	case i.Name != nil:
		return domain.FoodIdentity{Name: name}
	default:
		return current
	}
}

// FulfillRoutineInput records every planned food of a routine at once.
type FulfillRoutineInput struct {
	RoutineID uuid.UUID
	Date      time.Time
}

// Validate checks all fields and collects all errors.
func (i FulfillRoutineInput) Validate() error {
	var errs []domain.FieldError

	if i.RoutineID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "routine_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func quantityMessage(lo, hi int) string {
	return fmt.Sprintf("must be between %d and %d", lo, hi)
}
