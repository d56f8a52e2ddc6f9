package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

// OpenDayInput holds the parameters for opening a day.
type OpenDayInput struct {
	Date        time.Time
	TrackID     *uuid.UUID
	GoalCalorie *float64
}

// Validate checks all fields and collects all errors.
func (i OpenDayInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.GoalCalorie != nil && *i.GoalCalorie < 0 {
		errs = append(errs, domain.FieldError{Field: "goal_calorie", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BodyLogInput holds a partial update of the user-editable day fields.
type BodyLogInput struct {
	Date          time.Time
	Weight        *float64
	Water         *int
	Caffeine      *int
	Alcohol       *int
	CheatCount    *int
	BurnedCalorie *float64
}

// Validate checks all fields and collects all errors.
func (i BodyLogInput) Validate() error {
	var errs []domain.FieldError

	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if i.Weight != nil && (*i.Weight <= 0 || *i.Weight > 1000) {
		errs = append(errs, domain.FieldError{Field: "weight", Message: "must be between 0 and 1000"})
	}
	for _, f := range []struct {
		name string
		v    *int
	}{
		{"water", i.Water},
		{"caffeine", i.Caffeine},
		{"alcohol", i.Alcohol},
		{"cheat_count", i.CheatCount},
	} {
		if f.v != nil && *f.v < 0 {
			errs = append(errs, domain.FieldError{Field: f.name, Message: "must be non-negative"})
		}
	}
	if i.BurnedCalorie != nil && *i.BurnedCalorie < 0 {
		errs = append(errs, domain.FieldError{Field: "burned_calorie", Message: "must be non-negative"})
	}
	if i.body().IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field is required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i BodyLogInput) body() domain.BodyLog {
	return domain.BodyLog{
		Weight:        i.Weight,
		Water:         i.Water,
		Caffeine:      i.Caffeine,
		Alcohol:       i.Alcohol,
		CheatCount:    i.CheatCount,
		BurnedCalorie: i.BurnedCalorie,
	}
}

// ListRangeInput selects days between From and To inclusive.
type ListRangeInput struct {
	From time.Time
	To   time.Time
}

// Validate checks all fields and collects all errors.
func (i ListRangeInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if len(errs) == 0 {
		from, to := domain.DayOf(i.From), domain.DayOf(i.To)
		switch {
		case to.Before(from):
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		case to.Sub(from) > MaxRangeDays*24*time.Hour:
			errs = append(errs, domain.FieldError{Field: "to", Message: "range exceeds 366 days"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MonthInput names a calendar month.
type MonthInput struct {
	Year  int
	Month int
}

// Validate checks all fields and collects all errors.
func (i MonthInput) Validate() error {
	var errs []domain.FieldError

	if i.Year < 1 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be between 1 and 9999"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// bounds returns the first and last day of the month.
func (i MonthInput) bounds() (first, last time.Time) {
	first = time.Date(i.Year, time.Month(i.Month), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// OpenMonthInput opens every day of a month with the same goal rules as
// OpenDayInput.
type OpenMonthInput struct {
	MonthInput
	TrackID     *uuid.UUID
	GoalCalorie *float64
}

// Validate checks all fields and collects all errors.
func (i OpenMonthInput) Validate() error {
	var errs []domain.FieldError

	var ve *domain.ValidationError
	if errors.As(i.MonthInput.Validate(), &ve) {
		errs = append(errs, ve.Errors...)
	}
	if i.GoalCalorie != nil && *i.GoalCalorie < 0 {
		errs = append(errs, domain.FieldError{Field: "goal_calorie", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
