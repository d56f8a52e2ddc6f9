package domain

import (
	"time"

	"github.com/google/uuid"
)

// LedgerKey identifies one user's ledger for one calendar day.
type LedgerKey struct {
	UserID uuid.UUID
	Date   time.Time
}

// NewLedgerKey builds a key with the date truncated to a UTC calendar day.
func NewLedgerKey(userID uuid.UUID, date time.Time) LedgerKey {
	return LedgerKey{UserID: userID, Date: DayOf(date)}
}

// DayOf returns the UTC midnight of the calendar day t falls on.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NutrientLedger is the per-user, per-day running total of consumed
// nutrients plus the body log the user edits by hand.
//
// Consumed always equals the sum of the nutrients of every dish recorded
// under the same key. It is maintained incrementally and never recomputed.
type NutrientLedger struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          time.Time
	TrackID       *uuid.UUID
	Consumed      Nutrients
	GoalCalorie   float64
	BurnedCalorie float64
	Water         int
	Caffeine      int
	Alcohol       int
	CheatCount    int
	Weight        *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Key returns the ledger's identifying key.
func (l *NutrientLedger) Key() LedgerKey {
	return LedgerKey{UserID: l.UserID, Date: l.Date}
}

// RemainingCalorie is the goal minus consumed plus burned calories.
func (l *NutrientLedger) RemainingCalorie() float64 {
	return scaleValue(l.GoalCalorie-l.Consumed.Calorie+l.BurnedCalorie, 1, 1)
}

// LedgerDrift reports a ledger whose totals disagree with the sum of its dishes.
type LedgerDrift struct {
	Key      LedgerKey
	Ledger   Nutrients
	Recorded Nutrients
}

// Diff is the ledger total minus the recorded dish total.
func (d LedgerDrift) Diff() Nutrients {
	return d.Ledger.Sub(d.Recorded)
}

// BodyLog is a partial update of the user-editable ledger fields. Nil
// fields are left unchanged.
type BodyLog struct {
	Weight        *float64
	Water         *int
	Caffeine      *int
	Alcohol       *int
	CheatCount    *int
	BurnedCalorie *float64
}

// IsEmpty reports whether no field is set.
func (b BodyLog) IsEmpty() bool {
	return b.Weight == nil && b.Water == nil && b.Caffeine == nil &&
		b.Alcohol == nil && b.CheatCount == nil && b.BurnedCalorie == nil
}
