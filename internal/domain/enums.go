package domain

// MealTime is the slot of the day a dish or routine belongs to.
type MealTime string

const (
	MealTimeBreakfast MealTime = "BREAKFAST"
	MealTimeBrunch    MealTime = "BRUNCH"
	MealTimeLunch     MealTime = "LUNCH"
	MealTimeLinner    MealTime = "LINNER"
	MealTimeDinner    MealTime = "DINNER"
	MealTimeSnack     MealTime = "SNACK"
)

func (m MealTime) String() string { return string(m) }

func (m MealTime) IsValid() bool {
	switch m {
	case MealTimeBreakfast, MealTimeBrunch, MealTimeLunch, MealTimeLinner, MealTimeDinner, MealTimeSnack:
		return true
	}
	return false
}
