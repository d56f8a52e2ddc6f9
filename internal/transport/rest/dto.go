package rest

import (
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

type nutrientsResponse struct {
	Carb    float64 `json:"carb"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
	Calorie float64 `json:"calorie"`
}

type dishResponse struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	MealTime      string            `json:"mealTime"`
	DayIndex      int               `json:"dayIndex"`
	Name          string            `json:"name"`
	Quantity      int               `json:"quantity"`
	Nutrients     nutrientsResponse `json:"nutrients"`
	Size          float64           `json:"size"`
	Unit          string            `json:"unit"`
	CatalogKey    *int64            `json:"catalogKey,omitempty"`
	PlannedFoodID *string           `json:"plannedFoodId,omitempty"`
	TrackID       *string           `json:"trackId,omitempty"`
	ImageRef      *string           `json:"imageRef,omitempty"`
	Favorite      bool              `json:"favorite"`
	GoalMet       bool              `json:"goalMet"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type dishListResponse struct {
	Dishes []dishResponse `json:"dishes"`
}

type updateDishResponse struct {
	Dish            dishResponse `json:"dish"`
	Path            string       `json:"path"`
	RemovedDishID   *string      `json:"removedDishId,omitempty"`
	RemovedImageRef *string      `json:"removedImageRef,omitempty"`
}

type dayResponse struct {
	Date             string            `json:"date"`
	TrackID          *string           `json:"trackId,omitempty"`
	Consumed         nutrientsResponse `json:"consumed"`
	GoalCalorie      float64           `json:"goalCalorie"`
	BurnedCalorie    float64           `json:"burnedCalorie"`
	RemainingCalorie float64           `json:"remainingCalorie"`
	Water            int               `json:"water"`
	Caffeine         int               `json:"caffeine"`
	Alcohol          int               `json:"alcohol"`
	CheatCount       int               `json:"cheatCount"`
	Weight           *float64          `json:"weight,omitempty"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

type dayListResponse struct {
	Days []dayResponse `json:"days"`
}

type openMonthResponse struct {
	Opened int           `json:"opened"`
	Days   []dayResponse `json:"days"`
}

type monthStatsResponse struct {
	Year           int     `json:"year"`
	Month          int     `json:"month"`
	DaysInMonth    int     `json:"daysInMonth"`
	OpenedDays     int     `json:"openedDays"`
	RecordedDays   int     `json:"recordedDays"`
	AverageCalorie float64 `json:"averageCalorie"`
}

type routineStatusResponse struct {
	RoutineID      string `json:"routineId"`
	IsComplete     bool   `json:"isComplete"`
	PlannedCount   int    `json:"plannedCount"`
	FulfilledCount int    `json:"fulfilledCount"`
}

func toNutrientsResponse(n domain.Nutrients) nutrientsResponse {
	return nutrientsResponse{Carb: n.Carb, Protein: n.Protein, Fat: n.Fat, Calorie: n.Calorie}
}

func toDishResponse(d *domain.Dish) dishResponse {
	resp := dishResponse{
		ID:         d.ID.String(),
		Date:       d.Date.Format(dateLayout),
		MealTime:   d.MealTime.String(),
		DayIndex:   d.DayIndex,
		Name:       d.Name,
		Quantity:   d.Quantity,
		Nutrients:  toNutrientsResponse(d.Portion.Nutrients),
		Size:       d.Portion.Size,
		Unit:       d.Portion.Unit,
		CatalogKey: d.CatalogKey,
		ImageRef:   d.ImageRef,
		Favorite:   d.Favorite,
		GoalMet:    d.GoalMet,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.PlannedFoodID != nil {
		s := d.PlannedFoodID.String()
		resp.PlannedFoodID = &s
	}
	if d.TrackID != nil {
		s := d.TrackID.String()
		resp.TrackID = &s
	}
	return resp
}

func toDishListResponse(dishes []domain.Dish) dishListResponse {
	resp := dishListResponse{Dishes: make([]dishResponse, 0, len(dishes))}
	for i := range dishes {
		resp.Dishes = append(resp.Dishes, toDishResponse(&dishes[i]))
	}
	return resp
}

func toDayResponse(l *domain.NutrientLedger) dayResponse {
	resp := dayResponse{
		Date:             l.Date.Format(dateLayout),
		Consumed:         toNutrientsResponse(l.Consumed),
		GoalCalorie:      l.GoalCalorie,
		BurnedCalorie:    l.BurnedCalorie,
		RemainingCalorie: l.RemainingCalorie(),
		Water:            l.Water,
		Caffeine:         l.Caffeine,
		Alcohol:          l.Alcohol,
		CheatCount:       l.CheatCount,
		Weight:           l.Weight,
		UpdatedAt:        l.UpdatedAt,
	}
	if l.TrackID != nil {
		s := l.TrackID.String()
		resp.TrackID = &s
	}
	return resp
}
