package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/meal"
)

// dishService is the part of the meal service the dish endpoints need.
type dishService interface {
	RegisterDish(ctx context.Context, input meal.RegisterDishInput) (*domain.Dish, error)
	UpdateDish(ctx context.Context, input meal.UpdateDishInput) (*meal.UpdateResult, error)
	DeleteDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	GetDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	ListDishes(ctx context.Context, date time.Time) ([]domain.Dish, error)
	SetFavorite(ctx context.Context, dishID uuid.UUID, favorite bool) (*domain.Dish, error)
}

// DishHandler serves the dish endpoints.
type DishHandler struct {
	svc dishService
	log *slog.Logger
}

// NewDishHandler creates a DishHandler.
func NewDishHandler(svc dishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{svc: svc, log: logger.With("handler", "dish")}
}

type registerDishRequest struct {
	Date          string     `json:"date"`
	MealTime      string     `json:"mealTime"`
	DayIndex      int        `json:"dayIndex"`
	CatalogKey    *int64     `json:"catalogKey"`
	Name          string     `json:"name"`
	Quantity      int        `json:"quantity"`
	PlannedFoodID *uuid.UUID `json:"plannedFoodId"`
	TrackID       *uuid.UUID `json:"trackId"`
	ImageRef      *string    `json:"imageRef"`
}

type updateDishRequest struct {
	Quantity   int     `json:"quantity"`
	CatalogKey *int64  `json:"catalogKey"`
	Name       *string `json:"name"`
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// Register handles POST /v1/dishes.
func (h *DishHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerDishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dish, err := h.svc.RegisterDish(r.Context(), meal.RegisterDishInput{
		Date:          date,
		MealTime:      domain.MealTime(req.MealTime),
		DayIndex:      req.DayIndex,
		CatalogKey:    req.CatalogKey,
		Name:          req.Name,
		Quantity:      req.Quantity,
		PlannedFoodID: req.PlannedFoodID,
		TrackID:       req.TrackID,
		ImageRef:      req.ImageRef,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDishResponse(dish))
}

// Update handles PATCH /v1/dishes/{id}.
func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateDishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.UpdateDish(r.Context(), meal.UpdateDishInput{
		DishID:     dishID,
		Quantity:   req.Quantity,
		CatalogKey: req.CatalogKey,
		Name:       req.Name,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := updateDishResponse{
		Dish:            toDishResponse(result.Dish),
		Path:            string(result.Path),
		RemovedImageRef: result.RemovedImageRef,
	}
	if result.RemovedDishID != nil {
		s := result.RemovedDishID.String()
		resp.RemovedDishID = &s
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /v1/dishes/{id}. The deleted dish is returned so the
// client can release its image.
func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dish, err := h.svc.DeleteDish(r.Context(), dishID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDishResponse(dish))
}

// Get handles GET /v1/dishes/{id}.
func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dish, err := h.svc.GetDish(r.Context(), dishID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDishResponse(dish))
}

// ListByDay handles GET /v1/days/{date}/dishes.
func (h *DishHandler) ListByDay(w http.ResponseWriter, r *http.Request) {
	date, err := pathDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dishes, err := h.svc.ListDishes(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDishListResponse(dishes))
}

// SetFavorite handles PUT /v1/dishes/{id}/favorite.
func (h *DishHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	dishID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req favoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dish, err := h.svc.SetFavorite(r.Context(), dishID, req.Favorite)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDishResponse(dish))
}
