package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/meal"
)

type routineFulfiller interface {
	FulfillRoutine(ctx context.Context, input meal.FulfillRoutineInput) ([]domain.Dish, error)
}

type routineStatusReader interface {
	RoutineStatus(ctx context.Context, routineID uuid.UUID) (*domain.RoutineStatus, error)
}

// RoutineHandler serves the routine endpoints.
type RoutineHandler struct {
	meals  routineFulfiller
	status routineStatusReader
	log    *slog.Logger
}

// NewRoutineHandler creates a RoutineHandler.
func NewRoutineHandler(meals routineFulfiller, status routineStatusReader, logger *slog.Logger) *RoutineHandler {
	return &RoutineHandler{meals: meals, status: status, log: logger.With("handler", "routine")}
}

type fulfillRoutineRequest struct {
	Date string `json:"date"`
}

// Fulfill handles POST /v1/routines/{id}/fulfill.
func (h *RoutineHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	routineID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req fulfillRoutineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	dishes, err := h.meals.FulfillRoutine(r.Context(), meal.FulfillRoutineInput{
		RoutineID: routineID,
		Date:      date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDishListResponse(dishes))
}

// Status handles GET /v1/routines/{id}/status.
func (h *RoutineHandler) Status(w http.ResponseWriter, r *http.Request) {
	routineID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	st, err := h.status.RoutineStatus(r.Context(), routineID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, routineStatusResponse{
		RoutineID:      st.RoutineID.String(),
		IsComplete:     st.IsComplete,
		PlannedCount:   st.PlannedCount,
		FulfilledCount: st.FulfilledCount,
	})
}
