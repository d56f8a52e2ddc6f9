package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/ledger"
)

type dayService interface {
	GetDay(ctx context.Context, date time.Time) (*domain.NutrientLedger, error)
	OpenDay(ctx context.Context, input ledger.OpenDayInput) (*domain.NutrientLedger, bool, error)
	UpdateBodyLog(ctx context.Context, input ledger.BodyLogInput) (*domain.NutrientLedger, error)
	ListRange(ctx context.Context, input ledger.ListRangeInput) ([]domain.NutrientLedger, error)
	OpenMonth(ctx context.Context, input ledger.OpenMonthInput) ([]domain.NutrientLedger, int, error)
	MonthStats(ctx context.Context, input ledger.MonthInput) (*ledger.MonthStats, error)
}

// DayHandler serves the nutrient ledger endpoints.
type DayHandler struct {
	svc dayService
	log *slog.Logger
}

// NewDayHandler creates a DayHandler.
func NewDayHandler(svc dayService, logger *slog.Logger) *DayHandler {
	return &DayHandler{svc: svc, log: logger.With("handler", "day")}
}

type openDayRequest struct {
	TrackID     *uuid.UUID `json:"trackId"`
	GoalCalorie *float64   `json:"goalCalorie"`
}

type bodyLogRequest struct {
	Weight        *float64 `json:"weight"`
	Water         *int     `json:"water"`
	Caffeine      *int     `json:"caffeine"`
	Alcohol       *int     `json:"alcohol"`
	CheatCount    *int     `json:"cheatCount"`
	BurnedCalorie *float64 `json:"burnedCalorie"`
}

// Get handles GET /v1/days/{date}.
func (h *DayHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := pathDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	day, err := h.svc.GetDay(r.Context(), date)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(day))
}

// Open handles POST /v1/days/{date}. It answers 201 when the day was
// created and 200 when it already existed.
func (h *DayHandler) Open(w http.ResponseWriter, r *http.Request) {
	date, err := pathDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req openDayRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		handleError(h.log, w, r, err)
		return
	}

	day, created, err := h.svc.OpenDay(r.Context(), ledger.OpenDayInput{
		Date:        date,
		TrackID:     req.TrackID,
		GoalCalorie: req.GoalCalorie,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, toDayResponse(day))
}

// UpdateBody handles PATCH /v1/days/{date}/body.
func (h *DayHandler) UpdateBody(w http.ResponseWriter, r *http.Request) {
	date, err := pathDate(r, "date")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req bodyLogRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	day, err := h.svc.UpdateBodyLog(r.Context(), ledger.BodyLogInput{
		Date:          date,
		Weight:        req.Weight,
		Water:         req.Water,
		Caffeine:      req.Caffeine,
		Alcohol:       req.Alcohol,
		CheatCount:    req.CheatCount,
		BurnedCalorie: req.BurnedCalorie,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(day))
}

// List handles GET /v1/days?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *DayHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseDate("from", q.Get("from"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	to, err := parseDate("to", q.Get("to"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	days, err := h.svc.ListRange(r.Context(), ledger.ListRangeInput{From: from, To: to})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := dayListResponse{Days: make([]dayResponse, 0, len(days))}
	for i := range days {
		resp.Days = append(resp.Days, toDayResponse(&days[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// OpenMonth handles POST /v1/months/{year}/{month}. It answers 201 when any
// day was opened and 200 when the whole month already existed.
func (h *DayHandler) OpenMonth(w http.ResponseWriter, r *http.Request) {
	month, err := pathMonth(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req openDayRequest
	if err := decodeOptionalJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		handleError(h.log, w, r, err)
		return
	}

	days, opened, err := h.svc.OpenMonth(r.Context(), ledger.OpenMonthInput{
		MonthInput:  month,
		TrackID:     req.TrackID,
		GoalCalorie: req.GoalCalorie,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := openMonthResponse{Opened: opened, Days: make([]dayResponse, 0, len(days))}
	for i := range days {
		resp.Days = append(resp.Days, toDayResponse(&days[i]))
	}
	status := http.StatusOK
	if opened > 0 {
		status = http.StatusCreated
	}
	writeJSON(w, status, resp)
}

// MonthStats handles GET /v1/months/{year}/{month}/stats.
func (h *DayHandler) MonthStats(w http.ResponseWriter, r *http.Request) {
	month, err := pathMonth(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.svc.MonthStats(r.Context(), month)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, monthStatsResponse{
		Year:           stats.Year,
		Month:          stats.Month,
		DaysInMonth:    stats.DaysInMonth,
		OpenedDays:     stats.OpenedDays,
		RecordedDays:   stats.RecordedDays,
		AverageCalorie: stats.AverageCalorie,
	})
}

func pathMonth(r *http.Request) (ledger.MonthInput, error) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		return ledger.MonthInput{}, domain.NewValidationError("year", "must be a number")
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil {
		return ledger.MonthInput{}, domain.NewValidationError("month", "must be a number")
	}
	return ledger.MonthInput{Year: year, Month: month}, nil
}
