package rest

import (
	"net/http"

	"github.com/heartmarshall/dietrack-backend/internal/transport/middleware"
)

// Mount registers the API routes on mux.
func Mount(mux *http.ServeMux, dishes *DishHandler, days *DayHandler, routines *RoutineHandler) {
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, middleware.Routed(h))
	}

	handle("POST /v1/dishes", dishes.Register)
	handle("GET /v1/dishes/{id}", dishes.Get)
	handle("PATCH /v1/dishes/{id}", dishes.Update)
	handle("DELETE /v1/dishes/{id}", dishes.Delete)
	handle("PUT /v1/dishes/{id}/favorite", dishes.SetFavorite)

	handle("GET /v1/days", days.List)
	handle("GET /v1/days/{date}", days.Get)
	handle("POST /v1/days/{date}", days.Open)
	handle("PATCH /v1/days/{date}/body", days.UpdateBody)
	handle("GET /v1/days/{date}/dishes", dishes.ListByDay)

	handle("POST /v1/months/{year}/{month}", days.OpenMonth)
	handle("GET /v1/months/{year}/{month}/stats", days.MonthStats)

	handle("POST /v1/routines/{id}/fulfill", routines.Fulfill)
	handle("GET /v1/routines/{id}/status", routines.Status)
}
