package audit

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var _ driftFinder = &driftFinderMock{}

type driftFinderMock struct {
	FindDriftFunc func(ctx context.Context, from time.Time, to time.Time, tolerance float64) ([]domain.LedgerDrift, error)

	calls struct {
		FindDrift []struct {
			Ctx       context.Context
			From      time.Time
			To        time.Time
			Tolerance float64
		}
	}
	lockFindDrift sync.RWMutex
}

func (mock *driftFinderMock) FindDrift(ctx context.Context, from time.Time, to time.Time, tolerance float64) ([]domain.LedgerDrift, error) {
	if mock.FindDriftFunc == nil {
		panic("driftFinderMock.FindDriftFunc: method is nil but driftFinder.FindDrift was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		From      time.Time
		To        time.Time
		Tolerance float64
	}{Ctx: ctx, From: from, To: to, Tolerance: tolerance}
	mock.lockFindDrift.Lock()
	mock.calls.FindDrift = append(mock.calls.FindDrift, callInfo)
	mock.lockFindDrift.Unlock()
	return mock.FindDriftFunc(ctx, from, to, tolerance)
}

func (mock *driftFinderMock) FindDriftCalls() []struct {
	Ctx       context.Context
	From      time.Time
	To        time.Time
	Tolerance float64
} {
	mock.lockFindDrift.RLock()
	calls := mock.calls.FindDrift
	mock.lockFindDrift.RUnlock()
	return calls
}
