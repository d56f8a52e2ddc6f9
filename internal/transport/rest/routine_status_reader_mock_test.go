package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var _ routineStatusReader = &routineStatusReaderMock{}

type routineStatusReaderMock struct {
	RoutineStatusFunc func(ctx context.Context, routineID uuid.UUID) (*domain.RoutineStatus, error)

	calls struct {
		RoutineStatus []struct {
			Ctx       context.Context
			RoutineID uuid.UUID
		}
	}
	lockRoutineStatus sync.RWMutex
}

func (mock *routineStatusReaderMock) RoutineStatus(ctx context.Context, routineID uuid.UUID) (*domain.RoutineStatus, error) {
	if mock.RoutineStatusFunc == nil {
		panic("routineStatusReaderMock.RoutineStatusFunc: method is nil but routineStatusReader.RoutineStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RoutineID uuid.UUID
	}{Ctx: ctx, RoutineID: routineID}
	mock.lockRoutineStatus.Lock()
	mock.calls.RoutineStatus = append(mock.calls.RoutineStatus, callInfo)
	mock.lockRoutineStatus.Unlock()
	return mock.RoutineStatusFunc(ctx, routineID)
}

func (mock *routineStatusReaderMock) RoutineStatusCalls() []struct {
	Ctx       context.Context
	RoutineID uuid.UUID
} {
	mock.lockRoutineStatus.RLock()
	calls := mock.calls.RoutineStatus
	mock.lockRoutineStatus.RUnlock()
	return calls
}
