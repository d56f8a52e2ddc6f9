package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/meal"
)

var _ routineFulfiller = &routineFulfillerMock{}

type routineFulfillerMock struct {
	FulfillRoutineFunc func(ctx context.Context, input meal.FulfillRoutineInput) ([]domain.Dish, error)

	calls struct {
		FulfillRoutine []struct {
			Ctx   context.Context
			Input meal.FulfillRoutineInput
		}
	}
	lockFulfillRoutine sync.RWMutex
}

func (mock *routineFulfillerMock) FulfillRoutine(ctx context.Context, input meal.FulfillRoutineInput) ([]domain.Dish, error) {
	if mock.FulfillRoutineFunc == nil {
		panic("routineFulfillerMock.FulfillRoutineFunc: method is nil but routineFulfiller.FulfillRoutine was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meal.FulfillRoutineInput
	}{Ctx: ctx, Input: input}
	mock.lockFulfillRoutine.Lock()
	mock.calls.FulfillRoutine = append(mock.calls.FulfillRoutine, callInfo)
	mock.lockFulfillRoutine.Unlock()
	return mock.FulfillRoutineFunc(ctx, input)
}

func (mock *routineFulfillerMock) FulfillRoutineCalls() []struct {
	Ctx   context.Context
	Input meal.FulfillRoutineInput
} {
	mock.lockFulfillRoutine.RLock()
	calls := mock.calls.FulfillRoutine
	mock.lockFulfillRoutine.RUnlock()
	return calls
}
