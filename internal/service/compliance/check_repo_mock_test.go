package compliance

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var _ checkRepo = &checkRepoMock{}

type checkRepoMock struct {
	CreateFoodCheckFunc           func(ctx context.Context, c domain.PlannedFoodCheck) error
	GetFoodCheckByDishFunc        func(ctx context.Context, dishID uuid.UUID) (*domain.PlannedFoodCheck, error)
	GetFoodCheckByPlannedFoodFunc func(ctx context.Context, plannedFoodID uuid.UUID, userID uuid.UUID) (*domain.PlannedFoodCheck, error)
	ListFoodChecksFunc            func(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) ([]domain.PlannedFoodCheck, error)
	CountFoodChecksFunc           func(ctx context.Context, routineID uuid.UUID, userID uuid.UUID) (int, error)
	DeleteFoodCheckFunc           func(ctx context.Context, plannedFoodID uuid.UUID, dishID uuid.UUID, userID uuid.UUID) error
	SetFoodCheckQuantityFunc      func(ctx context.Context, dishID uuid.UUID, quantity int) error
	GetRoutineCheckFunc           func(ctx context.Context, routineID uuid.UUID, userID uuid.UUID) (*domain.RoutineCheck, error)
	SetRoutineCheckFunc           func(ctx context.Context, c domain.RoutineCheck) error

	calls struct {
		CreateFoodCheck []struct {
			Ctx context.Context
			C   domain.PlannedFoodCheck
		}
		GetFoodCheckByDish []struct {
			Ctx    context.Context
			DishID uuid.UUID
		}
		GetFoodCheckByPlannedFood []struct {
			Ctx           context.Context
			PlannedFoodID uuid.UUID
			UserID        uuid.UUID
		}
		ListFoodChecks []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			PlannedFoodIDs []uuid.UUID
		}
		CountFoodChecks []struct {
			Ctx       context.Context
			RoutineID uuid.UUID
			UserID    uuid.UUID
		}
		DeleteFoodCheck []struct {
			Ctx           context.Context
			PlannedFoodID uuid.UUID
			DishID        uuid.UUID
			UserID        uuid.UUID
		}
		SetFoodCheckQuantity []struct {
			Ctx      context.Context
			DishID   uuid.UUID
			Quantity int
		}
		GetRoutineCheck []struct {
			Ctx       context.Context
			RoutineID uuid.UUID
			UserID    uuid.UUID
		}
		SetRoutineCheck []struct {
			Ctx context.Context
			C   domain.RoutineCheck
		}
	}
	lockCreateFoodCheck           sync.RWMutex
	lockGetFoodCheckByDish        sync.RWMutex
	lockGetFoodCheckByPlannedFood sync.RWMutex
	lockListFoodChecks            sync.RWMutex
	lockCountFoodChecks           sync.RWMutex
	lockDeleteFoodCheck           sync.RWMutex
	lockSetFoodCheckQuantity      sync.RWMutex
	lockGetRoutineCheck           sync.RWMutex
	lockSetRoutineCheck           sync.RWMutex
}

func (mock *checkRepoMock) CreateFoodCheck(ctx context.Context, c domain.PlannedFoodCheck) error {
	if mock.CreateFoodCheckFunc == nil {
		panic("checkRepoMock.CreateFoodCheckFunc: method is nil but checkRepo.CreateFoodCheck was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.PlannedFoodCheck
	}{Ctx: ctx, C: c}
	mock.lockCreateFoodCheck.Lock()
	mock.calls.CreateFoodCheck = append(mock.calls.CreateFoodCheck, callInfo)
	mock.lockCreateFoodCheck.Unlock()
	return mock.CreateFoodCheckFunc(ctx, c)
}

func (mock *checkRepoMock) CreateFoodCheckCalls() []struct {
	Ctx context.Context
	C   domain.PlannedFoodCheck
} {
	mock.lockCreateFoodCheck.RLock()
	calls := mock.calls.CreateFoodCheck
	mock.lockCreateFoodCheck.RUnlock()
	return calls
}

func (mock *checkRepoMock) GetFoodCheckByDish(ctx context.Context, dishID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	if mock.GetFoodCheckByDishFunc == nil {
		panic("checkRepoMock.GetFoodCheckByDishFunc: method is nil but checkRepo.GetFoodCheckByDish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DishID uuid.UUID
	}{Ctx: ctx, DishID: dishID}
	mock.lockGetFoodCheckByDish.Lock()
	mock.calls.GetFoodCheckByDish = append(mock.calls.GetFoodCheckByDish, callInfo)
	mock.lockGetFoodCheckByDish.Unlock()
	return mock.GetFoodCheckByDishFunc(ctx, dishID)
}

func (mock *checkRepoMock) GetFoodCheckByDishCalls() []struct {
	Ctx    context.Context
	DishID uuid.UUID
} {
	mock.lockGetFoodCheckByDish.RLock()
	calls := mock.calls.GetFoodCheckByDish
	mock.lockGetFoodCheckByDish.RUnlock()
	return calls
}

func (mock *checkRepoMock) GetFoodCheckByPlannedFood(ctx context.Context, plannedFoodID uuid.UUID, userID uuid.UUID) (*domain.PlannedFoodCheck, error) {
	if mock.GetFoodCheckByPlannedFoodFunc == nil {
		panic("checkRepoMock.GetFoodCheckByPlannedFoodFunc: method is nil but checkRepo.GetFoodCheckByPlannedFood was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PlannedFoodID uuid.UUID
		UserID        uuid.UUID
	}{Ctx: ctx, PlannedFoodID: plannedFoodID, UserID: userID}
	mock.lockGetFoodCheckByPlannedFood.Lock()
	mock.calls.GetFoodCheckByPlannedFood = append(mock.calls.GetFoodCheckByPlannedFood, callInfo)
	mock.lockGetFoodCheckByPlannedFood.Unlock()
	return mock.GetFoodCheckByPlannedFoodFunc(ctx, plannedFoodID, userID)
}

func (mock *checkRepoMock) GetFoodCheckByPlannedFoodCalls() []struct {
	Ctx           context.Context
	PlannedFoodID uuid.UUID
	UserID        uuid.UUID
} {
	mock.lockGetFoodCheckByPlannedFood.RLock()
	calls := mock.calls.GetFoodCheckByPlannedFood
	mock.lockGetFoodCheckByPlannedFood.RUnlock()
	return calls
}

func (mock *checkRepoMock) ListFoodChecks(ctx context.Context, userID uuid.UUID, plannedFoodIDs []uuid.UUID) ([]domain.PlannedFoodCheck, error) {
	if mock.ListFoodChecksFunc == nil {
		panic("checkRepoMock.ListFoodChecksFunc: method is nil but checkRepo.ListFoodChecks was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		PlannedFoodIDs []uuid.UUID
	}{Ctx: ctx, UserID: userID, PlannedFoodIDs: plannedFoodIDs}
	mock.lockListFoodChecks.Lock()
	mock.calls.ListFoodChecks = append(mock.calls.ListFoodChecks, callInfo)
	mock.lockListFoodChecks.Unlock()
	return mock.ListFoodChecksFunc(ctx, userID, plannedFoodIDs)
}

func (mock *checkRepoMock) ListFoodChecksCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	PlannedFoodIDs []uuid.UUID
} {
	mock.lockListFoodChecks.RLock()
	calls := mock.calls.ListFoodChecks
	mock.lockListFoodChecks.RUnlock()
	return calls
}

func (mock *checkRepoMock) CountFoodChecks(ctx context.Context, routineID uuid.UUID, userID uuid.UUID) (int, error) {
	if mock.CountFoodChecksFunc == nil {
		panic("checkRepoMock.CountFoodChecksFunc: method is nil but checkRepo.CountFoodChecks was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RoutineID uuid.UUID
		UserID    uuid.UUID
	}{Ctx: ctx, RoutineID: routineID, UserID: userID}
	mock.lockCountFoodChecks.Lock()
	mock.calls.CountFoodChecks = append(mock.calls.CountFoodChecks, callInfo)
	mock.lockCountFoodChecks.Unlock()
	return mock.CountFoodChecksFunc(ctx, routineID, userID)
}

func (mock *checkRepoMock) CountFoodChecksCalls() []struct {
	Ctx       context.Context
	RoutineID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockCountFoodChecks.RLock()
	calls := mock.calls.CountFoodChecks
	mock.lockCountFoodChecks.RUnlock()
	return calls
}

func (mock *checkRepoMock) DeleteFoodCheck(ctx context.Context, plannedFoodID uuid.UUID, dishID uuid.UUID, userID uuid.UUID) error {
	if mock.DeleteFoodCheckFunc == nil {
		panic("checkRepoMock.DeleteFoodCheckFunc: method is nil but checkRepo.DeleteFoodCheck was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		PlannedFoodID uuid.UUID
		DishID        uuid.UUID
		UserID        uuid.UUID
	}{Ctx: ctx, PlannedFoodID: plannedFoodID, DishID: dishID, UserID: userID}
	mock.lockDeleteFoodCheck.Lock()
	mock.calls.DeleteFoodCheck = append(mock.calls.DeleteFoodCheck, callInfo)
	mock.lockDeleteFoodCheck.Unlock()
	return mock.DeleteFoodCheckFunc(ctx, plannedFoodID, dishID, userID)
}

func (mock *checkRepoMock) DeleteFoodCheckCalls() []struct {
	Ctx           context.Context
	PlannedFoodID uuid.UUID
	DishID        uuid.UUID
	UserID        uuid.UUID
} {
	mock.lockDeleteFoodCheck.RLock()
	calls := mock.calls.DeleteFoodCheck
	mock.lockDeleteFoodCheck.RUnlock()
	return calls
}

func (mock *checkRepoMock) SetFoodCheckQuantity(ctx context.Context, dishID uuid.UUID, quantity int) error {
	if mock.SetFoodCheckQuantityFunc == nil {
		panic("checkRepoMock.SetFoodCheckQuantityFunc: method is nil but checkRepo.SetFoodCheckQuantity was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DishID   uuid.UUID
		Quantity int
	}{Ctx: ctx, DishID: dishID, Quantity: quantity}
	mock.lockSetFoodCheckQuantity.Lock()
	mock.calls.SetFoodCheckQuantity = append(mock.calls.SetFoodCheckQuantity, callInfo)
	mock.lockSetFoodCheckQuantity.Unlock()
	return mock.SetFoodCheckQuantityFunc(ctx, dishID, quantity)
}

func (mock *checkRepoMock) SetFoodCheckQuantityCalls() []struct {
	Ctx      context.Context
	DishID   uuid.UUID
	Quantity int
} {
	mock.lockSetFoodCheckQuantity.RLock()
	calls := mock.calls.SetFoodCheckQuantity
	mock.lockSetFoodCheckQuantity.RUnlock()
	return calls
}

func (mock *checkRepoMock) GetRoutineCheck(ctx context.Context, routineID uuid.UUID, userID uuid.UUID) (*domain.RoutineCheck, error) {
	if mock.GetRoutineCheckFunc == nil {
		panic("checkRepoMock.GetRoutineCheckFunc: method is nil but checkRepo.GetRoutineCheck was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		RoutineID uuid.UUID
		UserID    uuid.UUID
	}{Ctx: ctx, RoutineID: routineID, UserID: userID}
	mock.lockGetRoutineCheck.Lock()
	mock.calls.GetRoutineCheck = append(mock.calls.GetRoutineCheck, callInfo)
	mock.lockGetRoutineCheck.Unlock()
	return mock.GetRoutineCheckFunc(ctx, routineID, userID)
}

func (mock *checkRepoMock) GetRoutineCheckCalls() []struct {
	Ctx       context.Context
	RoutineID uuid.UUID
	UserID    uuid.UUID
} {
	mock.lockGetRoutineCheck.RLock()
	calls := mock.calls.GetRoutineCheck
	mock.lockGetRoutineCheck.RUnlock()
	return calls
}

func (mock *checkRepoMock) SetRoutineCheck(ctx context.Context, c domain.RoutineCheck) error {
	if mock.SetRoutineCheckFunc == nil {
		panic("checkRepoMock.SetRoutineCheckFunc: method is nil but checkRepo.SetRoutineCheck was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.RoutineCheck
	}{Ctx: ctx, C: c}
	mock.lockSetRoutineCheck.Lock()
	mock.calls.SetRoutineCheck = append(mock.calls.SetRoutineCheck, callInfo)
	mock.lockSetRoutineCheck.Unlock()
	return mock.SetRoutineCheckFunc(ctx, c)
}

func (mock *checkRepoMock) SetRoutineCheckCalls() []struct {
	Ctx context.Context
	C   domain.RoutineCheck
} {
	mock.lockSetRoutineCheck.RLock()
	calls := mock.calls.SetRoutineCheck
	mock.lockSetRoutineCheck.RUnlock()
	return calls
}
