package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/meal"
)

var _ dishService = &dishServiceMock{}

type dishServiceMock struct {
	DeleteDishFunc   func(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	GetDishFunc      func(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	ListDishesFunc   func(ctx context.Context, date time.Time) ([]domain.Dish, error)
	RegisterDishFunc func(ctx context.Context, input meal.RegisterDishInput) (*domain.Dish, error)
	SetFavoriteFunc  func(ctx context.Context, dishID uuid.UUID, favorite bool) (*domain.Dish, error)
	UpdateDishFunc   func(ctx context.Context, input meal.UpdateDishInput) (*meal.UpdateResult, error)

	calls struct {
		DeleteDish []struct {
			Ctx    context.Context
			DishID uuid.UUID
		}
		GetDish []struct {
			Ctx    context.Context
			DishID uuid.UUID
		}
		ListDishes []struct {
			Ctx  context.Context
			Date time.Time
		}
		RegisterDish []struct {
			Ctx   context.Context
			Input meal.RegisterDishInput
		}
		SetFavorite []struct {
			Ctx      context.Context
			DishID   uuid.UUID
			Favorite bool
		}
		UpdateDish []struct {
			Ctx   context.Context
			Input meal.UpdateDishInput
		}
	}
	lockDeleteDish   sync.RWMutex
	lockGetDish      sync.RWMutex
	lockListDishes   sync.RWMutex
	lockRegisterDish sync.RWMutex
	lockSetFavorite  sync.RWMutex
	lockUpdateDish   sync.RWMutex
}

func (mock *dishServiceMock) DeleteDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	if mock.DeleteDishFunc == nil {
		panic("dishServiceMock.DeleteDishFunc: method is nil but dishService.DeleteDish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DishID uuid.UUID
	}{Ctx: ctx, DishID: dishID}
	mock.lockDeleteDish.Lock()
	mock.calls.DeleteDish = append(mock.calls.DeleteDish, callInfo)
	mock.lockDeleteDish.Unlock()
	return mock.DeleteDishFunc(ctx, dishID)
}

func (mock *dishServiceMock) DeleteDishCalls() []struct {
	Ctx    context.Context
	DishID uuid.UUID
} {
	mock.lockDeleteDish.RLock()
	calls := mock.calls.DeleteDish
	mock.lockDeleteDish.RUnlock()
	return calls
}

func (mock *dishServiceMock) GetDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error) {
	if mock.GetDishFunc == nil {
		panic("dishServiceMock.GetDishFunc: method is nil but dishService.GetDish was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DishID uuid.UUID
	}{Ctx: ctx, DishID: dishID}
	mock.lockGetDish.Lock()
	mock.calls.GetDish = append(mock.calls.GetDish, callInfo)
	mock.lockGetDish.Unlock()
	return mock.GetDishFunc(ctx, dishID)
}

func (mock *dishServiceMock) GetDishCalls() []struct {
	Ctx    context.Context
	DishID uuid.UUID
} {
	mock.lockGetDish.RLock()
	calls := mock.calls.GetDish
	mock.lockGetDish.RUnlock()
	return calls
}

func (mock *dishServiceMock) ListDishes(ctx context.Context, date time.Time) ([]domain.Dish, error) {
	if mock.ListDishesFunc == nil {
		panic("dishServiceMock.ListDishesFunc: method is nil but dishService.ListDishes was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{Ctx: ctx, Date: date}
	mock.lockListDishes.Lock()
	mock.calls.ListDishes = append(mock.calls.ListDishes, callInfo)
	mock.lockListDishes.Unlock()
	return mock.ListDishesFunc(ctx, date)
}

func (mock *dishServiceMock) ListDishesCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockListDishes.RLock()
	calls := mock.calls.ListDishes
	mock.lockListDishes.RUnlock()
	return calls
}

func (mock *dishServiceMock) RegisterDish(ctx context.Context, input meal.RegisterDishInput) (*domain.Dish, error) {
	if mock.RegisterDishFunc == nil {
		panic("dishServiceMock.RegisterDishFunc: method is nil but dishService.RegisterDish was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meal.RegisterDishInput
	}{Ctx: ctx, Input: input}
	mock.lockRegisterDish.Lock()
	mock.calls.RegisterDish = append(mock.calls.RegisterDish, callInfo)
	mock.lockRegisterDish.Unlock()
	return mock.RegisterDishFunc(ctx, input)
}

func (mock *dishServiceMock) RegisterDishCalls() []struct {
	Ctx   context.Context
	Input meal.RegisterDishInput
} {
	mock.lockRegisterDish.RLock()
	calls := mock.calls.RegisterDish
	mock.lockRegisterDish.RUnlock()
	return calls
}

func (mock *dishServiceMock) SetFavorite(ctx context.Context, dishID uuid.UUID, favorite bool) (*domain.Dish, error) {
	if mock.SetFavoriteFunc == nil {
		panic("dishServiceMock.SetFavoriteFunc: method is nil but dishService.SetFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		DishID   uuid.UUID
		Favorite bool
	}{Ctx: ctx, DishID: dishID, Favorite: favorite}
	mock.lockSetFavorite.Lock()
	mock.calls.SetFavorite = append(mock.calls.SetFavorite, callInfo)
	mock.lockSetFavorite.Unlock()
	return mock.SetFavoriteFunc(ctx, dishID, favorite)
}

func (mock *dishServiceMock) SetFavoriteCalls() []struct {
	Ctx      context.Context
	DishID   uuid.UUID
	Favorite bool
} {
	mock.lockSetFavorite.RLock()
	calls := mock.calls.SetFavorite
	mock.lockSetFavorite.RUnlock()
	return calls
}

func (mock *dishServiceMock) UpdateDish(ctx context.Context, input meal.UpdateDishInput) (*meal.UpdateResult, error) {
	if mock.UpdateDishFunc == nil {
		panic("dishServiceMock.UpdateDishFunc: method is nil but dishService.UpdateDish was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meal.UpdateDishInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateDish.Lock()
	mock.calls.UpdateDish = append(mock.calls.UpdateDish, callInfo)
	mock.lockUpdateDish.Unlock()
	return mock.UpdateDishFunc(ctx, input)
}

func (mock *dishServiceMock) UpdateDishCalls() []struct {
	Ctx   context.Context
	Input meal.UpdateDishInput
} {
	mock.lockUpdateDish.RLock()
	calls := mock.calls.UpdateDish
	mock.lockUpdateDish.RUnlock()
	return calls
}
