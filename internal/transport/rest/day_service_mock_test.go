package rest

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/dietrack-backend/internal/domain"
	"github.com/heartmarshall/dietrack-backend/internal/service/ledger"
)

var _ dayService = &dayServiceMock{}

type dayServiceMock struct {
	GetDayFunc        func(ctx context.Context, date time.Time) (*domain.NutrientLedger, error)
	ListRangeFunc     func(ctx context.Context, input ledger.ListRangeInput) ([]domain.NutrientLedger, error)
	MonthStatsFunc    func(ctx context.Context, input ledger.MonthInput) (*ledger.MonthStats, error)
	OpenDayFunc       func(ctx context.Context, input ledger.OpenDayInput) (*domain.NutrientLedger, bool, error)
	OpenMonthFunc     func(ctx context.Context, input ledger.OpenMonthInput) ([]domain.NutrientLedger, int, error)
	UpdateBodyLogFunc func(ctx context.Context, input ledger.BodyLogInput) (*domain.NutrientLedger, error)

	calls struct {
		GetDay []struct {
			Ctx  context.Context
			Date time.Time
		}
		ListRange []struct {
			Ctx   context.Context
			Input ledger.ListRangeInput
		}
		MonthStats []struct {
			Ctx   context.Context
			Input ledger.MonthInput
		}
		OpenDay []struct {
			Ctx   context.Context
			Input ledger.OpenDayInput
		}
		OpenMonth []struct {
			Ctx   context.Context
			Input ledger.OpenMonthInput
		}
		UpdateBodyLog []struct {
			Ctx   context.Context
			Input ledger.BodyLogInput
		}
	}
	lockGetDay        sync.RWMutex
	lockListRange     sync.RWMutex
	lockMonthStats    sync.RWMutex
	lockOpenDay       sync.RWMutex
	lockOpenMonth     sync.RWMutex
	lockUpdateBodyLog sync.RWMutex
}

func (mock *dayServiceMock) GetDay(ctx context.Context, date time.Time) (*domain.NutrientLedger, error) {
	if mock.GetDayFunc == nil {
		panic("dayServiceMock.GetDayFunc: method is nil but dayService.GetDay was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
	}{Ctx: ctx, Date: date}
	mock.lockGetDay.Lock()
	mock.calls.GetDay = append(mock.calls.GetDay, callInfo)
	mock.lockGetDay.Unlock()
	return mock.GetDayFunc(ctx, date)
}

func (mock *dayServiceMock) GetDayCalls() []struct {
	Ctx  context.Context
	Date time.Time
} {
	mock.lockGetDay.RLock()
	calls := mock.calls.GetDay
	mock.lockGetDay.RUnlock()
	return calls
}

func (mock *dayServiceMock) ListRange(ctx context.Context, input ledger.ListRangeInput) ([]domain.NutrientLedger, error) {
	if mock.ListRangeFunc == nil {
		panic("dayServiceMock.ListRangeFunc: method is nil but dayService.ListRange was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.ListRangeInput
	}{Ctx: ctx, Input: input}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, input)
}

func (mock *dayServiceMock) ListRangeCalls() []struct {
	Ctx   context.Context
	Input ledger.ListRangeInput
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *dayServiceMock) MonthStats(ctx context.Context, input ledger.MonthInput) (*ledger.MonthStats, error) {
	if mock.MonthStatsFunc == nil {
		panic("dayServiceMock.MonthStatsFunc: method is nil but dayService.MonthStats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.MonthInput
	}{Ctx: ctx, Input: input}
	mock.lockMonthStats.Lock()
	mock.calls.MonthStats = append(mock.calls.MonthStats, callInfo)
	mock.lockMonthStats.Unlock()
	return mock.MonthStatsFunc(ctx, input)
}

func (mock *dayServiceMock) MonthStatsCalls() []struct {
	Ctx   context.Context
	Input ledger.MonthInput
} {
	mock.lockMonthStats.RLock()
	calls := mock.calls.MonthStats
	mock.lockMonthStats.RUnlock()
	return calls
}

func (mock *dayServiceMock) OpenDay(ctx context.Context, input ledger.OpenDayInput) (*domain.NutrientLedger, bool, error) {
	if mock.OpenDayFunc == nil {
		panic("dayServiceMock.OpenDayFunc: method is nil but dayService.OpenDay was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.OpenDayInput
	}{Ctx: ctx, Input: input}
	mock.lockOpenDay.Lock()
	mock.calls.OpenDay = append(mock.calls.OpenDay, callInfo)
	mock.lockOpenDay.Unlock()
	return mock.OpenDayFunc(ctx, input)
}

func (mock *dayServiceMock) OpenDayCalls() []struct {
	Ctx   context.Context
	Input ledger.OpenDayInput
} {
	mock.lockOpenDay.RLock()
	calls := mock.calls.OpenDay
	mock.lockOpenDay.RUnlock()
	return calls
}

func (mock *dayServiceMock) OpenMonth(ctx context.Context, input ledger.OpenMonthInput) ([]domain.NutrientLedger, int, error) {
	if mock.OpenMonthFunc == nil {
		panic("dayServiceMock.OpenMonthFunc: method is nil but dayService.OpenMonth was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.OpenMonthInput
	}{Ctx: ctx, Input: input}
	mock.lockOpenMonth.Lock()
	mock.calls.OpenMonth = append(mock.calls.OpenMonth, callInfo)
	mock.lockOpenMonth.Unlock()
	return mock.OpenMonthFunc(ctx, input)
}

func (mock *dayServiceMock) OpenMonthCalls() []struct {
	Ctx   context.Context
	Input ledger.OpenMonthInput
} {
	mock.lockOpenMonth.RLock()
	calls := mock.calls.OpenMonth
	mock.lockOpenMonth.RUnlock()
	return calls
}

func (mock *dayServiceMock) UpdateBodyLog(ctx context.Context, input ledger.BodyLogInput) (*domain.NutrientLedger, error) {
	if mock.UpdateBodyLogFunc == nil {
		panic("dayServiceMock.UpdateBodyLogFunc: method is nil but dayService.UpdateBodyLog was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ledger.BodyLogInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateBodyLog.Lock()
	mock.calls.UpdateBodyLog = append(mock.calls.UpdateBodyLog, callInfo)
	mock.lockUpdateBodyLog.Unlock()
	return mock.UpdateBodyLogFunc(ctx, input)
}

func (mock *dayServiceMock) UpdateBodyLogCalls() []struct {
	Ctx   context.Context
	Input ledger.BodyLogInput
} {
	mock.lockUpdateBodyLog.RLock()
	calls := mock.calls.UpdateBodyLog
	mock.lockUpdateBodyLog.RUnlock()
	return calls
}
