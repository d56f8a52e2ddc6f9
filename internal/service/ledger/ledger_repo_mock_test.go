package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	GetByKeyFunc   func(ctx context.Context, key domain.LedgerKey) (*domain.NutrientLedger, error)
	ListRangeFunc  func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.NutrientLedger, error)
	OpenFunc       func(ctx context.Context, l *domain.NutrientLedger) (*domain.NutrientLedger, bool, error)
	UpdateBodyFunc func(ctx context.Context, key domain.LedgerKey, body domain.BodyLog) (*domain.NutrientLedger, error)

	calls struct {
		GetByKey []struct {
			Ctx context.Context
			Key domain.LedgerKey
		}
		ListRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		Open []struct {
			Ctx context.Context
			L   *domain.NutrientLedger
		}
		UpdateBody []struct {
			Ctx  context.Context
			Key  domain.LedgerKey
			Body domain.BodyLog
		}
	}
	lockGetByKey   sync.RWMutex
	lockListRange  sync.RWMutex
	lockOpen       sync.RWMutex
	lockUpdateBody sync.RWMutex
}

func (mock *ledgerRepoMock) GetByKey(ctx context.Context, key domain.LedgerKey) (*domain.NutrientLedger, error) {
	if mock.GetByKeyFunc == nil {
		panic("ledgerRepoMock.GetByKeyFunc: method is nil but ledgerRepo.GetByKey was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.LedgerKey
	}{Ctx: ctx, Key: key}
	mock.lockGetByKey.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, callInfo)
	mock.lockGetByKey.Unlock()
	return mock.GetByKeyFunc(ctx, key)
}

func (mock *ledgerRepoMock) GetByKeyCalls() []struct {
	Ctx context.Context
	Key domain.LedgerKey
} {
	mock.lockGetByKey.RLock()
	calls := mock.calls.GetByKey
	mock.lockGetByKey.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) ListRange(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.NutrientLedger, error) {
	if mock.ListRangeFunc == nil {
		panic("ledgerRepoMock.ListRangeFunc: method is nil but ledgerRepo.ListRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, userID, from, to)
}

func (mock *ledgerRepoMock) ListRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListRange.RLock()
	calls := mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) Open(ctx context.Context, l *domain.NutrientLedger) (*domain.NutrientLedger, bool, error) {
	if mock.OpenFunc == nil {
		panic("ledgerRepoMock.OpenFunc: method is nil but ledgerRepo.Open was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.NutrientLedger
	}{Ctx: ctx, L: l}
	mock.lockOpen.Lock()
	mock.calls.Open = append(mock.calls.Open, callInfo)
	mock.lockOpen.Unlock()
	return mock.OpenFunc(ctx, l)
}

func (mock *ledgerRepoMock) OpenCalls() []struct {
	Ctx context.Context
	L   *domain.NutrientLedger
} {
	mock.lockOpen.RLock()
	calls := mock.calls.Open
	mock.lockOpen.RUnlock()
	return calls
}

func (mock *ledgerRepoMock) UpdateBody(ctx context.Context, key domain.LedgerKey, body domain.BodyLog) (*domain.NutrientLedger, error) {
	if mock.UpdateBodyFunc == nil {
		panic("ledgerRepoMock.UpdateBodyFunc: method is nil but ledgerRepo.UpdateBody was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Key  domain.LedgerKey
		Body domain.BodyLog
	}{Ctx: ctx, Key: key, Body: body}
	mock.lockUpdateBody.Lock()
	mock.calls.UpdateBody = append(mock.calls.UpdateBody, callInfo)
	mock.lockUpdateBody.Unlock()
	return mock.UpdateBodyFunc(ctx, key, body)
}

func (mock *ledgerRepoMock) UpdateBodyCalls() []struct {
	Ctx  context.Context
	Key  domain.LedgerKey
	Body domain.BodyLog
} {
	mock.lockUpdateBody.RLock()
	calls := mock.calls.UpdateBody
	mock.lockUpdateBody.RUnlock()
	return calls
}
