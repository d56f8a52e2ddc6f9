package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/dietrack-backend/internal/domain"
)

var _ trackReader = &trackReaderMock{}

type trackReaderMock struct {
	GetTrackFunc func(ctx context.Context, trackID uuid.UUID) (*domain.Track, error)

	calls struct {
		GetTrack []struct {
			Ctx     context.Context
			TrackID uuid.UUID
		}
	}
	lockGetTrack sync.RWMutex
}

func (mock *trackReaderMock) GetTrack(ctx context.Context, trackID uuid.UUID) (*domain.Track, error) {
	if mock.GetTrackFunc == nil {
		panic("trackReaderMock.GetTrackFunc: method is nil but trackReader.GetTrack was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TrackID uuid.UUID
	}{Ctx: ctx, TrackID: trackID}
	mock.lockGetTrack.Lock()
	mock.calls.GetTrack = append(mock.calls.GetTrack, callInfo)
	mock.lockGetTrack.Unlock()
	return mock.GetTrackFunc(ctx, trackID)
}

func (mock *trackReaderMock) GetTrackCalls() []struct {
	Ctx     context.Context
	TrackID uuid.UUID
} {
	mock.lockGetTrack.RLock()
	calls := mock.calls.GetTrack
	mock.lockGetTrack.RUnlock()
	return calls
}
