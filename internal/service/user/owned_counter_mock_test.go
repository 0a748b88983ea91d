package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ ownedCounter = &ownedCounterMock{}

type ownedCounterMock struct {
	CountByUserFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CountByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCountByUser sync.RWMutex
}

func (mock *ownedCounterMock) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.CountByUserFunc == nil {
		panic("ownedCounterMock.CountByUserFunc: method is nil but ownedCounter.CountByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockCountByUser.Lock()
	mock.calls.CountByUser = append(mock.calls.CountByUser, callInfo)
	mock.lockCountByUser.Unlock()
	return mock.CountByUserFunc(ctx, userID)
}

// CountByUserCalls gets all the calls that were made to CountByUser.
func (mock *ownedCounterMock) CountByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockCountByUser.RLock()
	calls = mock.calls.CountByUser
	mock.lockCountByUser.RUnlock()
	return calls
}
