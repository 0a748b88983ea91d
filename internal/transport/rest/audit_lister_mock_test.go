package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

var _ auditLister = &auditListerMock{}

type auditListerMock struct {
	ListFunc func(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error)

	calls struct {
		List []struct {
			Ctx context.Context
			F   domain.AdminActionFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *auditListerMock) List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error) {
	if mock.ListFunc == nil {
		panic("auditListerMock.ListFunc: method is nil but auditLister.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.AdminActionFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

// ListCalls gets all the calls that were made to List.
func (mock *auditListerMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.AdminActionFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.AdminActionFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
