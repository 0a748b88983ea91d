package audit

import (
	"context"
	"sync"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

var _ actionRepo = &actionRepoMock{}

type actionRepoMock struct {
	CreateFunc func(ctx context.Context, a *domain.AdminAction) error
	ListFunc   func(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.AdminAction
		}
		List []struct {
			Ctx context.Context
			F   domain.AdminActionFilter
		}
	}
	lockCreate sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *actionRepoMock) Create(ctx context.Context, a *domain.AdminAction) error {
	if mock.CreateFunc == nil {
		panic("actionRepoMock.CreateFunc: method is nil but actionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.AdminAction
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *actionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.AdminAction
} {
	var calls []struct {
		Ctx context.Context
		A   *domain.AdminAction
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *actionRepoMock) List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error) {
	if mock.ListFunc == nil {
		panic("actionRepoMock.ListFunc: method is nil but actionRepo.List was just called")
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
func (mock *actionRepoMock) ListCalls() []struct {
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
