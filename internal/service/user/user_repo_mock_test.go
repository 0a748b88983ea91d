package user

import (
	"context"
	"sync"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc      func(ctx context.Context, u *domain.User) error
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFunc      func(ctx context.Context, u *domain.User) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
	ListFunc        func(ctx context.Context, page domain.Page) ([]domain.User, int, error)
	CountAdminsFunc func(ctx context.Context, activeOnly bool) (int, error)
	StatsFunc       func(ctx context.Context, today civil.Date) (domain.Stats, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.User
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			U   *domain.User
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx  context.Context
			Page domain.Page
		}
		CountAdmins []struct {
			Ctx        context.Context
			ActiveOnly bool
		}
		Stats []struct {
			Ctx   context.Context
			Today civil.Date
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockUpdate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockList        sync.RWMutex
	lockCountAdmins sync.RWMutex
	lockStats       sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, u *domain.User) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

// GetByIDCalls gets all the calls that were made to GetByID.
func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Update(ctx context.Context, u *domain.User) error {
	if mock.UpdateFunc == nil {
		panic("userRepoMock.UpdateFunc: method is nil but userRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.User
	}{
		Ctx: ctx,
		U:   u,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, u)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *userRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	U   *domain.User
} {
	var calls []struct {
		Ctx context.Context
		U   *domain.User
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *userRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("userRepoMock.DeleteFunc: method is nil but userRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *userRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, page)
}

// ListCalls gets all the calls that were made to List.
func (mock *userRepoMock) ListCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) CountAdmins(ctx context.Context, activeOnly bool) (int, error) {
	if mock.CountAdminsFunc == nil {
		panic("userRepoMock.CountAdminsFunc: method is nil but userRepo.CountAdmins was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ActiveOnly bool
	}{
		Ctx:        ctx,
		ActiveOnly: activeOnly,
	}
	mock.lockCountAdmins.Lock()
	mock.calls.CountAdmins = append(mock.calls.CountAdmins, callInfo)
	mock.lockCountAdmins.Unlock()
	return mock.CountAdminsFunc(ctx, activeOnly)
}

// CountAdminsCalls gets all the calls that were made to CountAdmins.
func (mock *userRepoMock) CountAdminsCalls() []struct {
	Ctx        context.Context
	ActiveOnly bool
} {
	var calls []struct {
		Ctx        context.Context
		ActiveOnly bool
	}
	mock.lockCountAdmins.RLock()
	calls = mock.calls.CountAdmins
	mock.lockCountAdmins.RUnlock()
	return calls
}

func (mock *userRepoMock) Stats(ctx context.Context, today civil.Date) (domain.Stats, error) {
	if mock.StatsFunc == nil {
		panic("userRepoMock.StatsFunc: method is nil but userRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Today civil.Date
	}{
		Ctx:   ctx,
		Today: today,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, today)
}

// StatsCalls gets all the calls that were made to Stats.
func (mock *userRepoMock) StatsCalls() []struct {
	Ctx   context.Context
	Today civil.Date
} {
	var calls []struct {
		Ctx   context.Context
		Today civil.Date
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
