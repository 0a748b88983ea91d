package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/user"
)

var _ userAdminService = &userAdminServiceMock{}

type userAdminServiceMock struct {
	CreateUserFunc   func(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	ToggleActiveFunc func(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
	DeleteUserFunc   func(ctx context.Context, targetID uuid.UUID) error
	GetUserFunc      func(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error)
	ListUsersFunc    func(ctx context.Context, page domain.Page) ([]domain.User, int, error)
	StatsFunc        func(ctx context.Context) (domain.Stats, error)

	calls struct {
		CreateUser []struct {
			Ctx   context.Context
			Input user.CreateUserInput
		}
		ToggleActive []struct {
			Ctx      context.Context
			TargetID uuid.UUID
		}
		DeleteUser []struct {
			Ctx      context.Context
			TargetID uuid.UUID
		}
		GetUser []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListUsers []struct {
			Ctx  context.Context
			Page domain.Page
		}
		Stats []struct {
			Ctx context.Context
		}
	}
	lockCreateUser   sync.RWMutex
	lockToggleActive sync.RWMutex
	lockDeleteUser   sync.RWMutex
	lockGetUser      sync.RWMutex
	lockListUsers    sync.RWMutex
	lockStats        sync.RWMutex
}

func (mock *userAdminServiceMock) CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error) {
	if mock.CreateUserFunc == nil {
		panic("userAdminServiceMock.CreateUserFunc: method is nil but userAdminService.CreateUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateUser.Lock()
	mock.calls.CreateUser = append(mock.calls.CreateUser, callInfo)
	mock.lockCreateUser.Unlock()
	return mock.CreateUserFunc(ctx, input)
}

// CreateUserCalls gets all the calls that were made to CreateUser.
func (mock *userAdminServiceMock) CreateUserCalls() []struct {
	Ctx   context.Context
	Input user.CreateUserInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.CreateUserInput
	}
	mock.lockCreateUser.RLock()
	calls = mock.calls.CreateUser
	mock.lockCreateUser.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) ToggleActive(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	if mock.ToggleActiveFunc == nil {
		panic("userAdminServiceMock.ToggleActiveFunc: method is nil but userAdminService.ToggleActive was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TargetID uuid.UUID
	}{
		Ctx:      ctx,
		TargetID: targetID,
	}
	mock.lockToggleActive.Lock()
	mock.calls.ToggleActive = append(mock.calls.ToggleActive, callInfo)
	mock.lockToggleActive.Unlock()
	return mock.ToggleActiveFunc(ctx, targetID)
}

// ToggleActiveCalls gets all the calls that were made to ToggleActive.
func (mock *userAdminServiceMock) ToggleActiveCalls() []struct {
	Ctx      context.Context
	TargetID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TargetID uuid.UUID
	}
	mock.lockToggleActive.RLock()
	calls = mock.calls.ToggleActive
	mock.lockToggleActive.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) DeleteUser(ctx context.Context, targetID uuid.UUID) error {
	if mock.DeleteUserFunc == nil {
		panic("userAdminServiceMock.DeleteUserFunc: method is nil but userAdminService.DeleteUser was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		TargetID uuid.UUID
	}{
		Ctx:      ctx,
		TargetID: targetID,
	}
	mock.lockDeleteUser.Lock()
	mock.calls.DeleteUser = append(mock.calls.DeleteUser, callInfo)
	mock.lockDeleteUser.Unlock()
	return mock.DeleteUserFunc(ctx, targetID)
}

// DeleteUserCalls gets all the calls that were made to DeleteUser.
func (mock *userAdminServiceMock) DeleteUserCalls() []struct {
	Ctx      context.Context
	TargetID uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		TargetID uuid.UUID
	}
	mock.lockDeleteUser.RLock()
	calls = mock.calls.DeleteUser
	mock.lockDeleteUser.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error) {
	if mock.GetUserFunc == nil {
		panic("userAdminServiceMock.GetUserFunc: method is nil but userAdminService.GetUser was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetUser.Lock()
	mock.calls.GetUser = append(mock.calls.GetUser, callInfo)
	mock.lockGetUser.Unlock()
	return mock.GetUserFunc(ctx, id)
}

// GetUserCalls gets all the calls that were made to GetUser.
func (mock *userAdminServiceMock) GetUserCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetUser.RLock()
	calls = mock.calls.GetUser
	mock.lockGetUser.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	if mock.ListUsersFunc == nil {
		panic("userAdminServiceMock.ListUsersFunc: method is nil but userAdminService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page domain.Page
	}{
		Ctx:  ctx,
		Page: page,
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, page)
}

// ListUsersCalls gets all the calls that were made to ListUsers.
func (mock *userAdminServiceMock) ListUsersCalls() []struct {
	Ctx  context.Context
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		Page domain.Page
	}
	mock.lockListUsers.RLock()
	calls = mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userAdminServiceMock) Stats(ctx context.Context) (domain.Stats, error) {
	if mock.StatsFunc == nil {
		panic("userAdminServiceMock.StatsFunc: method is nil but userAdminService.Stats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx)
}

// StatsCalls gets all the calls that were made to Stats.
func (mock *userAdminServiceMock) StatsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockStats.RLock()
	calls = mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
