package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/availability"
)

var _ availabilityService = &availabilityServiceMock{}

type availabilityServiceMock struct {
	ListRangeFunc func(ctx context.Context, view string, startRaw string, endRaw string) (domain.DateRange, []domain.AvailabilityWithUser, error)
	MineFunc      func(ctx context.Context) ([]domain.Availability, error)
	CreateFunc    func(ctx context.Context, input availability.CreateInput) (*domain.Availability, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, input availability.UpdateInput) (*domain.Availability, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error

	calls struct {
		ListRange []struct {
			Ctx      context.Context
			View     string
			StartRaw string
			EndRaw   string
		}
		Mine []struct {
			Ctx context.Context
		}
		Create []struct {
			Ctx   context.Context
			Input availability.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input availability.UpdateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListRange sync.RWMutex
	lockMine      sync.RWMutex
	lockCreate    sync.RWMutex
	lockUpdate    sync.RWMutex
	lockDelete    sync.RWMutex
}

func (mock *availabilityServiceMock) ListRange(ctx context.Context, view string, startRaw string, endRaw string) (domain.DateRange, []domain.AvailabilityWithUser, error) {
	if mock.ListRangeFunc == nil {
		panic("availabilityServiceMock.ListRangeFunc: method is nil but availabilityService.ListRange was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		View     string
		StartRaw string
		EndRaw   string
	}{
		Ctx:      ctx,
		View:     view,
		StartRaw: startRaw,
		EndRaw:   endRaw,
	}
	mock.lockListRange.Lock()
	mock.calls.ListRange = append(mock.calls.ListRange, callInfo)
	mock.lockListRange.Unlock()
	return mock.ListRangeFunc(ctx, view, startRaw, endRaw)
}

// ListRangeCalls gets all the calls that were made to ListRange.
func (mock *availabilityServiceMock) ListRangeCalls() []struct {
	Ctx      context.Context
	View     string
	StartRaw string
	EndRaw   string
} {
	var calls []struct {
		Ctx      context.Context
		View     string
		StartRaw string
		EndRaw   string
	}
	mock.lockListRange.RLock()
	calls = mock.calls.ListRange
	mock.lockListRange.RUnlock()
	return calls
}

func (mock *availabilityServiceMock) Mine(ctx context.Context) ([]domain.Availability, error) {
	if mock.MineFunc == nil {
		panic("availabilityServiceMock.MineFunc: method is nil but availabilityService.Mine was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockMine.Lock()
	mock.calls.Mine = append(mock.calls.Mine, callInfo)
	mock.lockMine.Unlock()
	return mock.MineFunc(ctx)
}

// MineCalls gets all the calls that were made to Mine.
func (mock *availabilityServiceMock) MineCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockMine.RLock()
	calls = mock.calls.Mine
	mock.lockMine.RUnlock()
	return calls
}

func (mock *availabilityServiceMock) Create(ctx context.Context, input availability.CreateInput) (*domain.Availability, error) {
	if mock.CreateFunc == nil {
		panic("availabilityServiceMock.CreateFunc: method is nil but availabilityService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input availability.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *availabilityServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input availability.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input availability.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *availabilityServiceMock) Update(ctx context.Context, id uuid.UUID, input availability.UpdateInput) (*domain.Availability, error) {
	if mock.UpdateFunc == nil {
		panic("availabilityServiceMock.UpdateFunc: method is nil but availabilityService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input availability.UpdateInput
	}{
		Ctx:   ctx,
		ID:    id,
		Input: input,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *availabilityServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input availability.UpdateInput
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input availability.UpdateInput
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *availabilityServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("availabilityServiceMock.DeleteFunc: method is nil but availabilityService.Delete was just called")
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
func (mock *availabilityServiceMock) DeleteCalls() []struct {
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
