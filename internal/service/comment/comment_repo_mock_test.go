package comment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Comment) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateFunc     func(ctx context.Context, c *domain.Comment) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	ListRecentFunc func(ctx context.Context, limit int) ([]domain.CommentWithUser, error)
	ListFunc       func(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx context.Context
			C   *domain.Comment
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
		List []struct {
			Ctx  context.Context
			F    domain.CommentFilter
			Page domain.Page
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
	lockListRecent sync.RWMutex
	lockList       sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, c *domain.Comment) error {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

// CreateCalls gets all the calls that were made to Create.
func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
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
func (mock *commentRepoMock) GetByIDCalls() []struct {
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

func (mock *commentRepoMock) Update(ctx context.Context, c *domain.Comment) error {
	if mock.UpdateFunc == nil {
		panic("commentRepoMock.UpdateFunc: method is nil but commentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Comment
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

// UpdateCalls gets all the calls that were made to Update.
func (mock *commentRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   *domain.Comment
} {
	var calls []struct {
		Ctx context.Context
		C   *domain.Comment
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *commentRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("commentRepoMock.DeleteFunc: method is nil but commentRepo.Delete was just called")
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
func (mock *commentRepoMock) DeleteCalls() []struct {
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

func (mock *commentRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.CommentWithUser, error) {
	if mock.ListRecentFunc == nil {
		panic("commentRepoMock.ListRecentFunc: method is nil but commentRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{
		Ctx:   ctx,
		Limit: limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

// ListRecentCalls gets all the calls that were made to ListRecent.
func (mock *commentRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockListRecent.RLock()
	calls = mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *commentRepoMock) List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error) {
	if mock.ListFunc == nil {
		panic("commentRepoMock.ListFunc: method is nil but commentRepo.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		F    domain.CommentFilter
		Page domain.Page
	}{
		Ctx:  ctx,
		F:    f,
		Page: page,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, page)
}

// ListCalls gets all the calls that were made to List.
func (mock *commentRepoMock) ListCalls() []struct {
	Ctx  context.Context
	F    domain.CommentFilter
	Page domain.Page
} {
	var calls []struct {
		Ctx  context.Context
		F    domain.CommentFilter
		Page domain.Page
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
