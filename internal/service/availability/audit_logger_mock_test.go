package availability

import (
	"context"
	"sync"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, in audit.LogInput) (*domain.AdminAction, error)

	calls struct {
		Log []struct {
			Ctx context.Context
			In  audit.LogInput
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, in audit.LogInput) (*domain.AdminAction, error) {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  audit.LogInput
	}{
		Ctx: ctx,
		In:  in,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, in)
}

// LogCalls gets all the calls that were made to Log.
func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx context.Context
	In  audit.LogInput
} {
	var calls []struct {
		Ctx context.Context
		In  audit.LogInput
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}
