// Package availability manages court availability windows: the shared
// schedule view, a user's own entries and owner/admin mutations.
package availability

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

// availabilityRepo defines the availability repository interface needed by availability service.
type availabilityRepo interface {
	Create(ctx context.Context, a *domain.Availability) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Availability, error)
	Update(ctx context.Context, a *domain.Availability) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActiveInRange(ctx context.Context, dr domain.DateRange) ([]domain.AvailabilityWithUser, error)
	ListByUserFrom(ctx context.Context, userID uuid.UUID, from civil.Date) ([]domain.Availability, error)
	List(ctx context.Context, f domain.AvailabilityFilter, page domain.Page) ([]domain.AvailabilityWithUser, error)
}

// userGetter resolves entry owners for admin operations.
type userGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, in audit.LogInput) (*domain.AdminAction, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements availability use cases.
type Service struct {
	log          *slog.Logger
	availability availabilityRepo
	users        userGetter
	audit        auditLogger
	tx           txManager
	loc          *time.Location
	now          func() time.Time
}

// NewService creates a new availability service. loc decides which calendar
// day is "today" for range views and the future-date rule.
func NewService(
	logger *slog.Logger,
	availability availabilityRepo,
	users userGetter,
	audit auditLogger,
	tx txManager,
	loc *time.Location,
) *Service {
	return &Service{
		log:          logger.With("service", "availability"),
		availability: availability,
		users:        users,
		audit:        audit,
		tx:           tx,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *Service) today() civil.Date {
	return domain.Today(s.now(), s.loc)
}

// snapshot renders the bookable window of a for audit details.
func snapshot(a *domain.Availability) map[string]any {
	return map[string]any{
		"date":       a.Date.String(),
		"start_time": clock(a.StartTime),
		"end_time":   clock(a.EndTime),
	}
}

func clock(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
