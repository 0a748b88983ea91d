package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page domain.Page) ([]domain.User, int, error)
	CountAdmins(ctx context.Context, activeOnly bool) (int, error)
	Stats(ctx context.Context, today civil.Date) (domain.Stats, error)
}

// ownedCounter counts the rows a user owns in one table.
type ownedCounter interface {
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// auditLogger defines the audit interface needed by user service.
type auditLogger interface {
	Log(ctx context.Context, in audit.LogInput) (*domain.AdminAction, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin user management.
type Service struct {
	log          *slog.Logger
	users        userRepo
	availability ownedCounter
	comments     ownedCounter
	audit        auditLogger
	tx           txManager
	hashCost     int
	loc          *time.Location
	now          func() time.Time
}

// NewService creates a new user service instance. loc is the timezone that
// decides what "today" is for dashboard counters.
func NewService(
	logger *slog.Logger,
	users userRepo,
	availability ownedCounter,
	comments ownedCounter,
	audit auditLogger,
	tx txManager,
	hashCost int,
	loc *time.Location,
) *Service {
	return &Service{
		log:          logger.With("service", "user"),
		users:        users,
		availability: availability,
		comments:     comments,
		audit:        audit,
		tx:           tx,
		hashCost:     hashCost,
		loc:          loc,
		now:          time.Now,
	}
}
