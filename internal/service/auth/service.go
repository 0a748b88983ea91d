package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/config"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

// tokenManager defines the access token interface needed by auth service.
type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// Service implements login, token verification and password changes.
type Service struct {
	log     *slog.Logger
	users   userRepo
	tokens  tokenManager
	lockout *lockout
	cfg     config.AuthConfig
	now     func() time.Time
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:     logger.With("service", "auth"),
		users:   users,
		tokens:  tokens,
		lockout: newLockout(cfg.LoginMaxAttempts, cfg.LoginLockout),
		cfg:     cfg,
		now:     time.Now,
	}
}
