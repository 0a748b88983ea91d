package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/pkg/ctxutil"
)

// Me returns the profile of the authenticated caller.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}
	if !user.CheckPassword(input.CurrentPassword) {
		return domain.NewValidationError(fieldCurrentPassword, domain.RuleInvalid, "current password is incorrect")
	}

	if err := user.Update(domain.UserUpdate{Password: &input.NewPassword}, s.cfg.PasswordHashCost, s.now()); err != nil {
		return err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("auth.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed", slog.String("user_id", user.ID.String()))
	return nil
}
