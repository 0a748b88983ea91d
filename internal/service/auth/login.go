package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// ErrAccountBlocked is returned when valid credentials belong to a blocked user.
var ErrAccountBlocked = fmt.Errorf("account is blocked: %w", domain.ErrForbidden)

// Login authenticates a user with username + password.
// Returns ErrUnauthorized if the username is not found or the password is wrong,
// ErrAccountBlocked for a blocked account and ErrRateLimited while the
// username is locked out after repeated failures.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := strings.ToLower(input.Username)
	now := s.now()
	if s.lockout.locked(key, now) {
		s.log.WarnContext(ctx, "login locked out", slog.String("username", input.Username))
		return nil, domain.ErrRateLimited
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.lockout.fail(key, now)
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if !user.CheckPassword(input.Password) {
		s.lockout.fail(key, now)
		return nil, domain.ErrUnauthorized
	}

	if !user.IsActive {
		s.lockout.fail(key, now)
		s.log.WarnContext(ctx, "login to blocked account", slog.String("user_id", user.ID.String()))
		return nil, ErrAccountBlocked
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}
	s.lockout.reset(key)

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return &LoginResult{AccessToken: token, User: user}, nil
}

// ValidateToken verifies an access token and reloads its subject, so blocked
// or deleted users lose access immediately. The returned role is the current
// one, not the one embedded in the token.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, _, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if !user.IsActive {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return user.ID, user.Role.String(), nil
}
