package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// GetUser returns a user with the number of availability entries and comments
// they own (admin only).
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	slots, err := s.availability.CountByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser count availability: %w", err)
	}
	comments, err := s.comments.CountByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser count comments: %w", err)
	}

	return &domain.UserDetail{User: *user, AvailabilityCount: slots, CommentCount: comments}, nil
}

// ListUsers returns a page of users ordered by username and the total count (admin only).
func (s *Service) ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}

	users, total, err := s.users.List(ctx, page.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, total, nil
}

// Stats returns dashboard counters (admin only).
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return domain.Stats{}, domain.ErrForbidden
	}

	stats, err := s.users.Stats(ctx, domain.Today(s.now(), s.loc))
	if err != nil {
		return domain.Stats{}, fmt.Errorf("user.Stats: %w", err)
	}
	return stats, nil
}
