package availability

import (
	"context"
	"fmt"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// ListRange resolves view (today, week, month or custom) against today and
// returns the entries of active users inside it, ordered by date then start
// time. Unknown views fall back to today.
func (s *Service) ListRange(ctx context.Context, view, startRaw, endRaw string) (domain.DateRange, []domain.AvailabilityWithUser, error) {
	if !domain.ActorFromCtx(ctx).IsAuthenticated() {
		return domain.DateRange{}, nil, domain.ErrUnauthorized
	}

	dr, err := domain.ParseDateRange(view, startRaw, endRaw, s.today())
	if err != nil {
		return domain.DateRange{}, nil, err
	}

	entries, err := s.availability.ListActiveInRange(ctx, dr)
	if err != nil {
		return domain.DateRange{}, nil, fmt.Errorf("availability.ListRange: %w", err)
	}
	return dr, entries, nil
}

// Mine returns the caller's entries from today on.
func (s *Service) Mine(ctx context.Context) ([]domain.Availability, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.availability.ListByUserFrom(ctx, actor.ID, s.today())
	if err != nil {
		return nil, fmt.Errorf("availability.Mine: %w", err)
	}
	return entries, nil
}

// AdminList returns every entry matching f, newest day first (admin only).
func (s *Service) AdminList(ctx context.Context, f domain.AvailabilityFilter, page domain.Page) ([]domain.AvailabilityWithUser, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	entries, err := s.availability.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("availability.AdminList: %w", err)
	}
	return entries, nil
}
