package availability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

// Create books a new window for the caller, or for input.UserID when the
// caller is an admin.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Availability, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	ownerID := actor.ID
	if input.UserID != nil && *input.UserID != actor.ID {
		if !actor.IsAdmin() {
			return nil, domain.ErrForbidden
		}
		ownerID = *input.UserID
	}

	date, start, end, err := input.parse()
	if err != nil {
		return nil, err
	}
	entry, err := domain.NewAvailability(ownerID, date, start, end, s.today(), s.now())
	if err != nil {
		return nil, err
	}

	if err := s.availability.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("availability.Create: %w", err)
	}

	s.log.InfoContext(ctx, "availability created",
		slog.String("availability_id", entry.ID.String()),
		slog.String("user_id", ownerID.String()),
		slog.String("date", entry.Date.String()),
	)
	return entry, nil
}

// Update changes an entry owned by the caller. Admins may update any entry;
// doing so for someone else is recorded in the audit log.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Availability, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	upd, err := input.parse()
	if err != nil {
		return nil, err
	}

	var entry *domain.Availability
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		entry, err = s.availability.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanAccessRecord(entry, actor, true) {
			return domain.ErrForbidden
		}

		original := snapshot(entry)
		if err := entry.Update(upd, s.today(), s.now()); err != nil {
			return err
		}
		if err := s.availability.Update(txCtx, entry); err != nil {
			return err
		}

		if entry.UserID == actor.ID {
			return nil
		}
		owner, err := s.users.GetByID(txCtx, entry.UserID)
		if err != nil {
			return err
		}
		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionEditAvailability,
			TargetType:     domain.TargetTypeAvailability,
			TargetID:       entry.ID,
			AffectedUserID: &entry.UserID,
			Description:    fmt.Sprintf("Edited availability for %s on %s", owner.Username, entry.Date),
			Details: map[string]any{
				"user_id":  entry.UserID.String(),
				"username": owner.Username,
				"original": original,
				"new":      snapshot(entry),
			},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("availability.Update: %w", err)
	}

	s.log.InfoContext(ctx, "availability updated",
		slog.String("availability_id", entry.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return entry, nil
}

// Delete removes an entry owned by the caller. Admins may delete any entry;
// doing so for someone else is recorded in the audit log.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.availability.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanAccessRecord(entry, actor, true) {
			return domain.ErrForbidden
		}

		if err := s.availability.Delete(txCtx, entry.ID); err != nil {
			return err
		}

		if entry.UserID == actor.ID {
			return nil
		}
		owner, err := s.users.GetByID(txCtx, entry.UserID)
		if err != nil {
			return err
		}
		details := snapshot(entry)
		details["user_id"] = entry.UserID.String()
		details["username"] = owner.Username
		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionDeleteAvailability,
			TargetType:     domain.TargetTypeAvailability,
			TargetID:       entry.ID,
			AffectedUserID: &entry.UserID,
			Description:    fmt.Sprintf("Deleted availability for %s on %s", owner.Username, entry.Date),
			Details:        details,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("availability.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "availability deleted",
		slog.String("availability_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return nil
}
