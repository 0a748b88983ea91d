// Package audit records and lists privileged admin mutations.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// actionRepo defines the admin action repository interface needed by audit service.
type actionRepo interface {
	Create(ctx context.Context, a *domain.AdminAction) error
	List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error)
}

// Service implements the audit trail.
type Service struct {
	log     *slog.Logger
	actions actionRepo
	now     func() time.Time
}

// NewService creates a new audit service instance.
func NewService(logger *slog.Logger, actions actionRepo) *Service {
	return &Service{
		log:     logger.With("service", "audit"),
		actions: actions,
		now:     time.Now,
	}
}

// LogInput describes one admin action to record.
type LogInput struct {
	Action         domain.AdminActionKind
	TargetType     domain.TargetType
	TargetID       uuid.UUID
	AffectedUserID *uuid.UUID
	Description    string
	Details        map[string]any
}

// Log persists an admin action performed by the admin in ctx. Call it inside
// the RunInTx closure of the mutation being audited so both commit together.
func (s *Service) Log(ctx context.Context, in LogInput) (*domain.AdminAction, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	a, err := domain.NewAdminAction(domain.AdminActionParams{
		AdminUserID:    actor.ID,
		Action:         in.Action,
		TargetType:     in.TargetType,
		TargetID:       in.TargetID,
		AffectedUserID: in.AffectedUserID,
		Description:    domain.SanitizeText(in.Description, domain.AdminActionDescriptionMaxLength),
		Details:        in.Details,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.actions.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("audit.Log: %w", err)
	}

	s.log.InfoContext(ctx, "admin action recorded",
		slog.String("action", a.Action.String()),
		slog.String("target_type", a.TargetType.String()),
		slog.String("target_id", a.TargetID.String()),
		slog.String("admin_user_id", a.AdminUserID.String()),
	)
	return a, nil
}

// List returns audit rows matching f, newest first, and the total match count.
func (s *Service) List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	if err := validateFilter(f); err != nil {
		return nil, 0, err
	}

	rows, total, err := s.actions.List(ctx, f.Normalize())
	if err != nil {
		return nil, 0, fmt.Errorf("audit.List: %w", err)
	}
	return rows, total, nil
}

func validateFilter(f domain.AdminActionFilter) error {
	var errs []domain.FieldError
	if f.Action != nil && !f.Action.IsValid() {
		errs = append(errs, domain.FieldError{Field: "action", Rule: domain.RuleInvalid, Message: fmt.Sprintf("unknown action %q", *f.Action)})
	}
	if f.TargetType != nil && !f.TargetType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_type", Rule: domain.RuleInvalid, Message: fmt.Sprintf("unknown target type %q", *f.TargetType)})
	}
	if f.From != nil && f.To != nil && !f.From.Before(*f.To) {
		errs = append(errs, domain.FieldError{Field: "to", Rule: domain.RuleOrder, Message: "to must be after from"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
