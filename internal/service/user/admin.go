package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

// CreateUser registers a new account on behalf of an admin.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	user, err := domain.NewUser(input.Username, input.Password, input.role(), s.hashCost, s.now())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Create(txCtx, user); err != nil {
			return err
		}
		_, err := s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionCreateUser,
			TargetType:     domain.TargetTypeUser,
			TargetID:       user.ID,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("Created user %s with role %s", user.Username, user.Role),
			Details:        map[string]any{"username": user.Username, "role": user.Role.String()},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()),
	)
	return user, nil
}

// ToggleActive blocks an active user or unblocks a blocked one. Admins cannot
// block themselves, and the last active admin cannot be blocked.
func (s *Service) ToggleActive(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if actor.ID == targetID {
		return nil, selfActionError("block")
	}

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.users.GetByID(txCtx, targetID)
		if err != nil {
			return err
		}

		if user.IsAdmin() && user.IsActive {
			active, err := s.users.CountAdmins(txCtx, true)
			if err != nil {
				return err
			}
			if active <= 1 {
				return lastAdminError("Cannot block the last active admin")
			}
		}

		previous := user.IsActive
		next := !previous
		if err := user.Update(domain.UserUpdate{IsActive: &next}, s.hashCost, s.now()); err != nil {
			return err
		}
		if err := s.users.Update(txCtx, user); err != nil {
			return err
		}

		action, verb := domain.AdminActionUnblockUser, "Unblocked"
		if !next {
			action, verb = domain.AdminActionBlockUser, "Blocked"
		}
		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         action,
			TargetType:     domain.TargetTypeUser,
			TargetID:       user.ID,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("%s user %s", verb, user.Username),
			Details:        map[string]any{"username": user.Username, "previous_status": previous, "new_status": next},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.ToggleActive: %w", err)
	}

	s.log.InfoContext(ctx, "user status toggled",
		slog.String("user_id", user.ID.String()),
		slog.Bool("is_active", user.IsActive),
	)
	return user, nil
}

// DeleteUser removes a user together with their availability and comments.
// Admins cannot delete themselves, and the last admin cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, targetID uuid.UUID) error {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if actor.ID == targetID {
		return selfActionError("delete")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByID(txCtx, targetID)
		if err != nil {
			return err
		}

		if user.IsAdmin() {
			admins, err := s.users.CountAdmins(txCtx, false)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return lastAdminError("Cannot delete the last admin user")
			}
		}

		slots, err := s.availability.CountByUser(txCtx, user.ID)
		if err != nil {
			return err
		}
		comments, err := s.comments.CountByUser(txCtx, user.ID)
		if err != nil {
			return err
		}

		if err := s.users.Delete(txCtx, user.ID); err != nil {
			return err
		}

		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionDeleteUser,
			TargetType:     domain.TargetTypeUser,
			TargetID:       user.ID,
			AffectedUserID: &user.ID,
			Description:    fmt.Sprintf("Deleted user %s", user.Username),
			Details: map[string]any{
				"username":           user.Username,
				"role":               user.Role.String(),
				"availability_count": slots,
				"comment_count":      comments,
			},
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", targetID.String()))
	return nil
}
