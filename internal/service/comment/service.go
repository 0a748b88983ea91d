// Package comment manages the shared comment board.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
)

// previewLength is how many runes of a comment go into audit details.
const previewLength = 100

// commentRepo defines the comment repository interface needed by comment service.
type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, c *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListRecent(ctx context.Context, limit int) ([]domain.CommentWithUser, error)
	List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error)
}

type userGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, in audit.LogInput) (*domain.AdminAction, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements comment use cases.
type Service struct {
	log         *slog.Logger
	comments    commentRepo
	users       userGetter
	audit       auditLogger
	tx          txManager
	recentLimit int
	now         func() time.Time
}

// NewService creates a new comment service. recentLimit caps the board listing.
func NewService(
	logger *slog.Logger,
	comments commentRepo,
	users userGetter,
	audit auditLogger,
	tx txManager,
	recentLimit int,
) *Service {
	return &Service{
		log:         logger.With("service", "comment"),
		comments:    comments,
		users:       users,
		audit:       audit,
		tx:          tx,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// ListRecent returns the newest comments. A limit outside 1..recentLimit
// falls back to recentLimit.
func (s *Service) ListRecent(ctx context.Context, limit int) ([]domain.CommentWithUser, error) {
	if !domain.ActorFromCtx(ctx).IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}

	list, err := s.comments.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("comment.ListRecent: %w", err)
	}
	return list, nil
}

// AdminList returns all comments matching f, newest first (admin only).
func (s *Service) AdminList(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error) {
	if !domain.ActorFromCtx(ctx).IsAdmin() {
		return nil, domain.ErrForbidden
	}

	list, err := s.comments.List(ctx, f, page.Normalize())
	if err != nil {
		return nil, fmt.Errorf("comment.AdminList: %w", err)
	}
	return list, nil
}

// Create posts a comment as the caller.
func (s *Service) Create(ctx context.Context, content string) (*domain.Comment, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	c, err := domain.NewComment(actor.ID, content, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("comment.Create: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", c.ID.String()),
		slog.String("user_id", actor.ID.String()),
	)
	return c, nil
}

// Update replaces the content of a comment owned by the caller. Admins may
// edit any comment; editing someone else's is audited.
func (s *Service) Update(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	var c *domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		c, err = s.comments.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanAccessRecord(c, actor, true) {
			return domain.ErrForbidden
		}

		original := c.Content
		if err := c.Update(content, s.now()); err != nil {
			return err
		}
		if err := s.comments.Update(txCtx, c); err != nil {
			return err
		}

		if c.UserID == actor.ID {
			return nil
		}
		author, err := s.users.GetByID(txCtx, c.UserID)
		if err != nil {
			return err
		}
		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionEditComment,
			TargetType:     domain.TargetTypeComment,
			TargetID:       c.ID,
			AffectedUserID: &c.UserID,
			Description:    "Edited comment by " + author.Username,
			Details: map[string]any{
				"user_id":          c.UserID.String(),
				"username":         author.Username,
				"original_content": domain.Preview(original, previewLength),
				"new_content":      domain.Preview(c.Content, previewLength),
			},
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("comment.Update: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("comment_id", c.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return c, nil
}

// Delete removes a comment owned by the caller. Admins may delete any
// comment; deleting someone else's is audited.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor := domain.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.comments.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !domain.CanAccessRecord(c, actor, true) {
			return domain.ErrForbidden
		}
		if err := s.comments.Delete(txCtx, c.ID); err != nil {
			return err
		}

		if c.UserID == actor.ID {
			return nil
		}
		author, err := s.users.GetByID(txCtx, c.UserID)
		if err != nil {
			return err
		}
		_, err = s.audit.Log(txCtx, audit.LogInput{
			Action:         domain.AdminActionDeleteComment,
			TargetType:     domain.TargetTypeComment,
			TargetID:       c.ID,
			AffectedUserID: &c.UserID,
			Description:    "Deleted comment by " + author.Username,
			Details: map[string]any{
				"user_id":    c.UserID.String(),
				"username":   author.Username,
				"content":    domain.Preview(c.Content, previewLength),
				"created_at": c.CreatedAt.UTC().Format(time.RFC3339),
			},
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("comment.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("comment_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)
	return nil
}
