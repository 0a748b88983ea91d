// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

const table = "comments"

var columns = []string{"id", "user_id", "content", "created_at", "updated_at"}

// listRow maps a joined listing row by column name.
type listRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Username  string    `db:"username"`
}

func (lr listRow) toDomain() domain.CommentWithUser {
	return domain.CommentWithUser{
		Comment: domain.Comment{
			ID: lr.ID, UserID: lr.UserID, Content: lr.Content,
			CreatedAt: lr.CreatedAt, UpdatedAt: lr.UpdatedAt,
		},
		Username: lr.Username,
	}
}

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.UserID, c.Content, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert comment: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	return nil
}

// GetByID returns a comment by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select comment: %w", err)
	}

	var c domain.Comment
	err = r.q(ctx).QueryRow(ctx, query, args...).Scan(&c.ID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return &c, nil
}

// Update persists content and updated_at of c.
func (r *Repo) Update(ctx context.Context, c *domain.Comment) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("content", c.Content).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update comment: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", c.ID)
	}
	return nil
}

// Delete removes a comment.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete comment: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// ListRecent returns the newest comments with author names.
func (r *Repo) ListRecent(ctx context.Context, limit int) ([]domain.CommentWithUser, error) {
	return r.List(ctx, domain.CommentFilter{}, domain.Page{Limit: limit})
}

// List returns comments matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error) {
	page = page.Normalize()

	b := postgres.Builder().
		Select("c.id", "c.user_id", "c.content", "c.created_at", "c.updated_at", "u.username").
		From(table + " c").
		Join("users u ON u.id = c.user_id")
	if f.UserID != nil {
		b = b.Where(sq.Eq{"c.user_id": *f.UserID})
	}
	query, args, err := b.
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "comment", "list")
	}

	out := make([]domain.CommentWithUser, 0, len(rows))
	for _, lr := range rows {
		out = append(out, lr.toDomain())
	}
	return out, nil
}

// CountByUser returns the number of comments written by userID.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count comments: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "comment", userID)
	}
	return n, nil
}
