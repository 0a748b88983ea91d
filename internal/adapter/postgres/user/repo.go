// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

const table = "users"

var columns = []string{"id", "username", "password_hash", "role", "is_active", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new user.
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Username, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	return nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user by exact username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, sq.Eq{"username": username}, username)
}

func (r *Repo) getBy(ctx context.Context, pred sq.Eq, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	u, err := scanUser(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

// Update persists every mutable column of u.
func (r *Repo) Update(ctx context.Context, u *domain.User) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("username", u.Username).
		Set("password_hash", u.PasswordHash).
		Set("role", string(u.Role)).
		Set("is_active", u.IsActive).
		Set("updated_at", u.UpdatedAt).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update user: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", u.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", u.ID)
	}
	return nil
}

// Delete removes a user. Availability and comments go with it (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// List returns users ordered by username together with the total count.
func (r *Repo) List(ctx context.Context, page domain.Page) ([]domain.User, int, error) {
	page = page.Normalize()

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("username ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "user", "list")
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "user", "list")
	}

	total, err := r.count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// CountAdmins returns the number of admins, optionally only active ones.
func (r *Repo) CountAdmins(ctx context.Context, activeOnly bool) (int, error) {
	pred := sq.And{sq.Eq{"role": string(domain.UserRoleAdmin)}}
	if activeOnly {
		pred = append(pred, sq.Eq{"is_active": true})
	}
	return r.count(ctx, pred)
}

func (r *Repo) count(ctx context.Context, pred sq.Sqlizer) (int, error) {
	b := postgres.Builder().Select("count(*)").From(table)
	if pred != nil {
		b = b.Where(pred)
	}
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

// Stats collects dashboard counters in one round trip. Upcoming availability
// is counted from today inclusive.
func (r *Repo) Stats(ctx context.Context, today civil.Date) (domain.Stats, error) {
	query, args, err := postgres.Builder().
		Select(
			"(SELECT count(*) FROM users)",
			"(SELECT count(*) FROM users WHERE is_active)",
			"(SELECT count(*) FROM users WHERE role = 'Admin')",
			"(SELECT count(*) FROM availability)",
		).
		Column(sq.Expr("(SELECT count(*) FROM availability WHERE date >= ?)", postgres.DateValue(today))).
		Column("(SELECT count(*) FROM comments)").
		ToSql()
	if err != nil {
		return domain.Stats{}, fmt.Errorf("build stats: %w", err)
	}

	var s domain.Stats
	err = r.q(ctx).QueryRow(ctx, query, args...).Scan(
		&s.TotalUsers, &s.ActiveUsers, &s.AdminUsers,
		&s.TotalAvailability, &s.UpcomingAvailability, &s.TotalComments,
	)
	if err != nil {
		return domain.Stats{}, postgres.MapError(err, "stats", today)
	}
	return s, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
