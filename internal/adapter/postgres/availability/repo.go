// Package availability implements the Availability repository using PostgreSQL.
package availability

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

const table = "availability"

var columns = []string{"id", "user_id", "date", "start_time", "end_time", "created_at", "updated_at"}

// joinedColumns select an availability row plus the owner's username.
var joinedColumns = []string{
	"a.id", "a.user_id", "a.date", "a.start_time", "a.end_time", "a.created_at", "a.updated_at", "u.username",
}

// Repo provides availability persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new availability repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new availability entry.
func (r *Repo) Create(ctx context.Context, a *domain.Availability) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserID, postgres.DateValue(a.Date), postgres.TimeValue(a.StartTime), postgres.TimeValue(a.EndTime),
			a.CreatedAt, a.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert availability: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "availability", a.ID)
	}
	return nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Availability, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select availability: %w", err)
	}

	a, err := scanAvailability(r.q(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "availability", id)
	}
	return a, nil
}

// Update persists date, times and updated_at of a.
func (r *Repo) Update(ctx context.Context, a *domain.Availability) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("date", postgres.DateValue(a.Date)).
		Set("start_time", postgres.TimeValue(a.StartTime)).
		Set("end_time", postgres.TimeValue(a.EndTime)).
		Set("updated_at", a.UpdatedAt).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update availability: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "availability", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "availability", a.ID)
	}
	return nil
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete availability: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "availability", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "availability", id)
	}
	return nil
}

// DeleteBefore removes every entry dated strictly before day and returns how
// many rows went away.
func (r *Repo) DeleteBefore(ctx context.Context, day civil.Date) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Lt{"date": postgres.DateValue(day)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete old availability: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "availability", day)
	}
	return tag.RowsAffected(), nil
}

// CountBefore reports how many entries DeleteBefore would remove.
func (r *Repo) CountBefore(ctx context.Context, day civil.Date) (int64, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Lt{"date": postgres.DateValue(day)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count old availability: %w", err)
	}

	var n int64
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "availability", day)
	}
	return n, nil
}

// ListActiveInRange returns entries of active users whose date falls within r,
// ordered by date, start time and username.
func (r *Repo) ListActiveInRange(ctx context.Context, dr domain.DateRange) ([]domain.AvailabilityWithUser, error) {
	b := joined().
		Where(sq.Eq{"u.is_active": true}).
		Where(sq.Expr("a.date BETWEEN ? AND ?", postgres.DateValue(dr.Start), postgres.DateValue(dr.End))).
		OrderBy("a.date ASC", "a.start_time ASC", "u.username ASC")
	return r.listJoined(ctx, b)
}

// ListByUserFrom returns a user's entries dated from onwards, soonest first.
func (r *Repo) ListByUserFrom(ctx context.Context, userID uuid.UUID, from civil.Date) ([]domain.Availability, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"date": postgres.DateValue(from)}).
		OrderBy("date ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list availability by user: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "availability", userID)
	}
	defer rows.Close()

	out := make([]domain.Availability, 0)
	for rows.Next() {
		a, err := scanAvailability(rows)
		if err != nil {
			return nil, postgres.MapError(err, "availability", userID)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "availability", userID)
	}
	return out, nil
}

// List returns entries of all users (active or not) matching f, newest date first.
func (r *Repo) List(ctx context.Context, f domain.AvailabilityFilter, page domain.Page) ([]domain.AvailabilityWithUser, error) {
	page = page.Normalize()

	b := joined()
	if f.UserID != nil {
		b = b.Where(sq.Eq{"a.user_id": *f.UserID})
	}
	if f.Date != nil {
		b = b.Where(sq.Eq{"a.date": postgres.DateValue(*f.Date)})
	}
	b = b.OrderBy("a.date DESC", "a.start_time ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset))
	return r.listJoined(ctx, b)
}

// CountByUser returns the number of entries owned by userID.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count availability: %w", err)
	}

	var n int
	if err := r.q(ctx).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "availability", userID)
	}
	return n, nil
}

func joined() sq.SelectBuilder {
	return postgres.Builder().
		Select(joinedColumns...).
		From(table + " a").
		Join("users u ON u.id = a.user_id")
}

func (r *Repo) listJoined(ctx context.Context, b sq.SelectBuilder) ([]domain.AvailabilityWithUser, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list availability: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "availability", "list")
	}
	defer rows.Close()

	out := make([]domain.AvailabilityWithUser, 0)
	for rows.Next() {
		var (
			row        domain.AvailabilityWithUser
			date       time.Time
			start, end pgtype.Time
		)
		if err := rows.Scan(&row.ID, &row.UserID, &date, &start, &end, &row.CreatedAt, &row.UpdatedAt, &row.Username); err != nil {
			return nil, postgres.MapError(err, "availability", "list")
		}
		row.Date = postgres.DateFromValue(date)
		row.StartTime = postgres.TimeFromValue(start)
		row.EndTime = postgres.TimeFromValue(end)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "availability", "list")
	}
	return out, nil
}

func scanAvailability(row pgx.Row) (*domain.Availability, error) {
	var (
		a          domain.Availability
		date       time.Time
		start, end pgtype.Time
	)
	if err := row.Scan(&a.ID, &a.UserID, &date, &start, &end, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Date = postgres.DateFromValue(date)
	a.StartTime = postgres.TimeFromValue(start)
	a.EndTime = postgres.TimeFromValue(end)
	return &a, nil
}
