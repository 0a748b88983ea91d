// Package audit implements the admin action repository using PostgreSQL.
// It provides append-only operations: there is no update or delete.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

const table = "admin_actions"

var columns = []string{
	"id", "admin_user_id", "action", "target_type", "target_id",
	"affected_user_id", "description", "details", "created_at",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an audit record. Inside RunInTx it joins the caller's transaction.
func (r *Repo) Create(ctx context.Context, a *domain.AdminAction) error {
	details, err := json.Marshal(a.Details)
	if err != nil {
		return fmt.Errorf("admin_action marshal details: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.AdminUserID, string(a.Action), string(a.TargetType), a.TargetID,
			a.AffectedUserID, a.Description, details, a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert admin_action: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "admin_action", a.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns audit records matching f, newest first, with the admin's
// username when the admin still exists, plus the total match count.
func (r *Repo) List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error) {
	f = f.Normalize()
	pred := filterPredicate(f)

	selectCols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		selectCols = append(selectCols, "aa."+c)
	}
	selectCols = append(selectCols, "u.username")

	query, args, err := postgres.Builder().
		Select(selectCols...).
		From(table + " aa").
		LeftJoin("users u ON u.id = aa.admin_user_id").
		Where(pred).
		OrderBy("aa.created_at DESC", "aa.id DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list admin_actions: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "admin_action", "list")
	}
	defer rows.Close()

	out := make([]domain.AdminActionWithUser, 0)
	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "admin_action", "list")
	}

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table + " aa").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count admin_actions: %w", err)
	}

	var total int
	if err := r.q(ctx).QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "admin_action", "count")
	}
	return out, total, nil
}

func filterPredicate(f domain.AdminActionFilter) sq.And {
	pred := sq.And{}
	if f.Action != nil {
		pred = append(pred, sq.Eq{"aa.action": string(*f.Action)})
	}
	if f.TargetType != nil {
		pred = append(pred, sq.Eq{"aa.target_type": string(*f.TargetType)})
	}
	if f.AdminUserID != nil {
		pred = append(pred, sq.Eq{"aa.admin_user_id": *f.AdminUserID})
	}
	if f.From != nil {
		pred = append(pred, sq.GtOrEq{"aa.created_at": *f.From})
	}
	if f.To != nil {
		pred = append(pred, sq.Lt{"aa.created_at": *f.To})
	}
	return pred
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanAction(row pgx.Row) (domain.AdminActionWithUser, error) {
	var (
		a                  domain.AdminActionWithUser
		action, targetType string
		details            []byte
	)
	err := row.Scan(&a.ID, &a.AdminUserID, &action, &targetType, &a.TargetID,
		&a.AffectedUserID, &a.Description, &details, &a.CreatedAt, &a.AdminUsername)
	if err != nil {
		return domain.AdminActionWithUser{}, postgres.MapError(err, "admin_action", "scan")
	}

	a.Action = domain.AdminActionKind(action)
	a.TargetType = domain.TargetType(targetType)
	a.Details = map[string]any{}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &a.Details); err != nil {
			return domain.AdminActionWithUser{}, fmt.Errorf("admin_action %s unmarshal details: %w", a.ID, err)
		}
	}
	return a, nil
}
