package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// SQLSTATE codes MapError translates.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Constraint names from migrations.
const (
	ConstraintUsernameKey    = "users_username_key"
	ConstraintTimeOrder      = "availability_time_order_check"
	ConstraintCommentContent = "comments_content_check"
)

// constraintFields turns named constraint violations into the same field
// errors the domain validators produce.
var constraintFields = map[string]func() error{
	ConstraintUsernameKey: func() error {
		return domain.NewUniqueError(domain.FieldUsername, "username already exists")
	},
	ConstraintTimeOrder: func() error {
		return domain.NewValidationError(domain.FieldEndTime, domain.RuleOrder, "end time must be after start time")
	},
	ConstraintCommentContent: func() error {
		return domain.NewValidationError(domain.FieldContent, domain.RuleLength, "content must be 1 to 1000 characters")
	},
}

// MapError converts pgx/pgconn errors to domain errors. entity and key
// (an id or a natural key) prefix the message. Context errors and unknown
// SQLSTATEs are wrapped unchanged.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %v: %w", entity, key, translate(err))
}

func translate(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if field, ok := constraintFields[pgErr.ConstraintName]; ok {
		return field()
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		// Every FK points at a parent row; a miss means the parent is gone.
		return domain.ErrNotFound
	case codeCheckViolation:
		return domain.ErrValidation
	}
	return err
}
