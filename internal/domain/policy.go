package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/pkg/ctxutil"
)

// Owned is implemented by records that belong to a single user.
type Owned interface {
	OwnerID() uuid.UUID
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

// IsAuthenticated is false for a nil actor or one without an id.
func (a *Actor) IsAuthenticated() bool {
	return a != nil && a.ID != uuid.Nil
}

func (a *Actor) IsAdmin() bool {
	return a.IsAuthenticated() && a.Role.IsAdmin()
}

// CanAccessRecord reports whether actor may modify record. Owners always may;
// admins may when allowAdmin is set.
func CanAccessRecord(record Owned, actor *Actor, allowAdmin bool) bool {
	if !actor.IsAuthenticated() || record == nil {
		return false
	}
	if record.OwnerID() == actor.ID {
		return true
	}
	return allowAdmin && actor.Role.IsAdmin()
}

// ActorFromCtx builds the caller from the identity the auth middleware put in
// ctx. It returns nil for anonymous requests.
func ActorFromCtx(ctx context.Context) *Actor {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil
	}
	return &Actor{ID: id, Role: UserRole(ctxutil.UserRoleFromCtx(ctx))}
}
