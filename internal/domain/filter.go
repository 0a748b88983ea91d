package domain

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 200

	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// AdminActionFilter narrows audit log queries. Zero-valued fields match everything.
type AdminActionFilter struct {
	Action      *AdminActionKind
	TargetType  *TargetType
	AdminUserID *uuid.UUID
	From        *time.Time // inclusive
	To          *time.Time // exclusive
	Limit       int
	Offset      int
}

// Normalize clamps pagination to the allowed window.
func (f AdminActionFilter) Normalize() AdminActionFilter {
	f.Limit = clampLimit(f.Limit, DefaultAuditLimit, MaxAuditLimit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// AvailabilityFilter narrows the admin availability listing.
type AvailabilityFilter struct {
	UserID *uuid.UUID
	Date   *civil.Date
}

// CommentFilter narrows the admin comment listing.
type CommentFilter struct {
	UserID *uuid.UUID
}

// Page holds limit/offset pagination.
type Page struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination to the allowed window.
func (p Page) Normalize() Page {
	p.Limit = clampLimit(p.Limit, DefaultPageLimit, MaxPageLimit)
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Stats summarizes users and content for the admin dashboard.
type Stats struct {
	TotalUsers           int
	ActiveUsers          int
	AdminUsers           int
	TotalAvailability    int
	UpcomingAvailability int
	TotalComments        int
}

// UserDetail is a user with the number of rows they own.
type UserDetail struct {
	User
	AvailabilityCount int
	CommentCount      int
}

func clampLimit(limit, def, max int) int {
	switch {
	case limit <= 0:
		return def
	case limit > max:
		return max
	}
	return limit
}
