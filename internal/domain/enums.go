package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "User"
	UserRoleAdmin UserRole = "Admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// AdminActionKind is the closed set of privileged mutations recorded in the audit trail.
type AdminActionKind string

const (
	AdminActionCreateUser         AdminActionKind = "create_user"
	AdminActionBlockUser          AdminActionKind = "block_user"
	AdminActionUnblockUser        AdminActionKind = "unblock_user"
	AdminActionDeleteUser         AdminActionKind = "delete_user"
	AdminActionEditAvailability   AdminActionKind = "edit_availability"
	AdminActionDeleteAvailability AdminActionKind = "delete_availability"
	AdminActionEditComment        AdminActionKind = "edit_comment"
	AdminActionDeleteComment      AdminActionKind = "delete_comment"
)

// AdminActionKinds lists every valid AdminActionKind in display order.
var AdminActionKinds = []AdminActionKind{
	AdminActionCreateUser, AdminActionBlockUser, AdminActionUnblockUser, AdminActionDeleteUser,
	AdminActionEditAvailability, AdminActionDeleteAvailability,
	AdminActionEditComment, AdminActionDeleteComment,
}

func (k AdminActionKind) String() string { return string(k) }

func (k AdminActionKind) IsValid() bool {
	switch k {
	case AdminActionCreateUser, AdminActionBlockUser, AdminActionUnblockUser, AdminActionDeleteUser,
		AdminActionEditAvailability, AdminActionDeleteAvailability,
		AdminActionEditComment, AdminActionDeleteComment:
		return true
	}
	return false
}

// TargetType identifies the kind of entity an admin action was performed on.
type TargetType string

const (
	TargetTypeUser         TargetType = "user"
	TargetTypeAvailability TargetType = "availability"
	TargetTypeComment      TargetType = "comment"
)

// TargetTypes lists every valid TargetType.
var TargetTypes = []TargetType{TargetTypeUser, TargetTypeAvailability, TargetTypeComment}

func (t TargetType) String() string { return string(t) }

func (t TargetType) IsValid() bool {
	switch t {
	case TargetTypeUser, TargetTypeAvailability, TargetTypeComment:
		return true
	}
	return false
}

// RangeMode selects a calendar window for availability listings.
type RangeMode string

const (
	RangeToday  RangeMode = "today"
	RangeWeek   RangeMode = "week"
	RangeMonth  RangeMode = "month"
	RangeCustom RangeMode = "custom"
)

func (m RangeMode) String() string { return string(m) }

func (m RangeMode) IsValid() bool {
	switch m {
	case RangeToday, RangeWeek, RangeMonth, RangeCustom:
		return true
	}
	return false
}
