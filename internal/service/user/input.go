package user

import (
	"fmt"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// CreateUserInput holds parameters for the admin create user operation.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.UserRole
}

// role returns the requested role, defaulting to a regular user.
func (i CreateUserInput) role() domain.UserRole {
	if i.Role == "" {
		return domain.UserRoleUser
	}
	return i.Role
}

const fieldUserID = "user_id"

func selfActionError(verb string) error {
	return domain.NewValidationError(fieldUserID, domain.RuleSelfAction, fmt.Sprintf("You cannot %s your own account", verb))
}

func lastAdminError(msg string) error {
	return domain.NewValidationError(fieldUserID, domain.RuleLastAdmin, msg)
}
