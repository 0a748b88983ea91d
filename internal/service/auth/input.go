package auth

import (
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// LoginInput holds credentials for the password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate checks presence only; the failure of a wrong password must stay
// indistinguishable from an unknown user.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: domain.FieldUsername, Rule: domain.RuleRequired, Message: "username is required"})
	} else if len(i.Username) > 256 {
		errs = append(errs, domain.FieldError{Field: domain.FieldUsername, Rule: domain.RuleLength, Message: "username is too long"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: domain.FieldPassword, Rule: domain.RuleRequired, Message: "password is required"})
	} else if len(i.Password) > 1024 {
		errs = append(errs, domain.FieldError{Field: domain.FieldPassword, Rule: domain.RuleLength, Message: "password is too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangePasswordInput holds parameters for a self-service password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

const fieldCurrentPassword = "current_password"

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: fieldCurrentPassword, Rule: domain.RuleRequired, Message: "current password is required"})
	}
	if fe := domain.ValidatePassword(i.NewPassword); fe != nil {
		errs = append(errs, *fe)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginResult is returned by Login.
type LoginResult struct {
	AccessToken string
	User        *domain.User
}
