package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 6
	PasswordMaxLength = 128
)

// Field names reported by user validation.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldIsActive = "is_active"
)

// User is an account that can log in and own availability and comments.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate carries the fields to change. Nil fields are left as they are.
type UserUpdate struct {
	Username *string
	Password *string
	Role     *UserRole
	IsActive *bool
}

// NewUser validates the input and returns an active user with a hashed password.
func NewUser(username, password string, role UserRole, hashCost int, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)

	var errs []FieldError
	errs = appendFieldError(errs, ValidateUsername(username))
	errs = appendFieldError(errs, ValidatePassword(password))
	errs = appendFieldError(errs, validateRole(role))
	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	hash, err := HashPassword(password, hashCost)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Update applies upd to a copy of u, re-validates the whole user and only then
// commits the result to u. On failure u is left unchanged.
func (u *User) Update(upd UserUpdate, hashCost int, now time.Time) error {
	next := *u

	if upd.Username != nil {
		next.Username = strings.TrimSpace(*upd.Username)
	}
	if upd.Role != nil {
		next.Role = *upd.Role
	}
	if upd.IsActive != nil {
		next.IsActive = *upd.IsActive
	}

	var errs []FieldError
	errs = appendFieldError(errs, ValidateUsername(next.Username))
	if upd.Password != nil {
		errs = appendFieldError(errs, ValidatePassword(*upd.Password))
	} else if next.PasswordHash == "" {
		errs = append(errs, FieldError{Field: FieldPassword, Rule: RuleRequired, Message: "password is required"})
	}
	errs = appendFieldError(errs, validateRole(next.Role))
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}

	if upd.Password != nil {
		hash, err := HashPassword(*upd.Password, hashCost)
		if err != nil {
			return err
		}
		next.PasswordHash = hash
	}

	next.UpdatedAt = now.UTC()
	*u = next
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), passwordDigest(password)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// HashPassword returns a salted bcrypt hash of password. The password is
// digested first so every length ValidatePassword accepts fits bcrypt's
// 72-byte input limit.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// passwordDigest is the base64 SHA-256 of password: 44 bytes, no NUL bytes.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// ValidateUsername checks length and the allowed character set.
func ValidateUsername(username string) *FieldError {
	n := len(username)
	switch {
	case n == 0:
		return &FieldError{Field: FieldUsername, Rule: RuleRequired, Message: "username is required"}
	case n < UsernameMinLength || n > UsernameMaxLength:
		return &FieldError{
			Field:   FieldUsername,
			Rule:    RuleLength,
			Message: fmt.Sprintf("username must be between %d and %d characters", UsernameMinLength, UsernameMaxLength),
		}
	}
	for _, r := range username {
		if !isUsernameRune(r) {
			return &FieldError{
				Field:   FieldUsername,
				Rule:    RuleCharset,
				Message: "username can only contain letters, numbers, and underscores",
			}
		}
	}
	return nil
}

// ValidatePassword checks length and the letter+digit strength rule.
func ValidatePassword(password string) *FieldError {
	n := len([]rune(password))
	switch {
	case n == 0:
		return &FieldError{Field: FieldPassword, Rule: RuleRequired, Message: "password is required"}
	case n < PasswordMinLength || n > PasswordMaxLength:
		return &FieldError{
			Field:   FieldPassword,
			Rule:    RuleLength,
			Message: fmt.Sprintf("password must be between %d and %d characters", PasswordMinLength, PasswordMaxLength),
		}
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return &FieldError{
			Field:   FieldPassword,
			Rule:    RuleWeakPassword,
			Message: "password must contain at least one letter and one number",
		}
	}
	return nil
}

func validateRole(role UserRole) *FieldError {
	if !role.IsValid() {
		return &FieldError{Field: FieldRole, Rule: RuleInvalid, Message: fmt.Sprintf("invalid role %q", role)}
	}
	return nil
}

func isUsernameRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func appendFieldError(errs []FieldError, fe *FieldError) []FieldError {
	if fe == nil {
		return errs
	}
	return append(errs, *fe)
}
