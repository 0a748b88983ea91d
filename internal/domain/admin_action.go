package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const defaultAdminActionDescription = "Admin action performed"

// AdminActionDescriptionMaxLength matches admin_actions.description.
const AdminActionDescriptionMaxLength = 500

// AdminAction is an immutable audit record of a privileged mutation.
// AdminUserID and AffectedUserID may dangle after the referenced user is deleted.
type AdminAction struct {
	ID             uuid.UUID
	AdminUserID    uuid.UUID
	Action         AdminActionKind
	TargetType     TargetType
	TargetID       uuid.UUID
	AffectedUserID *uuid.UUID
	Description    string
	Details        map[string]any
	CreatedAt      time.Time
}

// AdminActionParams is the input for NewAdminAction.
type AdminActionParams struct {
	AdminUserID    uuid.UUID
	Action         AdminActionKind
	TargetType     TargetType
	TargetID       uuid.UUID
	AffectedUserID *uuid.UUID
	Description    string
	Details        map[string]any
}

// NewAdminAction validates p and builds an audit record. An empty description
// falls back to Details["description"], then to a generic text.
func NewAdminAction(p AdminActionParams, now time.Time) (*AdminAction, error) {
	var errs []FieldError
	if p.AdminUserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "admin_user_id", Rule: RuleRequired, Message: "admin user is required"})
	}
	if !p.Action.IsValid() {
		errs = append(errs, FieldError{Field: "action", Rule: RuleInvalid, Message: fmt.Sprintf("unknown action %q", p.Action)})
	}
	if !p.TargetType.IsValid() {
		errs = append(errs, FieldError{Field: "target_type", Rule: RuleInvalid, Message: fmt.Sprintf("unknown target type %q", p.TargetType)})
	}
	if p.TargetID == uuid.Nil {
		errs = append(errs, FieldError{Field: "target_id", Rule: RuleRequired, Message: "target is required"})
	}
	if len(errs) > 0 {
		return nil, NewValidationErrors(errs)
	}

	details := p.Details
	if details == nil {
		details = map[string]any{}
	}

	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		if d, ok := details["description"].(string); ok && strings.TrimSpace(d) != "" {
			desc = strings.TrimSpace(d)
		} else {
			desc = defaultAdminActionDescription
		}
	}
	if utf8.RuneCountInString(desc) > AdminActionDescriptionMaxLength {
		desc = strings.TrimSpace(string([]rune(desc)[:AdminActionDescriptionMaxLength]))
	}

	return &AdminAction{
		ID:             uuid.New(),
		AdminUserID:    p.AdminUserID,
		Action:         p.Action,
		TargetType:     p.TargetType,
		TargetID:       p.TargetID,
		AffectedUserID: p.AffectedUserID,
		Description:    desc,
		Details:        details,
		CreatedAt:      now.UTC(),
	}, nil
}

// AdminActionWithUser is an audit row joined with the admin's username, if the
// admin still exists.
type AdminActionWithUser struct {
	AdminAction
	AdminUsername *string
}
