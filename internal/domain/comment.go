package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	CommentMaxLength = 1000

	// Content where more than this share of runes are symbols is rejected as spam.
	commentSpecialCharRatio = 0.3
	// A run of this many identical runes is rejected as spam.
	commentMaxRepeatRun = 13
)

const FieldContent = "content"

var injectionPatterns = []string{
	"<script", "javascript:", "<img", "onclick=", "onload=", "onerror=",
}

// Comment is a short message posted on the shared board.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentWithUser is a listing row joined with the author's username.
type CommentWithUser struct {
	Comment
	Username string
}

// NewComment validates content and returns a new comment owned by userID.
func NewComment(userID uuid.UUID, content string, now time.Time) (*Comment, error) {
	if userID == uuid.Nil {
		return nil, NewValidationError("user_id", RuleRequired, "user is required")
	}
	clean, err := ValidateCommentContent(content)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	return &Comment{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   clean,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the content after validation. On failure c is left unchanged.
func (c *Comment) Update(content string, now time.Time) error {
	clean, err := ValidateCommentContent(content)
	if err != nil {
		return err
	}
	c.Content = clean
	c.UpdatedAt = now.UTC()
	return nil
}

func (c *Comment) OwnerID() uuid.UUID {
	return c.UserID
}

// ValidateCommentContent trims content and runs the comment rules in order,
// returning the trimmed text on success.
func ValidateCommentContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", NewValidationError(FieldContent, RuleRequired, "comment content cannot be empty")
	}

	total := utf8.RuneCountInString(content)
	if total > CommentMaxLength {
		return "", NewValidationError(FieldContent, RuleLength,
			fmt.Sprintf("comment must be between 1 and %d characters", CommentMaxLength))
	}

	lower := strings.ToLower(content)
	for _, p := range injectionPatterns {
		if strings.Contains(lower, p) {
			return "", NewValidationError(FieldContent, RuleInjection, "comment contains invalid content")
		}
	}

	special := 0
	for _, r := range content {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	if float64(special) > float64(total)*commentSpecialCharRatio {
		return "", NewValidationError(FieldContent, RuleSpecialChars, "comment contains too many special characters")
	}

	if longestRun(content) >= commentMaxRepeatRun {
		return "", NewValidationError(FieldContent, RuleRepeatedChars, "comment contains invalid repeated characters")
	}

	return content, nil
}

// Preview returns the first n runes of s followed by "..." when s is longer.
func Preview(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func longestRun(s string) int {
	best, run := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
