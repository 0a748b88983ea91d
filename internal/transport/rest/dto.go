package rest

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"

	"github.com/heartmarshall/court-scheduler/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userDetailResponse struct {
	userResponse
	AvailabilityCount int `json:"availability_count"`
	CommentCount      int `json:"comment_count"`
}

type availabilityResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Username        string    `json:"username,omitempty"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Edited    bool      `json:"edited"`
}

type adminActionResponse struct {
	ID             string         `json:"id"`
	AdminUserID    string         `json:"admin_user_id"`
	AdminUsername  *string        `json:"admin_username"`
	Action         string         `json:"action"`
	TargetType     string         `json:"target_type"`
	TargetID       string         `json:"target_id"`
	AffectedUserID *string        `json:"affected_user_id"`
	Description    string         `json:"description"`
	Details        map[string]any `json:"details"`
	CreatedAt      time.Time      `json:"created_at"`
}

type statsResponse struct {
	TotalUsers           int `json:"total_users"`
	ActiveUsers          int `json:"active_users"`
	AdminUsers           int `json:"admin_users"`
	TotalAvailability    int `json:"total_availability"`
	UpcomingAvailability int `json:"upcoming_availability"`
	TotalComments        int `json:"total_comments"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Role:      u.Role.String(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAvailabilityResponse(a *domain.Availability, username string) availabilityResponse {
	return availabilityResponse{
		ID:              a.ID.String(),
		UserID:          a.UserID.String(),
		Username:        username,
		Date:            a.Date.String(),
		StartTime:       clock(a.StartTime),
		EndTime:         clock(a.EndTime),
		DurationMinutes: int(a.Duration().Minutes()),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func toAvailabilityList(rows []domain.AvailabilityWithUser) []availabilityResponse {
	out := make([]availabilityResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toAvailabilityResponse(&rows[i].Availability, rows[i].Username))
	}
	return out
}

func toCommentResponse(c *domain.Comment, username string) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Username:  username,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Edited:    c.UpdatedAt.Sub(c.CreatedAt) > time.Second,
	}
}

func toCommentList(rows []domain.CommentWithUser) []commentResponse {
	out := make([]commentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toCommentResponse(&rows[i].Comment, rows[i].Username))
	}
	return out
}

func toAdminActionResponse(a *domain.AdminActionWithUser) adminActionResponse {
	resp := adminActionResponse{
		ID:            a.ID.String(),
		AdminUserID:   a.AdminUserID.String(),
		AdminUsername: a.AdminUsername,
		Action:        a.Action.String(),
		TargetType:    a.TargetType.String(),
		TargetID:      a.TargetID.String(),
		Description:   a.Description,
		Details:       a.Details,
		CreatedAt:     a.CreatedAt,
	}
	if a.AffectedUserID != nil {
		s := a.AffectedUserID.String()
		resp.AffectedUserID = &s
	}
	return resp
}

func clock(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
