package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/user"
)

type userAdminService interface {
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	ToggleActive(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
	DeleteUser(ctx context.Context, targetID uuid.UUID) error
	GetUser(ctx context.Context, id uuid.UUID) (*domain.UserDetail, error)
	ListUsers(ctx context.Context, page domain.Page) ([]domain.User, int, error)
	Stats(ctx context.Context) (domain.Stats, error)
}

type availabilityLister interface {
	AdminList(ctx context.Context, f domain.AvailabilityFilter, page domain.Page) ([]domain.AvailabilityWithUser, error)
}

type commentLister interface {
	AdminList(ctx context.Context, f domain.CommentFilter, page domain.Page) ([]domain.CommentWithUser, error)
}

type auditLister interface {
	List(ctx context.Context, f domain.AdminActionFilter) ([]domain.AdminActionWithUser, int, error)
}

// AdminHandler serves the /admin endpoints. Every method is also guarded by
// the services, so mounting it without AdminOnly still refuses non-admins.
type AdminHandler struct {
	users        userAdminService
	availability availabilityLister
	comments     commentLister
	audit        auditLister
	loc          *time.Location
	log          *slog.Logger
}

// NewAdminHandler creates an AdminHandler. Plain dates in audit filters are
// read as days in loc; nil means UTC.
func NewAdminHandler(
	users userAdminService,
	availability availabilityLister,
	comments commentLister,
	audit auditLister,
	loc *time.Location,
	logger *slog.Logger,
) *AdminHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminHandler{
		users:        users,
		availability: availability,
		comments:     comments,
		audit:        audit,
		loc:          loc,
		log:          logger.With("handler", "admin"),
	}
}

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListUsers handles GET /admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items := make([]userResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[userResponse]{Items: items, Total: total})
}

// CreateUser handles POST /admin/users.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.users.CreateUser(r.Context(), user.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     domain.UserRole(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(u))
}

// GetUser handles GET /admin/users/{id}.
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, userDetailResponse{
		userResponse:      toUserResponse(&d.User),
		AvailabilityCount: d.AvailabilityCount,
		CommentCount:      d.CommentCount,
	})
}

// ToggleUser handles POST /admin/users/{id}/toggle.
func (h *AdminHandler) ToggleUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	u, err := h.users.ToggleActive(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// DeleteUser handles DELETE /admin/users/{id}.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListAvailability handles GET /admin/availability.
func (h *AdminHandler) ListAvailability(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var f domain.AvailabilityFilter
	if f.UserID, err = queryUUID(r, "user_id"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		d, err := domain.ParseDate(domain.FieldDate, raw)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		f.Date = &d
	}

	rows, err := h.availability.AdminList(r.Context(), f, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items := toAvailabilityList(rows)
	writeJSON(w, http.StatusOK, listResponse[availabilityResponse]{Items: items, Total: len(items)})
}

// ListComments handles GET /admin/comments.
func (h *AdminHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var f domain.CommentFilter
	if f.UserID, err = queryUUID(r, "user_id"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, err := h.comments.AdminList(r.Context(), f, page)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items := toCommentList(rows)
	writeJSON(w, http.StatusOK, listResponse[commentResponse]{Items: items, Total: len(items)})
}

// AuditLog handles GET /admin/audit.
func (h *AdminHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	f, err := parseAuditFilter(r, h.loc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rows, total, err := h.audit.List(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items := make([]adminActionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toAdminActionResponse(&rows[i]))
	}
	writeJSON(w, http.StatusOK, listResponse[adminActionResponse]{Items: items, Total: total})
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.users.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalUsers:           st.TotalUsers,
		ActiveUsers:          st.ActiveUsers,
		AdminUsers:           st.AdminUsers,
		TotalAvailability:    st.TotalAvailability,
		UpcomingAvailability: st.UpcomingAvailability,
		TotalComments:        st.TotalComments,
	})
}

func parseAuditFilter(r *http.Request, loc *time.Location) (domain.AdminActionFilter, error) {
	q := r.URL.Query()
	page, err := queryPage(r)
	if err != nil {
		return domain.AdminActionFilter{}, err
	}
	f := domain.AdminActionFilter{Limit: page.Limit, Offset: page.Offset}

	if raw := strings.TrimSpace(q.Get("action")); raw != "" {
		kind := domain.AdminActionKind(raw)
		f.Action = &kind
	}
	if raw := strings.TrimSpace(q.Get("target_type")); raw != "" {
		target := domain.TargetType(raw)
		f.TargetType = &target
	}
	if f.AdminUserID, err = queryUUID(r, "admin_user_id"); err != nil {
		return domain.AdminActionFilter{}, err
	}
	if f.From, err = queryTime(r, "from", loc, false); err != nil {
		return domain.AdminActionFilter{}, err
	}
	if f.To, err = queryTime(r, "to", loc, true); err != nil {
		return domain.AdminActionFilter{}, err
	}
	return f, nil
}

// queryTime accepts RFC 3339 timestamps or plain YYYY-MM-DD dates. A plain
// date is midnight in loc, and as an upper bound it covers the whole day.
func queryTime(r *http.Request, name string, loc *time.Location, upper bool) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, loc)
	if err != nil {
		return nil, domain.NewValidationError(name, domain.RuleFormat, name+" must be a date or an RFC 3339 timestamp")
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
