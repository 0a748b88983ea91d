package rest

import (
	"net/http"

	"github.com/heartmarshall/court-scheduler/internal/config"
	"github.com/heartmarshall/court-scheduler/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health       *HealthHandler
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Comments     *CommentHandler
	Admin        *AdminHandler
}

// NewRouter registers every route. Authentication itself is resolved by the
// outer middleware chain; this only enforces who may reach each route.
func NewRouter(h Handlers, limiter *middleware.RateLimiter, cfg config.RateLimitConfig) http.Handler {
	mux := http.NewServeMux()

	login := limiter.Limit("login", cfg.LoginPerMinute)
	api := limiter.Limit("api", cfg.RequestsPerMinute)

	user := func(fn http.HandlerFunc) http.Handler {
		return api(middleware.RequireUser(fn))
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return api(middleware.AdminOnly(fn))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/login", login(http.HandlerFunc(h.Auth.Login)))
	mux.Handle("GET /auth/me", user(h.Auth.Me))
	mux.Handle("POST /auth/password", user(h.Auth.ChangePassword))

	mux.Handle("GET /availability", user(h.Availability.List))
	mux.Handle("GET /availability/mine", user(h.Availability.Mine))
	mux.Handle("POST /availability", user(h.Availability.Create))
	mux.Handle("PUT /availability/{id}", user(h.Availability.Update))
	mux.Handle("DELETE /availability/{id}", user(h.Availability.Delete))

	mux.Handle("GET /comments", user(h.Comments.List))
	mux.Handle("POST /comments", user(h.Comments.Create))
	mux.Handle("PUT /comments/{id}", user(h.Comments.Update))
	mux.Handle("DELETE /comments/{id}", user(h.Comments.Delete))

	mux.Handle("GET /admin/users", admin(h.Admin.ListUsers))
	mux.Handle("POST /admin/users", admin(h.Admin.CreateUser))
	mux.Handle("GET /admin/users/{id}", admin(h.Admin.GetUser))
	mux.Handle("POST /admin/users/{id}/toggle", admin(h.Admin.ToggleUser))
	mux.Handle("DELETE /admin/users/{id}", admin(h.Admin.DeleteUser))
	mux.Handle("GET /admin/availability", admin(h.Admin.ListAvailability))
	mux.Handle("GET /admin/comments", admin(h.Admin.ListComments))
	mux.Handle("GET /admin/audit", admin(h.Admin.AuditLog))
	mux.Handle("GET /admin/stats", admin(h.Admin.Stats))

	return mux
}
