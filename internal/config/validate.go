package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.LoginPerMinute <= 0 {
		return fmt.Errorf("rate_limit: limits must be > 0")
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit: cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}
	return nil
}

func (a *AuthConfig) validate() error {
	if a.PasswordHashCost < bcrypt.MinCost || a.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("password_hash_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.PasswordHashCost)
	}
	if a.AccessTokenTTL <= 0 {
		return fmt.Errorf("access_token_ttl must be > 0 (got %v)", a.AccessTokenTTL)
	}
	if a.LoginMaxAttempts <= 0 {
		return fmt.Errorf("login_max_attempts must be > 0 (got %d)", a.LoginMaxAttempts)
	}
	if a.LoginLockout < time.Second {
		return fmt.Errorf("login_lockout must be at least 1s (got %v)", a.LoginLockout)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	name := strings.TrimSpace(s.Timezone)
	if name == "" {
		name = "UTC"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", s.Timezone, err)
	}
	s.Location = loc

	if s.RecentCommentsLimit <= 0 {
		return fmt.Errorf("recent_comments_limit must be > 0 (got %d)", s.RecentCommentsLimit)
	}
	if s.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", s.RetentionDays)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	return nil
}
