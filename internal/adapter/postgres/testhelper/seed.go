package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

// SeedPassword is the plain-text password of every seeded user.
const SeedPassword = "secret123"

// seedHash is a bcrypt (cost 4) hash of SeedPassword, computed once.
var seedHash = func() string {
	h, err := domain.HashPassword(SeedPassword, 4)
	if err != nil {
		panic(err)
	}
	return h
}()

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts an active user with the given role and a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Username:     "u_" + uniqueSuffix(),
		PasswordHash: seedHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.PasswordHash, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedAvailability inserts an availability row without domain validation, so
// past dates can be seeded.
func SeedAvailability(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date civil.Date, start, end civil.Time) domain.Availability {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Availability{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO availability (id, user_id, date, start_time, end_time, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, postgres.DateValue(a.Date), postgres.TimeValue(a.StartTime), postgres.TimeValue(a.EndTime),
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAvailability: %v", err)
	}
	return a
}

// SeedComment inserts a comment with the given content.
func SeedComment(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, content string) domain.Comment {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, user_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.Content, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return c
}

// CountRows returns the number of rows in table matching "user_id = $1".
func CountRows(t *testing.T, pool *pgxpool.Pool, table string, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM `+table+` WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRows(%s): %v", table, err)
	}
	return n
}
