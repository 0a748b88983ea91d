// Command create-admin bootstraps an administrator account. If the username
// already exists the account is promoted to admin and reactivated instead.
//
// Usage:
//
//	create-admin --username=admin
//
// The password is read from --password or the ADMIN_PASSWORD environment
// variable. Database and hashing settings come from the regular config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/court-scheduler/internal/adapter/postgres/user"
	"github.com/heartmarshall/court-scheduler/internal/config"
	"github.com/heartmarshall/court-scheduler/internal/domain"
)

func main() {
	username := flag.String("username", "admin", "username of the administrator")
	password := flag.String("password", "", "password for a new account (default $ADMIN_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("ADMIN_PASSWORD")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	users := user.New(pool)
	now := time.Now()

	existing, err := users.GetByUsername(ctx, *username)
	switch {
	case err == nil:
		if existing.Role.IsAdmin() && existing.IsActive {
			fmt.Printf("User %q is already an active admin.\n", existing.Username)
			return
		}
		role, active := domain.UserRoleAdmin, true
		if err := existing.Update(domain.UserUpdate{Role: &role, IsActive: &active}, cfg.Auth.PasswordHashCost, now); err != nil {
			log.Fatalf("promote: %v", err)
		}
		if err := users.Update(ctx, existing); err != nil {
			log.Fatalf("promote: %v", err)
		}
		fmt.Printf("User %q promoted to admin.\n", existing.Username)
	case errors.Is(err, domain.ErrNotFound):
		if *password == "" {
			fmt.Fprintln(os.Stderr, "Usage: create-admin --username=admin --password=... (or set ADMIN_PASSWORD)")
			os.Exit(1)
		}
		u, err := domain.NewUser(*username, *password, domain.UserRoleAdmin, cfg.Auth.PasswordHashCost, now)
		if err != nil {
			log.Fatalf("create admin: %v", err)
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		fmt.Printf("Admin %q created.\n", u.Username)
	default:
		log.Fatalf("look up user: %v", err)
	}
}
