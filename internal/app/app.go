package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/court-scheduler/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/court-scheduler/internal/adapter/postgres/audit"
	availabilityrepo "github.com/heartmarshall/court-scheduler/internal/adapter/postgres/availability"
	commentrepo "github.com/heartmarshall/court-scheduler/internal/adapter/postgres/comment"
	userrepo "github.com/heartmarshall/court-scheduler/internal/adapter/postgres/user"
	"github.com/heartmarshall/court-scheduler/internal/auth"
	"github.com/heartmarshall/court-scheduler/internal/config"
	"github.com/heartmarshall/court-scheduler/internal/service/audit"
	authsvc "github.com/heartmarshall/court-scheduler/internal/service/auth"
	"github.com/heartmarshall/court-scheduler/internal/service/availability"
	"github.com/heartmarshall/court-scheduler/internal/service/comment"
	"github.com/heartmarshall/court-scheduler/internal/service/user"
	"github.com/heartmarshall/court-scheduler/internal/transport/middleware"
	"github.com/heartmarshall/court-scheduler/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Schedule.Timezone),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	handler, stop := NewHandler(cfg, pool, logger)
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories, services and transport on top of pool and
// returns the complete HTTP handler. stop releases background resources.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (handler http.Handler, stop func()) {
	// Repositories
	users := userrepo.New(pool)
	entries := availabilityrepo.New(pool)
	comments := commentrepo.New(pool)
	actions := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	auditService := audit.NewService(logger, actions)
	authService := authsvc.NewService(logger, users, jwt, cfg.Auth)
	userService := user.NewService(logger, users, entries, comments, auditService, tx,
		cfg.Auth.PasswordHashCost, cfg.Schedule.Location)
	availabilityService := availability.NewService(logger, entries, users, auditService, tx, cfg.Schedule.Location)
	commentService := comment.NewService(logger, comments, users, auditService, tx, cfg.Schedule.RecentCommentsLimit)

	// Transport
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, Version),
		Auth:         rest.NewAuthHandler(authService, logger),
		Availability: rest.NewAvailabilityHandler(availabilityService, logger),
		Comments:     rest.NewCommentHandler(commentService, logger),
		Admin:        rest.NewAdminHandler(userService, availabilityService, commentService, auditService, cfg.Schedule.Location, logger),
	}, limiter, cfg.RateLimit)

	handler = middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, logger),
		middleware.Logger(logger),
	)(router)

	return handler, limiter.Stop
}
