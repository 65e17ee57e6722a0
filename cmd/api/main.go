// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Command api is the entry point for the Toma Beauty HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Connect to object storage.
//  7. Run the seed pass (sections, tips, bootstrap admin).
//  8. Wire HTTP handlers.
//  9. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomabeauty/toma/internal/api"
	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/core/section"
	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/config"
	"github.com/tomabeauty/toma/internal/platform/constants"
	"github.com/tomabeauty/toma/internal/platform/migration"
	pgstore "github.com/tomabeauty/toma/internal/platform/postgres"
	redisstore "github.com/tomabeauty/toma/internal/platform/redis"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/internal/platform/storage"
	"github.com/tomabeauty/toma/internal/seed"
	"github.com/tomabeauty/toma/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "toma"))
	slog.SetDefault(log)

	log.Info("[Toma] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "toma"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)
	if cfg.DevFallbackActive() {
		log.Warn("dev_admin_fallback_enabled")
	}

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Object Storage ─────────────────────────────────────────────────
	objectStore, err := storage.NewMinioStore(startupCtx, cfg, log)
	must(log, err, "connect to object storage")

	// ── 7. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	verifier := auth.NewDevFallbackVerifier(jwtSvc, cfg.DevFallbackActive())

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	accountRepository := auth.NewAccountRepository(pool)
	sessionRepository := auth.NewSessionRepository(pool)
	sessionCache := auth.NewSessionCache(rdb)
	authService := auth.NewService(accountRepository, sessionRepository, sessionCache, jwtSvc, log)
	authHandler := auth.NewHandler(authService)

	ingestor := media.NewIngestor(objectStore, log)

	articleService := article.NewService(article.NewPostgresRepository(pool), ingestor, log)
	routineService := routine.NewService(routine.NewPostgresRepository(pool), log)
	remedyService := remedy.NewService(remedy.NewPostgresRepository(pool), log)
	sectionService := section.NewService(section.NewPostgresRepository(pool), log)
	tipService := tip.NewService(tip.NewPostgresRepository(pool), log)

	// ── 10. Seed Pass ─────────────────────────────────────────────────────
	seeder := seed.New(
		cfg,
		section.NewPostgresRepository(pool),
		tip.NewPostgresRepository(pool),
		articleService,
		routineService,
		remedyService,
		authService,
		log,
	)
	must(log, seeder.Run(startupCtx), "run seed pass")

	// ── 11. Session Housekeeping ──────────────────────────────────────────
	housekeepingCtx, housekeepingCancel := context.WithCancel(context.Background())
	defer housekeepingCancel()
	go expireSessions(housekeepingCtx, sessionRepository, log)

	// ── 12. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Article:   article.NewHandler(articleService),
		Routine:   routine.NewHandler(routineService),
		Remedy:    remedy.NewHandler(remedyService),
		Section:   section.NewHandler(sectionService),
		Tip:       tip.NewHandler(tipService),
		Legacy: api.NewLegacyHandler(
			articleService,
			routineService,
			remedyService,
			sectionService,
			tipService,
			authService,
		),
	}

	server := api.NewServer(housekeepingCtx, cfg, log, verifier, handlers)

	// ── 13. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// expireSessions periodically removes refresh sessions past their expiry.
// Deletion is housekeeping only: expired rows are already refused by every
// session lookup, so a missed tick never extends a session's life.
func expireSessions(ctx context.Context, sessions auth.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Error("session cleanup failed", slog.Any("error", err))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
