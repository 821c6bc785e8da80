package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/moodkeeper/internal/ratelimit"
	"github.com/iudanet/moodkeeper/internal/server/handlers"
	"github.com/iudanet/moodkeeper/internal/server/hub"
	"github.com/iudanet/moodkeeper/internal/server/jwt"
	"github.com/iudanet/moodkeeper/internal/server/middleware"
	"github.com/iudanet/moodkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout  = 10 * time.Second
	tokenSweepPeriod = time.Hour
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "moodkeeper.db", "Path to SQLite database")
	accessTTL := flag.Duration("access-ttl", 15*time.Minute, "Access token TTL")
	refreshTTL := flag.Duration("refresh-ttl", 720*time.Hour, "Refresh token TTL")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *addr, *dbPath, *accessTTL, *refreshTTL); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, accessTTL, refreshTTL time.Duration) error {
	// Секрет подписи токенов только из окружения, не из флагов
	secret := os.Getenv("MOODKEEPER_JWT_SECRET")
	if secret == "" {
		return errors.New("MOODKEEPER_JWT_SECRET environment variable is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	jwtConfig := jwt.Config{
		Secret:          []byte(secret),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,
	}

	// Бакеты rate limiter'а живут в том же SQLite, что и остальные данные:
	// лимиты переживают рестарт и разделяются между экземплярами на общей БД
	limiter := ratelimit.New(store, logger)
	journalHub := hub.New(logger, store)

	authHandler := handlers.NewAuthHandler(logger, store, store, jwtConfig)
	journalHandler := handlers.NewJournalHandler(logger, store, journalHub)
	settingsHandler := handlers.NewSettingsHandler(logger, store)
	subscribeHandler := handlers.NewSubscribeHandler(logger, journalHub)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMw := middleware.AuthMiddleware(logger, jwtConfig)

	// Неаутентифицированные auth эндпоинты лимитируются по IP
	// чувствительным пресетом
	authLimited := func(operation string, h http.HandlerFunc) http.Handler {
		return middleware.RateLimitMiddleware(limiter, operation, ratelimit.PresetSensitive, logger)(h)
	}

	// Защищенные эндпоинты: сначала auth (caller identity из токена),
	// затем лимит класса операции
	protected := func(operation string, cfg ratelimit.Config, h http.HandlerFunc) http.Handler {
		return authMw(middleware.RateLimitMiddleware(limiter, operation, cfg, logger)(h))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.Handle("POST /api/v1/auth/register", authLimited("register", authHandler.Register))
	mux.Handle("POST /api/v1/auth/login", authLimited("login", authHandler.Login))
	mux.Handle("POST /api/v1/auth/refresh", authLimited("refresh", authHandler.Refresh))
	mux.Handle("POST /api/v1/auth/logout", protected("logout", ratelimit.PresetStandard, authHandler.Logout))

	mux.Handle("PUT /api/v1/journal/entries", protected("upsert_entry", ratelimit.PresetStandard, journalHandler.Upsert))
	mux.Handle("DELETE /api/v1/journal/entries/{id}", protected("delete_entry", ratelimit.PresetStandard, journalHandler.Delete))
	mux.Handle("GET /api/v1/journal/entries", protected("list_entries", ratelimit.PresetBulk, journalHandler.List))
	mux.Handle("GET /api/v1/journal/subscribe", protected("subscribe", ratelimit.PresetBulk, subscribeHandler.Subscribe))

	mux.Handle("GET /api/v1/settings", protected("get_settings", ratelimit.PresetBulk, settingsHandler.Get))
	mux.Handle("PUT /api/v1/settings", protected("put_settings", ratelimit.PresetStandard, settingsHandler.Put))

	root := middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
		middleware.RecoveryMiddleware(logger)(mux),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Фоновая чистка истекших refresh tokens
	go sweepExpiredTokens(ctx, logger, store)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// sweepExpiredTokens периодически удаляет истекшие refresh tokens
func sweepExpiredTokens(ctx context.Context, logger *slog.Logger, store *sqlite.Storage) {
	ticker := time.NewTicker(tokenSweepPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := store.DeleteExpiredTokens(ctx)
			if err != nil {
				logger.Error("failed to sweep expired tokens", "error", err)
				continue
			}
			if deleted > 0 {
				logger.Info("expired refresh tokens removed", "count", deleted)
			}
		case <-ctx.Done():
			return
		}
	}
}

func printVersion() {
	fmt.Printf("MoodKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
