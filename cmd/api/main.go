package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/auth"
	"github.com/01moynul/umkm-web-golang/internal/cache"
	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/01moynul/umkm-web-golang/internal/database"
	"github.com/01moynul/umkm-web-golang/internal/email"
	"github.com/01moynul/umkm-web-golang/internal/handlers"
	"github.com/01moynul/umkm-web-golang/internal/logger"
	"github.com/01moynul/umkm-web-golang/internal/realtime"
	"github.com/01moynul/umkm-web-golang/internal/routes"
	"github.com/01moynul/umkm-web-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 0. --- Load Environment Variables (.env) ---
	envErr := godotenv.Load()

	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// 1. --- Logger ---
	log, err := logger.New(cfg.Logger, cfg.IsDevelopment())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()
	if envErr != nil {
		log.Warn("could not load .env file, relying on system environment variables")
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// 2. --- Database ---
	db, err := database.OpenDB(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
		log.Info("database schema is up to date")
	}

	// 3. --- Cache (optional) ---
	c, closeCache, err := cache.Open(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer closeCache()
	if cfg.Redis.Addr == "" {
		log.Info("REDIS_ADDR not set, caching disabled")
	}

	hub := realtime.NewHub()

	// --- Application Setup ---
	app := &handlers.Handlers{
		Store:          store.New(db),
		Tokens:         auth.NewTokenManager(cfg.JWT.SecretKey, cfg.JWT.TTL),
		Hub:            hub,
		Cache:          c,
		Mailer:         &email.LogSender{Log: log},
		Log:            log,
		Upload:         cfg.Upload,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	return serve(cfg.Server.HTTPPort, routes.SetupRouter(app), hub, log)
}

// serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down.
func serve(addr string, handler http.Handler, hub *realtime.Hub, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting UMKM web API server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("received signal, shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Websocket connections are hijacked and not tracked by Shutdown.
	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
