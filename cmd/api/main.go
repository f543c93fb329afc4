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

	"pet-health-tracker/internal/adapters/auth/password"
	"pet-health-tracker/internal/adapters/auth/token"
	"pet-health-tracker/internal/adapters/storage"
	"pet-health-tracker/internal/platform/config"
	"pet-health-tracker/internal/platform/logger"
	"pet-health-tracker/internal/router"
)

// @title Pet Health Tracker API
// @version 1.0
// @description Mascotas y su historial de salud por cuenta: registros, medicaciones, vacunas y visitas veterinarias.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token JWT con el prefijo Bearer.
func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	// logger provisorio hasta tener la config
	slog.SetDefault(logger.NewFromEnv())

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	slog.SetDefault(log)

	if cfg.UsingDevSecret() {
		log.Warn("AUTH_DEV_MODE without JWT_SECRET: using an insecure development secret")
	}
	if cfg.Auth.DevMode {
		log.Warn("AUTH_DEV_MODE enabled: X-Debug-User-ID is accepted as identity")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Error("close storage", slog.Any("err", err))
		}
	}()

	tokens, err := token.NewService(token.Config{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.Issuer,
		TTL:    cfg.Auth.TokenTTL.Duration(),
	})
	if err != nil {
		return err
	}

	r := router.NewRouter(router.Options{
		Logger:       log,
		Repos:        repos,
		Verifier:     tokens,
		Issuer:       tokens,
		Hasher:       password.NewHasher(),
		DevAuth:      cfg.Auth.DevMode,
		CORSOrigins:  cfg.CORSOrigins,
		CookieSecure: cfg.Auth.CookieSecure,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server",
			slog.String("addr", cfg.Addr()),
			slog.String("storage", repos.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
