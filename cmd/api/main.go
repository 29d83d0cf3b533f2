package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/cmd/app"
	"portfolio/internal/config"
	handlers "portfolio/internal/handler"
	"portfolio/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()
	logger := setupLogger(cfg.LogLevel)

	if cfg.Admin.JWTSecretKey == "" {
		logger.Error("JWT_SECRET_KEY is not set")
		os.Exit(1)
	}
	if cfg.Admin.Secret == "" && cfg.Admin.SecretHash == "" {
		logger.Warn("no admin secret configured, admin login will always fail")
	}

	application := app.New(cfg, logger)
	defer application.Close()

	h := handlers.NewHandlers(application.Services, application.DB, cfg, logger)
	router := h.Routes(middleware.AdminAuth(h.AuthGate, logger))

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
		middleware.RecoverMiddleware(logger),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           handlerChain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "addr", server.Addr, "database", cfg.DB.DbNAME)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
