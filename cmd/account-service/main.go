package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	"retailbank/internal/adapter/handler"
	"retailbank/internal/adapter/storage"
	"retailbank/internal/core/config"
)

func main() {
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Postgres registry when configured, seeded in-memory registry otherwise
	var store handler.AccountStore
	var dbPool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err := storage.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			slog.Error("❌ Database connection failed", "error", err)
			os.Exit(1)
		}
		if err := storage.EnsureSchema(context.Background(), pool); err != nil {
			slog.Error("❌ Schema setup failed", "error", err)
			os.Exit(1)
		}
		dbPool = pool
		store = storage.NewAccountRepository(pool)
		slog.Info("Using Postgres account store")
	} else {
		memStore := storage.NewMemoryAccountStore()
		if err := storage.SeedDemoAccounts(context.Background(), memStore); err != nil {
			slog.Error("Failed to seed demo accounts", "error", err)
			os.Exit(1)
		}
		store = memStore
		slog.Warn("No DATABASE_URL set, using seeded in-memory account store")
	}

	accountHandler := &handler.AccountHandler{Store: store}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	app.Get("/health", handler.Health("account-service", cfg.Env))
	app.Get("/ready", handler.Health("account-service", cfg.Env))

	api := app.Group("/api/v1")
	api.Post("/accounts", accountHandler.Create)
	api.Get("/accounts", accountHandler.List)
	api.Get("/accounts/:id", accountHandler.Get)
	api.Put("/accounts/:id/suspend", accountHandler.Suspend)
	api.Put("/accounts/:id/activate", accountHandler.Activate)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Account service starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if dbPool != nil {
		dbPool.Close()
		slog.Info("✅ Database connection closed")
	}

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("👋 Server exited successfully")
}
