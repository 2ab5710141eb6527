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

	"retailbank/internal/adapter/client"
	"retailbank/internal/adapter/handler"
	"retailbank/internal/adapter/storage"
	"retailbank/internal/core/config"
	"retailbank/internal/core/intake"
	"retailbank/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Pick the transaction store: Postgres when configured, in-memory otherwise
	var store intake.TransactionStore
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
		store = storage.NewTransactionRepository(pool)
		slog.Info("Using Postgres transaction store")
	} else {
		store = storage.NewMemoryTransactionStore()
		slog.Warn("No DATABASE_URL set, using in-memory transaction store")
	}

	// 4. Wire collaborators and the intake pipeline
	verifier := client.NewAccountClient(cfg.AccountURL)
	fraud := client.NewFraudClient(cfg.FraudURL)

	notifier := worker.NewNotifier(cfg.WebhookURL, cfg.WebhookSecret)
	notifier.Start()

	svc := intake.NewService(store, verifier, fraud)
	svc.Notifier = notifier

	transactionHandler := &handler.TransactionHandler{Svc: svc}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	// 6. Routes
	app.Get("/health", handler.Health("transaction-service", cfg.Env))
	app.Get("/ready", handler.Health("transaction-service", cfg.Env))

	api := app.Group("/api/v1")
	api.Post("/transactions", transactionHandler.Create)
	api.Get("/transactions", transactionHandler.List)
	api.Get("/transactions/:id", transactionHandler.Get)

	// 7. Run with graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Transaction service starting", "env", cfg.Env, "port", cfg.Port)
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
