package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"retailbank/internal/adapter/handler"
	"retailbank/internal/core/config"
	"retailbank/internal/core/scoring"
)

func main() {
	cfg := config.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	fraudHandler := &handler.FraudHandler{Engine: scoring.NewFraudEngine()}
	creditHandler := &handler.CreditHandler{}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	app.Get("/health", handler.Health("scoring-service", cfg.Env))
	app.Get("/ready", handler.Health("scoring-service", cfg.Env))

	api := app.Group("/api/v1")
	api.Post("/check", fraudHandler.Check)
	api.Get("/model/info", fraudHandler.ModelInfo)
	api.Post("/score", creditHandler.Score)
	api.Get("/score/:applicant_id", creditHandler.GetScore)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("🚀 Scoring service starting", "env", cfg.Env, "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	<-stop
	slog.Info("🛑 Shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("👋 Server exited successfully")
}
