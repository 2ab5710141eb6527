package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"retailbank/internal/core/domain"
	"retailbank/internal/core/scoring"
)

type FraudHandler struct {
	Engine *scoring.FraudEngine
}

// Check scores one transaction's features and returns the verdict.
func (h *FraudHandler) Check(c *fiber.Ctx) error {
	var req domain.FraudCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	return c.JSON(h.Engine.Check(&req))
}

// ModelInfo describes the rule set behind the scoring.
func (h *FraudHandler) ModelInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"model_type": "hardcoded_ml_logic",
		"version":    "1.0.0",
		"features": []string{
			"transaction_amount",
			"transaction_type",
			"transaction_time",
			"account_pattern",
		},
		"threshold":    0.7,
		"last_trained": "2024-01-01T00:00:00Z",
	})
}
