package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"retailbank/internal/core/domain"
	"retailbank/internal/core/intake"
)

type TransactionHandler struct {
	Svc *intake.Service
}

// Create runs the full intake pipeline and returns the final transaction.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	txn, err := h.Svc.Create(c.Context(), &req)
	if errors.Is(err, intake.ErrInvalidAmount) || errors.Is(err, intake.ErrUnknownAccount) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		slog.Error("Failed to create transaction", "error", err, "account_id", req.AccountID)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create transaction"})
	}

	return c.JSON(txn)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	txn, err := h.Svc.Get(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch transaction"})
	}
	return c.JSON(txn)
}

// List returns transactions, filtered by the account_id query param
// (or the X-Account-ID header, for older callers).
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	accountID := c.Query("account_id")
	if accountID == "" {
		accountID = c.Get("X-Account-ID")
	}

	txns, err := h.Svc.List(c.Context(), accountID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list transactions"})
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return c.JSON(txns)
}
