package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"retailbank/internal/core/domain"
)

// AccountStore is the registry the account endpoints work against.
type AccountStore interface {
	NextID(ctx context.Context) (string, error)
	Put(ctx context.Context, acc *domain.Account) error
	Get(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, customerID string) ([]domain.Account, error)
}

type AccountHandler struct {
	Store AccountStore
}

func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var req domain.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CustomerID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Customer ID is required"})
	}
	if req.AccountNumber == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Account number is required"})
	}
	if req.Currency == "" {
		req.Currency = "USD"
	}

	id, err := h.Store.NextID(c.Context())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create account"})
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:            id,
		CustomerID:    req.CustomerID,
		AccountNumber: req.AccountNumber,
		Balance:       req.InitialBalance,
		Currency:      req.Currency,
		Status:        domain.AccountActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := h.Store.Put(c.Context(), account); err != nil {
		slog.Error("Failed to create account", "error", err, "customer_id", req.CustomerID)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create account"})
	}

	slog.Info("✅ Account created", "account_id", account.ID, "customer_id", account.CustomerID)
	return c.Status(http.StatusCreated).JSON(account)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	account, err := h.Store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch account"})
	}
	return c.JSON(account)
}

// List returns accounts, filtered by the customer_id query param
// (or the X-Customer-ID header, for older callers).
func (h *AccountHandler) List(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	if customerID == "" {
		customerID = c.Get("X-Customer-ID")
	}

	accounts, err := h.Store.List(c.Context(), customerID)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not list accounts"})
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return c.JSON(accounts)
}

func (h *AccountHandler) Suspend(c *fiber.Ctx) error {
	return h.setStatus(c, domain.AccountSuspended)
}

func (h *AccountHandler) Activate(c *fiber.Ctx) error {
	return h.setStatus(c, domain.AccountActive)
}

func (h *AccountHandler) setStatus(c *fiber.Ctx, status domain.AccountStatus) error {
	account, err := h.Store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch account"})
	}

	account.Status = status
	account.UpdatedAt = time.Now().UTC()
	if err := h.Store.Put(c.Context(), account); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update account"})
	}

	slog.Info("Account status changed", "account_id", account.ID, "status", status)
	return c.JSON(account)
}
