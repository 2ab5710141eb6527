package handler

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"retailbank/internal/core/domain"
	"retailbank/internal/core/scoring"
)

type CreditHandler struct{}

// Score grades one credit application.
func (h *CreditHandler) Score(c *fiber.Ctx) error {
	var req domain.CreditApplication
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	return c.JSON(scoring.ScoreApplication(&req))
}

// GetScore returns the canonical demo assessment for an applicant id.
func (h *CreditHandler) GetScore(c *fiber.Ctx) error {
	req := &domain.CreditApplication{
		ApplicantID:         c.Params("applicant_id"),
		IncomeAnnual:        75000,
		DebtExisting:        15000,
		CreditHistoryYears:  8,
		NumCreditLines:      5,
		RecentDelinquencies: 0,
		EmploymentType:      domain.EmploymentFullTime,
		LoanAmount:          25000,
		LoanPurpose:         domain.PurposePersonal,
	}
	return c.JSON(scoring.ScoreApplication(req))
}
