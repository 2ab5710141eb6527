package scoring

import (
	"math"
	"time"

	"retailbank/internal/core/domain"
)

// Credit scores live on the standard 300-850 scale.
const (
	creditBase = 750
	creditMin  = 300
	creditMax  = 850
)

// ScoreApplication maps an applicant's features to a graded credit decision.
// It is deterministic: identical input always produces an identical assessment.
func ScoreApplication(req *domain.CreditApplication) *domain.CreditAssessment {
	score := creditBase

	// 1. Income factor
	if req.IncomeAnnual < 30000 {
		score -= 150
	} else if req.IncomeAnnual < 60000 {
		score -= 50
	} else if req.IncomeAnnual > 120000 {
		score += 50
	}

	// 2. Debt-to-income ratio
	dti := req.DebtExisting / math.Max(req.IncomeAnnual, 1)
	if dti > 0.5 {
		score -= 200
	} else if dti > 0.3 {
		score -= 100
	} else if dti < 0.1 {
		score += 50
	}

	// 3. Credit history length
	if req.CreditHistoryYears < 2 {
		score -= 100
	} else if req.CreditHistoryYears > 10 {
		score += 50
	}

	// 4. Recent delinquencies (unbounded before the clamp)
	score -= req.RecentDelinquencies * 50

	// 5. Employment
	switch req.EmploymentType {
	case domain.EmploymentFullTime:
		score += 30
	case domain.EmploymentUnemployed:
		score -= 200
	}

	// Clamp to the valid range
	if score < creditMin {
		score = creditMin
	}
	if score > creditMax {
		score = creditMax
	}

	grade, decision := gradeFor(score)

	multiplier := 2.0
	if decision == domain.DecisionApproved {
		multiplier = 4.0
	}
	interestRate := 5.0 + float64(creditMax-score)/50

	// Explanation factors are independent checks over the original
	// inputs and the final score; several may co-occur.
	factors := []string{}
	if req.IncomeAnnual < 60000 {
		factors = append(factors, "Low income")
	}
	if dti > 0.3 {
		factors = append(factors, "High debt-to-income ratio")
	}
	if req.RecentDelinquencies > 0 {
		factors = append(factors, "Recent delinquencies")
	}
	if req.CreditHistoryYears < 2 {
		factors = append(factors, "Limited credit history")
	}
	if req.EmploymentType == domain.EmploymentUnemployed {
		factors = append(factors, "Unemployed")
	}
	if score >= 750 {
		factors = append(factors, "Excellent credit profile")
	}

	return &domain.CreditAssessment{
		ApplicantID:     req.ApplicantID,
		Score:           score,
		Grade:           grade,
		Decision:        decision,
		MaxLoanAmount:   req.IncomeAnnual * multiplier,
		InterestRatePct: math.Round(interestRate*100) / 100,
		Factors:         factors,
		EvaluatedAt:     time.Now().UTC(),
	}
}

func gradeFor(score int) (domain.CreditGrade, domain.CreditDecision) {
	switch {
	case score >= 750:
		return "A", domain.DecisionApproved
	case score >= 700:
		return "B", domain.DecisionApproved
	case score >= 650:
		return "C", domain.DecisionManualReview
	case score >= 600:
		return "D", domain.DecisionManualReview
	case score >= 550:
		return "E", domain.DecisionRejected
	default:
		return "F", domain.DecisionRejected
	}
}
