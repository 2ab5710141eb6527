package scoring

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"retailbank/internal/core/domain"
)

// Fraud decision threshold: anything above this is flagged.
const fraudThreshold = 0.7

// FraudEngine scores a transaction's features into a fraud verdict.
// It is stateless apart from its clock and jitter source, which are
// injectable so tests can pin exact outputs.
type FraudEngine struct {
	now    func() time.Time
	jitter func() float64
}

// NewFraudEngine returns an engine using the real clock and a uniform
// random perturbation in [-0.1, +0.1] to emulate model noise.
func NewFraudEngine() *FraudEngine {
	return NewFraudEngineWith(time.Now, func() float64 {
		return rand.Float64()*0.2 - 0.1
	})
}

// NewFraudEngineWith builds an engine with a custom clock and jitter source.
func NewFraudEngineWith(now func() time.Time, jitter func() float64) *FraudEngine {
	return &FraudEngine{now: now, jitter: jitter}
}

// Check runs the weighted rule ladder over the request's features.
func (e *FraudEngine) Check(req *domain.FraudCheckRequest) *domain.FraudVerdict {
	score := 0.0
	reasons := []string{}

	// 1. Amount-based risk
	if req.Amount > 10000 {
		score += 0.4
		reasons = append(reasons, "High transaction amount")
	} else if req.Amount > 5000 {
		score += 0.2
		reasons = append(reasons, "Moderate transaction amount")
	}

	// 2. Time-based risk. Read from the clock at evaluation time, not
	// from the request: this is ambient context, not transaction content.
	hour := e.now().Hour()
	if hour < 6 || hour >= 22 {
		score += 0.3
		reasons = append(reasons, "Unusual transaction time")
	}

	// 3. Transaction type risk
	if req.Kind == domain.Debit {
		score += 0.1
	}

	// 4. Account pattern risk
	if strings.Contains(strings.ToLower(req.AccountID), "test") {
		score += 0.5
		reasons = append(reasons, "Suspicious account pattern")
	}

	// 5. Model noise, then clamp to [0, 1]
	score += e.jitter()
	score = math.Max(0.0, math.Min(1.0, score))

	// Decide on the unrounded score; round only for presentation.
	return &domain.FraudVerdict{
		TransactionID: req.TransactionID,
		IsFraud:       score > fraudThreshold,
		FraudScore:    math.Round(score*1000) / 1000,
		RiskLevel:     riskLevel(score),
		Reasons:       reasons,
		CheckedAt:     e.now().UTC(),
	}
}

func riskLevel(score float64) domain.RiskLevel {
	switch {
	case score <= 0.3:
		return domain.RiskLow
	case score <= fraudThreshold:
		return domain.RiskMedium
	default:
		return domain.RiskHigh
	}
}
