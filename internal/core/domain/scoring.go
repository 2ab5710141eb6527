package domain

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// FraudCheckRequest carries the transaction features the fraud engine scores.
type FraudCheckRequest struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Amount        float64         `json:"amount"`
	Kind          TransactionKind `json:"transaction_type"`
	Description   string          `json:"description"`
}

// FraudVerdict is the fraud engine's graded assessment of one transaction.
// Every call produces a fresh verdict; the engine keeps no memory of prior calls.
type FraudVerdict struct {
	TransactionID string    `json:"transaction_id"`
	IsFraud       bool      `json:"is_fraud"`
	FraudScore    float64   `json:"fraud_score"`
	RiskLevel     RiskLevel `json:"risk_level"`
	Reasons       []string  `json:"reasons"`
	CheckedAt     time.Time `json:"checked_at"`
}

type EmploymentType string

const (
	EmploymentFullTime     EmploymentType = "FULL_TIME"
	EmploymentPartTime     EmploymentType = "PART_TIME"
	EmploymentSelfEmployed EmploymentType = "SELF_EMPLOYED"
	EmploymentUnemployed   EmploymentType = "UNEMPLOYED"
)

type LoanPurpose string

const (
	PurposeHomeLoan LoanPurpose = "HOME_LOAN"
	PurposeAutoLoan LoanPurpose = "AUTO_LOAN"
	PurposePersonal LoanPurpose = "PERSONAL"
	PurposeBusiness LoanPurpose = "BUSINESS"
)

type CreditGrade string

type CreditDecision string

const (
	DecisionApproved     CreditDecision = "APPROVED"
	DecisionManualReview CreditDecision = "MANUAL_REVIEW"
	DecisionRejected     CreditDecision = "REJECTED"
)

// CreditApplication is the applicant feature set the credit engine scores.
type CreditApplication struct {
	ApplicantID         string         `json:"applicant_id"`
	IncomeAnnual        float64        `json:"income_annual"`
	DebtExisting        float64        `json:"debt_existing"`
	CreditHistoryYears  int            `json:"credit_history_length_years"`
	NumCreditLines      int            `json:"num_credit_lines"`
	RecentDelinquencies int            `json:"recent_delinquencies"`
	EmploymentType      EmploymentType `json:"employment_type"`
	LoanAmount          float64        `json:"loan_amount"`
	LoanPurpose         LoanPurpose    `json:"loan_purpose"`
}

// CreditAssessment is the credit engine's graded decision plus explanation.
type CreditAssessment struct {
	ApplicantID     string         `json:"applicant_id"`
	Score           int            `json:"score"`
	Grade           CreditGrade    `json:"grade"`
	Decision        CreditDecision `json:"decision"`
	MaxLoanAmount   float64        `json:"max_loan_amount"`
	InterestRatePct float64        `json:"interest_rate_pct"`
	Factors         []string       `json:"factors"`
	EvaluatedAt     time.Time      `json:"evaluated_at"`
}
