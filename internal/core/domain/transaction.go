package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when a key does not exist.
var ErrNotFound = errors.New("not found")

type TransactionKind string

const (
	Debit  TransactionKind = "DEBIT"
	Credit TransactionKind = "CREDIT"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction represents a movement of money against an account.
// Status moves from PENDING to exactly one of COMPLETED or FAILED;
// CompletedAt is set at that terminal transition and never before.
type Transaction struct {
	ID          string            `json:"transaction_id"`
	AccountID   string            `json:"account_id"`
	Amount      float64           `json:"amount"`
	Kind        TransactionKind   `json:"transaction_type"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at"`
}

// Terminal reports whether no further status transition is allowed.
func (t *Transaction) Terminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// CreateTransactionRequest is what the caller sends us
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id"`
	Amount      float64         `json:"amount"`
	Kind        TransactionKind `json:"transaction_type"`
	Description string          `json:"description"`
}
