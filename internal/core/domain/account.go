package domain

import "time"

type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountClosed    AccountStatus = "CLOSED"
)

// Account represents a customer's bank account in the registry
type Account struct {
	ID            string        `json:"account_id"`
	CustomerID    string        `json:"customer_id"`
	AccountNumber string        `json:"account_number"`
	Balance       float64       `json:"balance"`
	Currency      string        `json:"currency"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CreateAccountRequest defines what the user sends us
type CreateAccountRequest struct {
	CustomerID     string  `json:"customer_id"`
	AccountNumber  string  `json:"account_number"`
	InitialBalance float64 `json:"initial_balance"`
	Currency       string  `json:"currency"`
}
