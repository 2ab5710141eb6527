package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"retailbank/internal/core/domain"
)

var (
	// ErrInvalidAmount rejects non-positive amounts before any state exists.
	ErrInvalidAmount = errors.New("transaction amount must be greater than zero")
	// ErrUnknownAccount covers both "account does not exist" and
	// "verifier unreachable": the registry failing closed.
	ErrUnknownAccount = errors.New("invalid account ID")
)

// TransactionStore is the key-value collaborator that owns persistence.
// The orchestrator is the only writer for any given transaction id.
type TransactionStore interface {
	NextID(ctx context.Context) (string, error)
	Put(ctx context.Context, txn *domain.Transaction) error
	Get(ctx context.Context, id string) (*domain.Transaction, error)
	List(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// AccountVerifier reports whether an account is known to the registry.
// Implementations must return false when the registry cannot be reached.
type AccountVerifier interface {
	Exists(ctx context.Context, accountID string) bool
}

// FraudChecker submits a transaction's features for screening. The second
// return is false when no verdict could be obtained at all; it never
// fabricates one.
type FraudChecker interface {
	Check(ctx context.Context, req *domain.FraudCheckRequest) (*domain.FraudVerdict, bool)
}

// Notifier is told about transactions that reached a terminal state.
type Notifier interface {
	TransactionFinished(txn *domain.Transaction)
}

// Service sequences verification, persistence, screening and finalization
// for every incoming transaction.
type Service struct {
	Store    TransactionStore
	Verifier AccountVerifier
	Fraud    FraudChecker
	Notifier Notifier // optional

	now func() time.Time
}

func NewService(store TransactionStore, verifier AccountVerifier, fraud FraudChecker) *Service {
	return &Service{
		Store:    store,
		Verifier: verifier,
		Fraud:    fraud,
		now:      time.Now,
	}
}

// Create runs a transaction from request to terminal state.
//
// The two collaborator degradations are asymmetric on purpose: an
// unreachable account registry fails closed (reject), an unreachable
// fraud screener fails open (presume clean and complete).
func (s *Service) Create(ctx context.Context, req *domain.CreateTransactionRequest) (*domain.Transaction, error) {
	// 1. Validate before any state exists
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	// 2. Verify the account with the registry
	if !s.Verifier.Exists(ctx, req.AccountID) {
		return nil, ErrUnknownAccount
	}

	// 3. Record the transaction as PENDING
	id, err := s.Store.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate transaction id: %w", err)
	}

	txn := &domain.Transaction{
		ID:          id,
		AccountID:   req.AccountID,
		Amount:      req.Amount,
		Kind:        req.Kind,
		Description: req.Description,
		Status:      domain.StatusPending,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Store.Put(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	// 4. Screen synchronously; once invoked it runs to completion or timeout
	verdict, ok := s.Fraud.Check(ctx, &domain.FraudCheckRequest{
		TransactionID: txn.ID,
		AccountID:     txn.AccountID,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		Description:   txn.Description,
	})

	// 5. Finalize: only a positive fraud verdict fails the transaction
	if ok && verdict.IsFraud {
		txn.Status = domain.StatusFailed
		slog.Warn("🚨 Transaction flagged as fraud", "id", txn.ID, "score", verdict.FraudScore, "risk", verdict.RiskLevel)
	} else {
		txn.Status = domain.StatusCompleted
		if !ok {
			slog.Warn("Fraud screening unavailable, presuming clean", "id", txn.ID)
		}
	}

	completed := s.now().UTC()
	txn.CompletedAt = &completed
	if err := s.Store.Put(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to finalize transaction: %w", err)
	}

	slog.Info("✅ Transaction finalized", "id", txn.ID, "account_id", txn.AccountID, "status", txn.Status)

	if s.Notifier != nil {
		s.Notifier.TransactionFinished(txn)
	}
	return txn, nil
}

// Get fetches a transaction by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.Store.Get(ctx, id)
}

// List returns transactions, optionally filtered by account id.
func (s *Service) List(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.Store.List(ctx, accountID)
}
