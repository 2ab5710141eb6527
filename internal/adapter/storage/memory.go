package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"retailbank/internal/core/domain"
)

// MemoryTransactionStore keeps transactions in a mutex-guarded map.
// It is the default store when no DATABASE_URL is configured.
type MemoryTransactionStore struct {
	mu   sync.RWMutex
	txns map[string]domain.Transaction
	seq  int
}

func NewMemoryTransactionStore() *MemoryTransactionStore {
	return &MemoryTransactionStore{txns: make(map[string]domain.Transaction)}
}

func (s *MemoryTransactionStore) NextID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("TXN-%06d", s.seq), nil
}

func (s *MemoryTransactionStore) Put(ctx context.Context, txn *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txns[txn.ID] = *txn
	return nil
}

func (s *MemoryTransactionStore) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txn, ok := s.txns[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return &txn, nil
}

// List returns transactions ordered by id; an empty accountID matches all.
func (s *MemoryTransactionStore) List(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0, len(s.txns))
	for _, txn := range s.txns {
		if accountID == "" || txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// MemoryAccountStore keeps accounts in a mutex-guarded map.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
	seq      int
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[string]domain.Account)}
}

func (s *MemoryAccountStore) NextID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("ACC-%03d", s.seq), nil
}

func (s *MemoryAccountStore) Put(ctx context.Context, acc *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acc.ID] = *acc
	return nil
}

func (s *MemoryAccountStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	return &acc, nil
}

func (s *MemoryAccountStore) List(ctx context.Context, customerID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		if customerID == "" || acc.CustomerID == customerID {
			out = append(out, acc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SeedDemoAccounts loads the demo fixtures the in-memory registry
// starts with, so the other services have something to verify against.
func SeedDemoAccounts(ctx context.Context, store *MemoryAccountStore) error {
	now := time.Now().UTC()
	demo := []domain.Account{
		{CustomerID: "CUST-001", AccountNumber: "1001", Balance: 5420.75, Currency: "USD", Status: domain.AccountActive},
		{CustomerID: "CUST-002", AccountNumber: "1002", Balance: 12850.20, Currency: "USD", Status: domain.AccountActive},
	}
	for _, acc := range demo {
		id, err := store.NextID(ctx)
		if err != nil {
			return err
		}
		acc.ID = id
		acc.CreatedAt = now
		acc.UpdatedAt = now
		if err := store.Put(ctx, &acc); err != nil {
			return err
		}
	}
	return nil
}
