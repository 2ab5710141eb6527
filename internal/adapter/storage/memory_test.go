package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailbank/internal/adapter/storage"
	"retailbank/internal/core/domain"
)

func TestMemoryTransactionStoreAssignsSequentialIDs(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	ctx := context.Background()

	first, err := store.NextID(ctx)
	require.NoError(t, err)
	second, err := store.NextID(ctx)
	require.NoError(t, err)

	assert.Equal(t, "TXN-000001", first)
	assert.Equal(t, "TXN-000002", second)
}

func TestMemoryTransactionStorePutGet(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	ctx := context.Background()

	txn := &domain.Transaction{
		ID:        "TXN-000001",
		AccountID: "ACC-001",
		Amount:    99.99,
		Kind:      domain.Debit,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Put(ctx, txn))

	got, err := store.Get(ctx, "TXN-000001")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)

	// Updating via Put replaces the stored copy
	txn.Status = domain.StatusCompleted
	require.NoError(t, store.Put(ctx, txn))
	got, err = store.Get(ctx, "TXN-000001")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestMemoryTransactionStoreGetMissing(t *testing.T) {
	store := storage.NewMemoryTransactionStore()

	_, err := store.Get(context.Background(), "TXN-999999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryTransactionStoreListFilter(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	ctx := context.Background()

	for i, accountID := range []string{"ACC-001", "ACC-002", "ACC-001"} {
		id, err := store.NextID(ctx)
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, &domain.Transaction{
			ID:        id,
			AccountID: accountID,
			Amount:    float64(i + 1),
			Kind:      domain.Credit,
			Status:    domain.StatusCompleted,
		}))
	}

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := store.List(ctx, "ACC-001")
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "TXN-000001", filtered[0].ID)
	assert.Equal(t, "TXN-000003", filtered[1].ID)
}

func TestMemoryAccountStoreSeedDemoAccounts(t *testing.T) {
	store := storage.NewMemoryAccountStore()
	ctx := context.Background()

	require.NoError(t, storage.SeedDemoAccounts(ctx, store))

	acc, err := store.Get(ctx, "ACC-001")
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", acc.CustomerID)
	assert.Equal(t, domain.AccountActive, acc.Status)

	all, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byCustomer, err := store.List(ctx, "CUST-002")
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "ACC-002", byCustomer[0].ID)

	// The seeded fixtures advance the sequence
	next, err := store.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACC-003", next)
}
