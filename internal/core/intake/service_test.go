package intake_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailbank/internal/adapter/storage"
	"retailbank/internal/core/domain"
	"retailbank/internal/core/intake"
)

type stubVerifier struct {
	exists bool
}

func (v *stubVerifier) Exists(ctx context.Context, accountID string) bool { return v.exists }

type stubChecker struct {
	verdict *domain.FraudVerdict
	ok      bool
	got     *domain.FraudCheckRequest
}

func (c *stubChecker) Check(ctx context.Context, req *domain.FraudCheckRequest) (*domain.FraudVerdict, bool) {
	c.got = req
	return c.verdict, c.ok
}

type recordingNotifier struct {
	finished []domain.Transaction
}

func (n *recordingNotifier) TransactionFinished(txn *domain.Transaction) {
	n.finished = append(n.finished, *txn)
}

func cleanVerdict() *domain.FraudVerdict {
	return &domain.FraudVerdict{IsFraud: false, FraudScore: 0.1, RiskLevel: domain.RiskLow}
}

func fraudVerdict() *domain.FraudVerdict {
	return &domain.FraudVerdict{IsFraud: true, FraudScore: 0.95, RiskLevel: domain.RiskHigh}
}

func validRequest() *domain.CreateTransactionRequest {
	return &domain.CreateTransactionRequest{
		AccountID:   "ACC-001",
		Amount:      250.50,
		Kind:        domain.Debit,
		Description: "groceries",
	}
}

func TestCreateRejectsNonPositiveAmounts(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	svc := intake.NewService(store, &stubVerifier{exists: true}, &stubChecker{verdict: cleanVerdict(), ok: true})

	for _, amount := range []float64{0, -1, -250.50} {
		req := validRequest()
		req.Amount = amount

		txn, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, intake.ErrInvalidAmount)
		assert.Nil(t, txn)
	}

	// No record was ever created
	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateRejectsUnknownAccount(t *testing.T) {
	// The verifier reports false both for a missing account and for an
	// unreachable registry; the orchestrator cannot tell them apart.
	store := storage.NewMemoryTransactionStore()
	checker := &stubChecker{verdict: cleanVerdict(), ok: true}
	svc := intake.NewService(store, &stubVerifier{exists: false}, checker)

	txn, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, intake.ErrUnknownAccount)
	assert.Nil(t, txn)
	assert.Nil(t, checker.got, "screening must not run for a rejected request")

	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateCompletesCleanTransaction(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	checker := &stubChecker{verdict: cleanVerdict(), ok: true}
	notifier := &recordingNotifier{}
	svc := intake.NewService(store, &stubVerifier{exists: true}, checker)
	svc.Notifier = notifier

	txn, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "TXN-000001", txn.ID)
	assert.Equal(t, domain.StatusCompleted, txn.Status)
	require.NotNil(t, txn.CompletedAt)
	assert.False(t, txn.CreatedAt.IsZero())

	// The screener saw the persisted transaction's features
	require.NotNil(t, checker.got)
	assert.Equal(t, txn.ID, checker.got.TransactionID)
	assert.Equal(t, "ACC-001", checker.got.AccountID)
	assert.InDelta(t, 250.50, checker.got.Amount, 1e-9)
	assert.Equal(t, domain.Debit, checker.got.Kind)

	// The stored copy is terminal too
	stored, err := store.Get(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	require.NotNil(t, stored.CompletedAt)

	require.Len(t, notifier.finished, 1)
	assert.Equal(t, txn.ID, notifier.finished[0].ID)
}

func TestCreateFailsFraudulentTransaction(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	svc := intake.NewService(store, &stubVerifier{exists: true}, &stubChecker{verdict: fraudVerdict(), ok: true})

	txn, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusFailed, txn.Status)
	require.NotNil(t, txn.CompletedAt)

	stored, err := store.Get(context.Background(), txn.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
}

func TestCreatePresumesCleanWhenScreenerUnavailable(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	svc := intake.NewService(store, &stubVerifier{exists: true}, &stubChecker{verdict: nil, ok: false})

	txn, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, txn.Status)
	require.NotNil(t, txn.CompletedAt)
}

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	svc := intake.NewService(store, &stubVerifier{exists: true}, &stubChecker{verdict: cleanVerdict(), ok: true})

	first, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "TXN-000001", first.ID)
	assert.Equal(t, "TXN-000002", second.ID)
}

func TestListFiltersByAccount(t *testing.T) {
	store := storage.NewMemoryTransactionStore()
	svc := intake.NewService(store, &stubVerifier{exists: true}, &stubChecker{verdict: cleanVerdict(), ok: true})

	reqA := validRequest()
	reqB := validRequest()
	reqB.AccountID = "ACC-002"

	_, err := svc.Create(context.Background(), reqA)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), reqB)
	require.NoError(t, err)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.List(context.Background(), "ACC-002")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "ACC-002", filtered[0].AccountID)
}
