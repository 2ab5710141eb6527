package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retailbank/internal/core/domain"
)

// TransactionRepository is the Postgres-backed transaction store.
// The orchestrator is the only writer per transaction id, so a plain
// upsert is enough to avoid lost updates.
type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) NextID(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('transaction_id_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to allocate transaction id: %w", err)
	}
	return fmt.Sprintf("TXN-%06d", seq), nil
}

// Put inserts the transaction, or updates its status and completion time
// when it already exists. The immutable fields are never rewritten.
func (r *TransactionRepository) Put(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, account_id, amount, transaction_type, description, status, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (transaction_id) DO UPDATE
		SET status = EXCLUDED.status, completed_at = EXCLUDED.completed_at
	`
	_, err := r.db.Exec(ctx, query,
		txn.ID, txn.AccountID, txn.Amount, txn.Kind, txn.Description, txn.Status, txn.CreatedAt, txn.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) Get(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, transaction_type, description, status, created_at, completed_at
		FROM transactions WHERE transaction_id = $1
	`
	var txn domain.Transaction
	err := r.db.QueryRow(ctx, query, id).Scan(
		&txn.ID, &txn.AccountID, &txn.Amount, &txn.Kind, &txn.Description, &txn.Status, &txn.CreatedAt, &txn.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// List returns transactions ordered by id; an empty accountID matches all.
func (r *TransactionRepository) List(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, amount, transaction_type, description, status, created_at, completed_at
		FROM transactions
		WHERE $1 = '' OR account_id = $1
		ORDER BY transaction_id
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID, &txn.AccountID, &txn.Amount, &txn.Kind, &txn.Description, &txn.Status, &txn.CreatedAt, &txn.CompletedAt,
		); err != nil {
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, rows.Err()
}
