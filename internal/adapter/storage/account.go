package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retailbank/internal/core/domain"
)

// AccountRepository is the Postgres-backed account store.
type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) NextID(ctx context.Context) (string, error) {
	var seq int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('account_id_seq')`).Scan(&seq); err != nil {
		return "", fmt.Errorf("failed to allocate account id: %w", err)
	}
	return fmt.Sprintf("ACC-%03d", seq), nil
}

// Put inserts the account, or updates its mutable fields when it exists.
func (r *AccountRepository) Put(ctx context.Context, acc *domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, customer_id, account_number, balance, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id) DO UPDATE
		SET balance = EXCLUDED.balance, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.Exec(ctx, query,
		acc.ID, acc.CustomerID, acc.AccountNumber, acc.Balance, acc.Currency, acc.Status, acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *AccountRepository) Get(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT account_id, customer_id, account_number, balance, currency, status, created_at, updated_at
		FROM accounts WHERE account_id = $1
	`
	var acc domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&acc.ID, &acc.CustomerID, &acc.AccountNumber, &acc.Balance, &acc.Currency, &acc.Status, &acc.CreatedAt, &acc.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// List returns accounts ordered by id; an empty customerID matches all.
func (r *AccountRepository) List(ctx context.Context, customerID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, customer_id, account_number, balance, currency, status, created_at, updated_at
		FROM accounts
		WHERE $1 = '' OR customer_id = $1
		ORDER BY account_id
	`
	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		if err := rows.Scan(
			&acc.ID, &acc.CustomerID, &acc.AccountNumber, &acc.Balance, &acc.Currency, &acc.Status, &acc.CreatedAt, &acc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}
