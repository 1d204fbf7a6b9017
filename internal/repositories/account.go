package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
)

const uniqueViolation = "23505"

// AccountRepository reads and writes accounts in Postgres.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts a new account with version 1.
func (r *AccountRepository) CreateAccount(ctx context.Context, acc *models.Account) error {
	const query = `
		INSERT INTO accounts (account_number, holder_name, balance, status, ifsc, bank_name, account_type, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 1, $8, $9)
	`
	args := []any{acc.AccountNumber, acc.HolderName, acc.Balance, acc.Status, acc.IFSC, acc.BankName, acc.AccountType, acc.CreatedAt, acc.UpdatedAt}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrAccountExists
	}
	if err != nil {
		return err
	}
	acc.Version = 1
	return nil
}

// LoadAccount returns the account with the given number, or nil if none exists.
func (r *AccountRepository) LoadAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	const query = `
		SELECT account_number, holder_name, balance, status, ifsc, bank_name, account_type, version, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
	`

	var acc models.Account
	err := r.db.GetContext(ctx, &acc, query, accountNumber)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{accountNumber},
		"result", acc.Balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// SaveAccount writes balance and status if acc.Version still matches the row,
// then bumps the version. A mismatch yields models.ErrVersionConflict.
func (r *AccountRepository) SaveAccount(ctx context.Context, acc *models.Account) error {
	const query = `
		UPDATE accounts
		SET balance = $2, status = $3, updated_at = $4, version = version + 1
		WHERE account_number = $1 AND version = $5
	`
	args := []any{acc.AccountNumber, acc.Balance, acc.Status, acc.UpdatedAt, acc.Version}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrVersionConflict
	}
	acc.Version++
	return nil
}

// FindAccountByUpiID resolves an ACTIVE UPI id to its account, or nil if unknown.
func (r *AccountRepository) FindAccountByUpiID(ctx context.Context, upiID string) (*models.Account, error) {
	const query = `
		SELECT a.account_number, a.holder_name, a.balance, a.status, a.ifsc, a.bank_name, a.account_type, a.version, a.created_at, a.updated_at
		FROM upi_ids u
		JOIN accounts a ON a.account_number = u.account_number
		WHERE u.upi_id = $1 AND u.status = 'ACTIVE'
	`

	var acc models.Account
	err := r.db.GetContext(ctx, &acc, query, upiID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{upiID},
		"result", acc.AccountNumber,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// ListAccounts returns every account ordered by account number.
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]models.Account, error) {
	const query = `
		SELECT account_number, holder_name, balance, status, ifsc, bank_name, account_type, version, created_at, updated_at
		FROM accounts
		ORDER BY account_number
	`

	var accounts []models.Account
	err := r.db.SelectContext(ctx, &accounts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(accounts),
		"error", err,
	)

	return accounts, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
