package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
)

// TransactionRepository persists transaction records in Postgres.
type TransactionRepository struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// CreateTransaction inserts a new transaction record.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	const query = `
		INSERT INTO transactions (transaction_id, channel, from_account, to_account, amount, fee, status, leg,
			remarks, failure_code, failure_reason, created_at, updated_at)
		VALUES (:transaction_id, :channel, :from_account, :to_account, :amount, :fee, :status, :leg,
			:remarks, :failure_code, :failure_reason, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, txn)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Channel, txn.Status, txn.Amount},
		"error", err,
	)

	if isUniqueViolation(err) {
		return ErrTransactionExists
	}
	return err
}

// UpdateTransaction writes status, leg, fee and failure details unless the
// stored row is already SUCCESS or FAILED.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	const query = `
		UPDATE transactions
		SET status = $2, leg = $3, fee = $4, failure_code = $5, failure_reason = $6, updated_at = $7
		WHERE transaction_id = $1 AND status NOT IN ('SUCCESS', 'FAILED')
	`
	args := []any{txn.TransactionID, txn.Status, txn.Leg, txn.Fee, txn.FailureCode, txn.FailureReason, txn.UpdatedAt}

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
		existing, err := r.GetTransaction(ctx, txn.TransactionID)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrTransactionNotFound
		}
		return ErrTransactionFinalized
	}
	return nil
}

// GetTransaction returns the transaction with the given id, or nil if unknown.
func (r *TransactionRepository) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	const query = `
		SELECT transaction_id, channel, from_account, to_account, amount, fee, status, leg,
			remarks, failure_code, failure_reason, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, query, transactionID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{transactionID},
		"result", txn.Status,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListInFlight returns transactions still PROCESSING, oldest first. A
// reconciliation job uses the Leg of each row to decide how to resolve it.
func (r *TransactionRepository) ListInFlight(ctx context.Context) ([]models.Transaction, error) {
	const query = `
		SELECT transaction_id, channel, from_account, to_account, amount, fee, status, leg,
			remarks, failure_code, failure_reason, created_at, updated_at
		FROM transactions
		WHERE status = 'PROCESSING'
		ORDER BY created_at
	`

	var txns []models.Transaction
	err := r.db.SelectContext(ctx, &txns, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(txns),
		"error", err,
	)

	return txns, err
}
