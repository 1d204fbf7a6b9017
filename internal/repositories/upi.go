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

// UpiIDRepository registers UPI ids in Postgres.
type UpiIDRepository struct {
	db *sqlx.DB
}

// NewUpiIDRepository creates a new UpiIDRepository.
func NewUpiIDRepository(db *sqlx.DB) *UpiIDRepository {
	return &UpiIDRepository{db: db}
}

// RegisterUpiID maps a UPI id to an existing account.
func (r *UpiIDRepository) RegisterUpiID(ctx context.Context, upi *models.UpiID) error {
	const query = `
		INSERT INTO upi_ids (upi_id, account_number, is_primary, status, created_at)
		SELECT $1, account_number, $3, $4, $5
		FROM accounts
		WHERE account_number = $2
	`
	args := []any{upi.UpiID, upi.AccountNumber, upi.IsPrimary, upi.Status, upi.CreatedAt}

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

	if isUniqueViolation(err) {
		return ErrUpiIDExists
	}
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// GetUpiID returns the UPI id record, or nil if it is not registered.
func (r *UpiIDRepository) GetUpiID(ctx context.Context, upiID string) (*models.UpiID, error) {
	const query = `
		SELECT upi_id, account_number, is_primary, status, created_at
		FROM upi_ids
		WHERE upi_id = $1
	`

	var upi models.UpiID
	err := r.db.GetContext(ctx, &upi, query, upiID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{upiID},
		"result", upi.AccountNumber,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upi, nil
}
