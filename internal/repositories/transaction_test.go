package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{
	"transaction_id", "channel", "from_account", "to_account", "amount", "fee", "status", "leg",
	"remarks", "failure_code", "failure_reason", "created_at", "updated_at",
}

func TestTransactionRepository_CreateTransaction(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	txn := models.NewTransaction("UPI1", models.UPI, "1", "2", decimal.NewFromInt(10), "", now)

	mock.ExpectExec("INSERT INTO transactions").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.CreateTransaction(ctx, txn))

	mock.ExpectExec("INSERT INTO transactions").WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	assert.ErrorIs(t, repo.CreateTransaction(ctx, txn), ErrTransactionExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_UpdateTransaction(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	txn := models.NewTransaction("UPI1", models.UPI, "1", "2", decimal.NewFromInt(10), "", now)
	require.NoError(t, txn.Begin(now))
	require.NoError(t, txn.Succeed(decimal.Zero, now))

	mock.ExpectExec("UPDATE transactions").
		WithArgs("UPI1", models.StatusSuccess, models.LegNone, txn.Fee, models.FailureCode(""), "", txn.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateTransaction(ctx, txn))

	// terminal row: update matches nothing, lookup finds the row
	mock.ExpectExec("UPDATE transactions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM transactions").WithArgs("UPI1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("UPI1", "UPI", "1", "2", "10.00", "0.00", "SUCCESS", "CREDIT", "", "", "", now, now))
	assert.ErrorIs(t, repo.UpdateTransaction(ctx, txn), ErrTransactionFinalized)

	mock.ExpectExec("UPDATE transactions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM transactions").WithArgs("UPI1").WillReturnError(sql.ErrNoRows)
	assert.ErrorIs(t, repo.UpdateTransaction(ctx, txn), ErrTransactionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetTransaction(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	mock.ExpectQuery("FROM transactions").WithArgs("IMPS1").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("IMPS1", "IMPS", "111111111", "222222222", "500.00", "2.50", "FAILED", "COMPENSATED",
				"rent", "AccountInactive", "account inactive: 222222222", now, now))

	txn, err := repo.GetTransaction(ctx, "IMPS1")
	require.NoError(t, err)
	assert.Equal(t, models.IMPS, txn.Channel)
	assert.Equal(t, models.StatusFailed, txn.Status)
	assert.Equal(t, models.LegCompensated, txn.Leg)
	assert.Equal(t, models.FailureAccountInactive, txn.FailureCode)
	assert.True(t, txn.Fee.Equal(decimal.RequireFromString("2.50")))

	mock.ExpectQuery("FROM transactions").WithArgs("nope").WillReturnError(sql.ErrNoRows)
	txn, err = repo.GetTransaction(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, txn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_ListInFlight(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)
	now := time.Now()

	mock.ExpectQuery("WHERE status = 'PROCESSING'").
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow("UPI1", "UPI", "1", "2", "10.00", "0.00", "PROCESSING", "CREDIT", "", "", "", now, now))

	txns, err := repo.ListInFlight(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, models.LegCredit, txns[0].Leg)
	assert.NoError(t, mock.ExpectationsWereMet())
}
