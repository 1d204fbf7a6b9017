package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
)

// Migrations creates the tables used by the Postgres repositories.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		account_number VARCHAR(34) PRIMARY KEY,
		holder_name VARCHAR(100) NOT NULL,
		balance NUMERIC(20,2) NOT NULL DEFAULT 0.0 CHECK (balance >= 0),
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		ifsc CHAR(11) NOT NULL,
		bank_name VARCHAR(100) NOT NULL,
		account_type VARCHAR(20) NOT NULL,
		version BIGINT NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS upi_ids (
		upi_id VARCHAR(100) PRIMARY KEY,
		account_number VARCHAR(34) NOT NULL REFERENCES accounts(account_number),
		is_primary BOOLEAN NOT NULL DEFAULT FALSE,
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id VARCHAR(40) PRIMARY KEY,
		channel VARCHAR(8) NOT NULL,
		from_account TEXT NOT NULL,
		to_account TEXT NOT NULL,
		amount NUMERIC(20,2) NOT NULL,
		fee NUMERIC(20,2) NOT NULL DEFAULT 0.0,
		status VARCHAR(16) NOT NULL,
		leg VARCHAR(24) NOT NULL,
		remarks TEXT NOT NULL DEFAULT '',
		failure_code VARCHAR(32) NOT NULL DEFAULT '',
		failure_reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS transactions_status_idx ON transactions (status) WHERE status = 'PROCESSING';`,
}

// Migrate applies Migrations in order.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range Migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("migration failed", "error", err)
			return err
		}
	}
	logger.Log.Infow("migrations applied", "count", len(Migrations))
	return nil
}
