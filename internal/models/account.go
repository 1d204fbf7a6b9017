package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

// Account statuses
const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
)

// ErrVersionConflict is returned by account stores when a save races another writer.
var ErrVersionConflict = errors.New("account version conflict")

// Account represents a bank account row in the database.
// Balance is only ever changed through the ledger.
type Account struct {
	AccountNumber string          `json:"account_number" db:"account_number"` // Unique, immutable account number
	HolderName    string          `json:"holder_name" db:"holder_name"`       // Name of the account holder
	Balance       decimal.Decimal `json:"balance" db:"balance"`               // Current balance, never negative
	Status        AccountStatus   `json:"status" db:"status"`                 // ACTIVE or INACTIVE
	IFSC          string          `json:"ifsc" db:"ifsc"`                     // Branch routing code
	BankName      string          `json:"bank_name" db:"bank_name"`           // Name of the bank
	AccountType   string          `json:"account_type" db:"account_type"`     // SAVINGS, CURRENT, ...
	Version       int64           `json:"-" db:"version"`                     // Optimistic concurrency counter
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Last update timestamp
}

// IsActive reports whether the account accepts debits and credits.
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}
