package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a transaction.
type Status string

// Transaction statuses
const (
	StatusInitiated  Status = "INITIATED"
	StatusProcessing Status = "PROCESSING"
	StatusSuccess    Status = "SUCCESS"
	StatusFailed     Status = "FAILED"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Leg records the last ledger step attempted for a transaction.
type Leg string

// Ledger legs
const (
	LegNone               Leg = "NONE"
	LegDebit              Leg = "DEBIT"
	LegCredit             Leg = "CREDIT"
	LegCompensation       Leg = "COMPENSATION"
	LegCompensated        Leg = "COMPENSATED"
	LegCompensationFailed Leg = "COMPENSATION_FAILED"
)

// FailureCode classifies why a transaction failed.
type FailureCode string

// Failure codes
const (
	FailureUnknownIdentifier   FailureCode = "UnknownIdentifier"
	FailureInvalidFormat       FailureCode = "InvalidFormat"
	FailureAmountOutOfBounds   FailureCode = "AmountOutOfBounds"
	FailureSameAccount         FailureCode = "SameAccount"
	FailureAccountNotFound     FailureCode = "AccountNotFound"
	FailureAccountInactive     FailureCode = "AccountInactive"
	FailureInsufficientBalance FailureCode = "InsufficientBalance"
	FailurePersistence         FailureCode = "PersistenceFailure"
)

// ErrIllegalTransition is returned when a status change would break the lifecycle.
var ErrIllegalTransition = errors.New("illegal transaction status transition")

// Transaction is the durable audit record of one transfer attempt.
type Transaction struct {
	TransactionID string          `json:"transaction_id" db:"transaction_id"` // Channel-prefixed unique id
	Channel       Channel         `json:"channel" db:"channel"`               // Rail used
	FromAccount   string          `json:"from_account" db:"from_account"`     // Source account number, or raw identifier if unresolved
	ToAccount     string          `json:"to_account" db:"to_account"`         // Destination account number, or raw identifier if unresolved
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Principal amount
	Fee           decimal.Decimal `json:"fee" db:"fee"`                       // Informational channel fee
	Status        Status          `json:"status" db:"status"`                 // Lifecycle state
	Leg           Leg             `json:"leg" db:"leg"`                       // Last ledger leg attempted
	Remarks       string          `json:"remarks" db:"remarks"`               // Optional payer remarks
	FailureCode   FailureCode     `json:"failure_code" db:"failure_code"`     // Set when FAILED
	FailureReason string          `json:"failure_reason" db:"failure_reason"` // Human readable failure description
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`         // Creation timestamp
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`         // Last update timestamp
}

// NewTransaction creates a transaction in the INITIATED state.
func NewTransaction(id string, ch Channel, from, to string, amount decimal.Decimal, remarks string, now time.Time) *Transaction {
	return &Transaction{
		TransactionID: id,
		Channel:       ch,
		FromAccount:   from,
		ToAccount:     to,
		Amount:        amount,
		Fee:           decimal.Zero,
		Status:        StatusInitiated,
		Leg:           LegNone,
		Remarks:       remarks,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Begin moves an INITIATED transaction to PROCESSING.
func (t *Transaction) Begin(now time.Time) error {
	if t.Status != StatusInitiated {
		return ErrIllegalTransition
	}
	t.Status = StatusProcessing
	t.UpdatedAt = now
	return nil
}

// MarkLeg records the ledger leg about to be attempted.
func (t *Transaction) MarkLeg(leg Leg, now time.Time) error {
	if t.Status != StatusProcessing {
		return ErrIllegalTransition
	}
	t.Leg = leg
	t.UpdatedAt = now
	return nil
}

// Succeed moves a PROCESSING transaction to SUCCESS.
func (t *Transaction) Succeed(fee decimal.Decimal, now time.Time) error {
	if t.Status != StatusProcessing {
		return ErrIllegalTransition
	}
	t.Status = StatusSuccess
	t.Fee = fee
	t.UpdatedAt = now
	return nil
}

// Fail moves a non-terminal transaction to FAILED.
func (t *Transaction) Fail(code FailureCode, reason string, now time.Time) error {
	if t.Status.Terminal() {
		return ErrIllegalTransition
	}
	t.Status = StatusFailed
	t.FailureCode = code
	t.FailureReason = reason
	t.UpdatedAt = now
	return nil
}

// Result converts the transaction into the value returned to callers.
func (t *Transaction) Result() *TransactionResult {
	return &TransactionResult{
		TransactionID: t.TransactionID,
		Channel:       t.Channel,
		Amount:        t.Amount,
		Fee:           t.Fee,
		Status:        t.Status,
		FromAccount:   t.FromAccount,
		ToAccount:     t.ToAccount,
		Remarks:       t.Remarks,
		FailureCode:   t.FailureCode,
		FailureReason: t.FailureReason,
		Timestamp:     t.CreatedAt,
	}
}

// TransactionResult is returned to callers of the transfer core and published to Kafka.
type TransactionResult struct {
	TransactionID string          `json:"transaction_id"`           // Transaction id
	Channel       Channel         `json:"channel"`                  // Rail used
	Amount        decimal.Decimal `json:"amount"`                   // Principal amount
	Fee           decimal.Decimal `json:"fee"`                      // Informational channel fee
	Status        Status          `json:"status"`                   // SUCCESS or FAILED
	FromAccount   string          `json:"from_account"`             // Source account
	ToAccount     string          `json:"to_account"`               // Destination account
	Remarks       string          `json:"remarks,omitempty"`        // Optional remarks
	FailureCode   FailureCode     `json:"failure_code,omitempty"`   // Machine readable failure code
	FailureReason string          `json:"failure_reason,omitempty"` // Human readable failure reason
	Timestamp     time.Time       `json:"timestamp"`                // Creation timestamp
}
