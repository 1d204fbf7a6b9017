package repositories

import "errors"

var (
	// ErrAccountExists is returned when provisioning a duplicate account number.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when a UPI id targets an unknown account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUpiIDExists is returned when registering a UPI id that is already taken.
	ErrUpiIDExists = errors.New("upi id already registered")
	// ErrTransactionExists is returned when a transaction id is reused.
	ErrTransactionExists = errors.New("transaction already exists")
	// ErrTransactionNotFound is returned when updating an unknown transaction.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrTransactionFinalized is returned when updating a transaction that is already SUCCESS or FAILED.
	ErrTransactionFinalized = errors.New("transaction already in terminal status")
)
