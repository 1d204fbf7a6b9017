package models

import "time"

// UpiID is a virtual payment address mapped to exactly one account.
type UpiID struct {
	UpiID         string        `json:"upi_id" db:"upi_id"`                 // Address in name@handle form
	AccountNumber string        `json:"account_number" db:"account_number"` // Account the address resolves to
	IsPrimary     bool          `json:"is_primary" db:"is_primary"`         // Primary address of the account
	Status        AccountStatus `json:"status" db:"status"`                 // ACTIVE or INACTIVE
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`         // Registration timestamp
}
