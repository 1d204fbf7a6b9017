package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
)

// Provisioner creates accounts and UPI ids.
type Provisioner interface {
	CreateAccount(ctx context.Context, acc *models.Account) error
	RegisterUpiID(ctx context.Context, upi *models.UpiID) error
}

// SampleAccountNumber returns the account number of the i-th sample account.
func SampleAccountNumber(i int) string {
	return fmt.Sprintf("10000%07d", i)
}

// SampleUpiID returns the UPI id of the i-th sample account.
func SampleUpiID(i int) string {
	return fmt.Sprintf("user%d@upi", i)
}

// SeedSampleData provisions n ACTIVE savings accounts holding 100000 each,
// with a primary UPI id userN@upi for every account.
func SeedSampleData(ctx context.Context, p Provisioner, n int) error {
	logger.Log.Infow("loading sample data", "accounts", n)

	now := time.Now()
	for i := 1; i <= n; i++ {
		acc := &models.Account{
			AccountNumber: SampleAccountNumber(i),
			HolderName:    fmt.Sprintf("Test User %d", i),
			Balance:       decimal.NewFromInt(100000),
			Status:        models.AccountActive,
			IFSC:          "SBIN0001234",
			BankName:      "State Bank of India",
			AccountType:   "SAVINGS",
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := p.CreateAccount(ctx, acc); err != nil {
			return fmt.Errorf("seed account %s: %w", acc.AccountNumber, err)
		}

		upi := &models.UpiID{
			UpiID:         SampleUpiID(i),
			AccountNumber: acc.AccountNumber,
			IsPrimary:     true,
			Status:        models.AccountActive,
			CreatedAt:     now,
		}
		if err := p.RegisterUpiID(ctx, upi); err != nil {
			return fmt.Errorf("seed upi id %s: %w", upi.UpiID, err)
		}
	}

	logger.Log.Infow("sample data loaded", "accounts", n)
	return nil
}
