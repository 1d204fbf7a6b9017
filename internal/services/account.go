package services

//go:generate mockgen -source=account.go -destination=account_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-funds-transfer/internal/ledger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/rails"
	"github.com/sbilibin2017/gw-funds-transfer/internal/repositories"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when opening an account whose number is taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrUpiIDExists is returned when registering a UPI id that is already mapped.
	ErrUpiIDExists = errors.New("upi id already registered")
	// ErrInvalidAccount is returned when account details are malformed.
	ErrInvalidAccount = errors.New("invalid account details")
	// ErrInvalidUpiID is returned when a UPI id is not a well-formed VPA.
	ErrInvalidUpiID = errors.New("invalid upi id")
)

// deactivateAttempts bounds retries when a deactivation races a ledger write.
const deactivateAttempts = 3

// AccountStore reads and writes accounts.
type AccountStore interface {
	CreateAccount(ctx context.Context, acc *models.Account) error                   // Inserts a new account
	LoadAccount(ctx context.Context, accountNumber string) (*models.Account, error) // Returns nil if the account does not exist
	SaveAccount(ctx context.Context, acc *models.Account) error                     // Version-checked update
}

// UpiIDStore reads and writes UPI id mappings.
type UpiIDStore interface {
	RegisterUpiID(ctx context.Context, upi *models.UpiID) error        // Maps a UPI id to an account
	GetUpiID(ctx context.Context, upiID string) (*models.UpiID, error) // Returns nil if the UPI id is unknown
}

// BalanceReader reports account balances.
type BalanceReader interface {
	Balance(ctx context.Context, accountNumber string) (decimal.Decimal, error) // Current balance of an account
}

// OpenAccountRequest describes a new account.
type OpenAccountRequest struct {
	AccountNumber  string
	HolderName     string
	InitialBalance decimal.Decimal
	IFSC           string
	BankName       string
	AccountType    string
}

// AccountService handles account lookups, UPI id validation and provisioning.
type AccountService struct {
	accounts  AccountStore
	upiIDs    UpiIDStore
	cache     UpiCache
	simulator SettlementSimulator
	balances  BalanceReader
	now       func() time.Time
}

// NewAccountService creates a new AccountService. cache may be nil.
func NewAccountService(
	accounts AccountStore,
	upiIDs UpiIDStore,
	cache UpiCache,
	simulator SettlementSimulator,
	balances BalanceReader,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		upiIDs:    upiIDs,
		cache:     cache,
		simulator: simulator,
		balances:  balances,
		now:       time.Now,
	}
}

// GetAccount returns the account with the given number.
func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	acc, err := s.accounts.LoadAccount(ctx, accountNumber)
	if err != nil {
		logger.Log.Errorw("failed to load account", "account", accountNumber, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// GetBalance returns the ledger balance of an account.
func (s *AccountService) GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	balance, err := s.balances.Balance(ctx, accountNumber)
	if errors.Is(err, ledger.ErrAccountNotFound) {
		return decimal.Zero, ErrAccountNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to read balance", "account", accountNumber, "error", err)
		return decimal.Zero, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return balance, nil
}

// ValidateUpiID reports whether upiID is registered and active. It waits for
// the UPI rail latency first, like a lookup against the switch would.
func (s *AccountService) ValidateUpiID(ctx context.Context, upiID string) (bool, error) {
	if err := s.simulator.Simulate(ctx, models.UPI); err != nil {
		return false, err
	}
	if !rails.ValidVPA(upiID) {
		return false, nil
	}

	upi, err := s.upiIDs.GetUpiID(ctx, upiID)
	if err != nil {
		logger.Log.Errorw("failed to get UPI id", "upi_id", upiID, "error", err)
		return false, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return upi != nil && upi.Status == models.AccountActive, nil
}

// OpenAccount provisions an ACTIVE account.
func (s *AccountService) OpenAccount(ctx context.Context, req OpenAccountRequest) (*models.Account, error) {
	if !rails.ValidateIdentifier(models.IMPS, req.AccountNumber) {
		return nil, fmt.Errorf("%w: account number %q", ErrInvalidAccount, req.AccountNumber)
	}
	if req.HolderName == "" {
		return nil, fmt.Errorf("%w: holder name is required", ErrInvalidAccount)
	}
	if !rails.ValidRoutingCode(req.IFSC) {
		return nil, fmt.Errorf("%w: ifsc %q", ErrInvalidAccount, req.IFSC)
	}
	if req.InitialBalance.IsNegative() || !req.InitialBalance.Equal(req.InitialBalance.Round(2)) {
		return nil, fmt.Errorf("%w: initial balance %s", ErrInvalidAccount, req.InitialBalance)
	}

	now := s.now()
	acc := &models.Account{
		AccountNumber: req.AccountNumber,
		HolderName:    req.HolderName,
		Balance:       req.InitialBalance,
		Status:        models.AccountActive,
		IFSC:          req.IFSC,
		BankName:      req.BankName,
		AccountType:   req.AccountType,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.accounts.CreateAccount(ctx, acc); err != nil {
		if errors.Is(err, repositories.ErrAccountExists) {
			return nil, ErrAccountExists
		}
		logger.Log.Errorw("failed to create account", "account", req.AccountNumber, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Log.Infow("account opened", "account", acc.AccountNumber, "ifsc", acc.IFSC, "balance", acc.Balance)
	return acc, nil
}

// RegisterUpiID maps upiID to an existing account and warms the resolution cache.
func (s *AccountService) RegisterUpiID(ctx context.Context, upiID, accountNumber string, primary bool) (*models.UpiID, error) {
	if !rails.ValidVPA(upiID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUpiID, upiID)
	}

	upi := &models.UpiID{
		UpiID:         upiID,
		AccountNumber: accountNumber,
		IsPrimary:     primary,
		Status:        models.AccountActive,
		CreatedAt:     s.now(),
	}
	if err := s.upiIDs.RegisterUpiID(ctx, upi); err != nil {
		switch {
		case errors.Is(err, repositories.ErrUpiIDExists):
			return nil, ErrUpiIDExists
		case errors.Is(err, repositories.ErrAccountNotFound):
			return nil, ErrAccountNotFound
		}
		logger.Log.Errorw("failed to register UPI id", "upi_id", upiID, "account", accountNumber, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.cache != nil {
		if err := s.cache.SetAccountNumber(ctx, upiID, accountNumber); err != nil {
			logger.Log.Errorw("failed to cache UPI id", "upi_id", upiID, "error", err)
		}
	}

	logger.Log.Infow("UPI id registered", "upi_id", upiID, "account", accountNumber, "primary", primary)
	return upi, nil
}

// DeactivateAccount marks an account INACTIVE. Later debits and credits against it are rejected.
func (s *AccountService) DeactivateAccount(ctx context.Context, accountNumber string) error {
	for attempt := 1; ; attempt++ {
		acc, err := s.GetAccount(ctx, accountNumber)
		if err != nil {
			return err
		}
		if !acc.IsActive() {
			return nil
		}

		acc.Status = models.AccountInactive
		acc.UpdatedAt = s.now()
		err = s.accounts.SaveAccount(ctx, acc)
		if err == nil {
			logger.Log.Infow("account deactivated", "account", accountNumber)
			return nil
		}
		if !errors.Is(err, models.ErrVersionConflict) || attempt >= deactivateAttempts {
			logger.Log.Errorw("failed to deactivate account", "account", accountNumber, "error", err)
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}
}
