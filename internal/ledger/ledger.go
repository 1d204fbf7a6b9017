// Package ledger owns account balance mutation. Every debit and credit runs
// under a per-account lock and is saved with an optimistic version check, so
// the read-modify-write of a balance never observes a stale value.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when no account has the given number.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInactive is returned when the account is not ACTIVE.
	ErrAccountInactive = errors.New("account inactive")
	// ErrInsufficientBalance is returned when a debit exceeds the balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount is returned for non-positive amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// maxSaveAttempts bounds retries after a version conflict with another process.
const maxSaveAttempts = 5

// AccountStore loads and saves accounts. LoadAccount returns nil, nil when the
// account does not exist; SaveAccount returns models.ErrVersionConflict when
// acc.Version no longer matches the stored row.
type AccountStore interface {
	LoadAccount(ctx context.Context, accountNumber string) (*models.Account, error)
	SaveAccount(ctx context.Context, acc *models.Account) error
}

// accountLock serializes mutations of one account. refs counts the callers
// holding or waiting on mu.
type accountLock struct {
	mu   sync.Mutex
	refs int
}

// Ledger applies debits and credits to accounts. Locks exist only while an
// account has a mutation in flight.
type Ledger struct {
	store AccountStore
	now   func() time.Time

	muMap map[string]*accountLock // account number -> lock in use
	mapMu sync.Mutex              // guards muMap and refs
}

// New creates a Ledger on top of the given store.
func New(store AccountStore) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
		muMap: make(map[string]*accountLock),
	}
}

// lock acquires the account's lock and returns its release func.
func (l *Ledger) lock(accountNumber string) func() {
	l.mapMu.Lock()
	lk, ok := l.muMap[accountNumber]
	if !ok {
		lk = &accountLock{}
		l.muMap[accountNumber] = lk
	}
	lk.refs++
	l.mapMu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()

		l.mapMu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.muMap, accountNumber)
		}
		l.mapMu.Unlock()
	}
}

// mutate runs apply against a fresh copy of the account and saves the result,
// retrying on version conflicts. apply returns a business error to abort.
func (l *Ledger) mutate(ctx context.Context, accountNumber string, apply func(acc *models.Account) error) (*models.Account, error) {
	unlock := l.lock(accountNumber)
	defer unlock()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		acc, err := l.store.LoadAccount(ctx, accountNumber)
		if err != nil {
			return nil, fmt.Errorf("load account %s: %w", accountNumber, err)
		}
		if acc == nil {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountNumber)
		}

		if err := apply(acc); err != nil {
			return nil, err
		}
		acc.UpdatedAt = l.now()

		err = l.store.SaveAccount(ctx, acc)
		if err == nil {
			return acc, nil
		}
		if !errors.Is(err, models.ErrVersionConflict) || attempt >= maxSaveAttempts {
			return nil, fmt.Errorf("save account %s: %w", accountNumber, err)
		}
		logger.Log.Warnw("account version conflict, retrying", "account", accountNumber, "attempt", attempt)
	}
}

// Debit reduces the balance of an ACTIVE account by amount. It never overdraws.
func (l *Ledger) Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	acc, err := l.mutate(ctx, accountNumber, func(acc *models.Account) error {
		if !acc.IsActive() {
			return fmt.Errorf("%w: %s", ErrAccountInactive, accountNumber)
		}
		if acc.Balance.LessThan(amount) {
			return fmt.Errorf("%w in account %s", ErrInsufficientBalance, accountNumber)
		}
		acc.Balance = acc.Balance.Sub(amount)
		return nil
	})
	if err != nil {
		logger.Log.Warnw("debit rejected", "account", accountNumber, "amount", amount, "error", err)
		return err
	}

	logger.Log.Infow("account debited", "account", accountNumber, "amount", amount, "balance", acc.Balance)
	return nil
}

// Credit increases the balance of an ACTIVE account by amount.
func (l *Ledger) Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	return l.credit(ctx, accountNumber, amount, true)
}

// Compensate returns amount to an account to reverse an earlier debit.
// Unlike Credit it does not require the account to be ACTIVE: a reversal
// must land even if the payer was deactivated mid-transfer.
func (l *Ledger) Compensate(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	return l.credit(ctx, accountNumber, amount, false)
}

func (l *Ledger) credit(ctx context.Context, accountNumber string, amount decimal.Decimal, requireActive bool) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}

	acc, err := l.mutate(ctx, accountNumber, func(acc *models.Account) error {
		if requireActive && !acc.IsActive() {
			return fmt.Errorf("%w: %s", ErrAccountInactive, accountNumber)
		}
		acc.Balance = acc.Balance.Add(amount)
		return nil
	})
	if err != nil {
		logger.Log.Warnw("credit rejected", "account", accountNumber, "amount", amount, "compensation", !requireActive, "error", err)
		return err
	}

	logger.Log.Infow("account credited", "account", accountNumber, "amount", amount, "balance", acc.Balance, "compensation", !requireActive)
	return nil
}

// Balance returns the current balance of an account.
func (l *Ledger) Balance(ctx context.Context, accountNumber string) (decimal.Decimal, error) {
	acc, err := l.store.LoadAccount(ctx, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	if acc == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrAccountNotFound, accountNumber)
	}
	return acc.Balance, nil
}

// IsBusinessError reports whether err is an expected ledger outcome rather
// than a storage failure.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrAccountInactive) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrInvalidAmount)
}
