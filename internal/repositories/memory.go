package repositories

import (
	"context"
	"sync"

	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
)

// MemoryStore keeps accounts, UPI ids and transactions in memory.
// It is safe for concurrent use and hands out copies so callers can never
// mutate stored rows directly.
type MemoryStore struct {
	mu           sync.RWMutex
	accounts     map[string]models.Account
	upiIDs       map[string]models.UpiID
	transactions map[string]models.Transaction
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:     make(map[string]models.Account),
		upiIDs:       make(map[string]models.UpiID),
		transactions: make(map[string]models.Transaction),
	}
}

// CreateAccount provisions a new account.
func (m *MemoryStore) CreateAccount(ctx context.Context, acc *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[acc.AccountNumber]; exists {
		return ErrAccountExists
	}
	acc.Version = 1
	m.accounts[acc.AccountNumber] = *acc
	return nil
}

// LoadAccount returns a copy of the account, or nil if it does not exist.
func (m *MemoryStore) LoadAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc, ok := m.accounts[accountNumber]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

// SaveAccount stores acc if its version matches the stored row, then bumps the version.
func (m *MemoryStore) SaveAccount(ctx context.Context, acc *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.accounts[acc.AccountNumber]
	if !ok || stored.Version != acc.Version {
		return models.ErrVersionConflict
	}
	acc.Version++
	m.accounts[acc.AccountNumber] = *acc
	return nil
}

// ListAccounts returns copies of all accounts.
func (m *MemoryStore) ListAccounts(ctx context.Context) ([]models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	accounts := make([]models.Account, 0, len(m.accounts))
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// RegisterUpiID maps a UPI id to an existing account.
func (m *MemoryStore) RegisterUpiID(ctx context.Context, upi *models.UpiID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.upiIDs[upi.UpiID]; exists {
		return ErrUpiIDExists
	}
	if _, ok := m.accounts[upi.AccountNumber]; !ok {
		return ErrAccountNotFound
	}
	m.upiIDs[upi.UpiID] = *upi
	return nil
}

// FindAccountByUpiID resolves an ACTIVE UPI id to its account, or nil if unknown.
func (m *MemoryStore) FindAccountByUpiID(ctx context.Context, upiID string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	upi, ok := m.upiIDs[upiID]
	if !ok || upi.Status != models.AccountActive {
		return nil, nil
	}
	acc, ok := m.accounts[upi.AccountNumber]
	if !ok {
		return nil, nil
	}
	return &acc, nil
}

// CreateTransaction stores a new transaction record.
func (m *MemoryStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.transactions[txn.TransactionID]; exists {
		return ErrTransactionExists
	}
	m.transactions[txn.TransactionID] = *txn
	return nil
}

// UpdateTransaction overwrites a transaction unless the stored copy is already terminal.
func (m *MemoryStore) UpdateTransaction(ctx context.Context, txn *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.transactions[txn.TransactionID]
	if !ok {
		return ErrTransactionNotFound
	}
	if stored.Status.Terminal() {
		return ErrTransactionFinalized
	}
	m.transactions[txn.TransactionID] = *txn
	return nil
}

// GetTransaction returns a copy of the transaction, or nil if unknown.
func (m *MemoryStore) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	txn, ok := m.transactions[transactionID]
	if !ok {
		return nil, nil
	}
	return &txn, nil
}

// GetUpiID returns the UPI id record, or nil if it is not registered.
func (m *MemoryStore) GetUpiID(ctx context.Context, upiID string) (*models.UpiID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	upi, ok := m.upiIDs[upiID]
	if !ok {
		return nil, nil
	}
	return &upi, nil
}
