package services

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sbilibin2017/gw-funds-transfer/internal/ledger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/rails"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrPersistence is returned when a transaction record or account could not be read or written.
	ErrPersistence = errors.New("persistence failure")
	// ErrCompensationFailed is returned when a debit could not be reversed after a failed credit.
	ErrCompensationFailed = errors.New("compensation failed")
	// ErrTransactionNotFound is returned when no transaction has the requested id.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// maxPartyLength caps an unresolved identifier as it is recorded on a transaction.
const maxPartyLength = 100

// AccountFinder resolves party identifiers to accounts.
type AccountFinder interface {
	LoadAccount(ctx context.Context, accountNumber string) (*models.Account, error) // Returns nil if the account does not exist
	FindAccountByUpiID(ctx context.Context, upiID string) (*models.Account, error)  // Returns nil if the UPI id is unknown or inactive
}

// UpiCache caches UPI id to account number mappings.
type UpiCache interface {
	GetAccountNumber(ctx context.Context, upiID string) (string, error)      // Returns the cached account number
	SetAccountNumber(ctx context.Context, upiID, accountNumber string) error // Caches the mapping
}

// TransactionStore persists transaction records.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, txn *models.Transaction) error                  // Inserts a new record
	UpdateTransaction(ctx context.Context, txn *models.Transaction) error                  // Updates a non-terminal record
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) // Returns nil if unknown
}

// Ledger moves money between accounts.
type Ledger interface {
	Debit(ctx context.Context, accountNumber string, amount decimal.Decimal) error      // Withdraws from an ACTIVE account
	Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) error     // Deposits into an ACTIVE account
	Compensate(ctx context.Context, accountNumber string, amount decimal.Decimal) error // Reverses an earlier debit
}

// SettlementSimulator adds rail latency.
type SettlementSimulator interface {
	Simulate(ctx context.Context, ch models.Channel) error
}

// IDGenerator issues transaction ids.
type IDGenerator interface {
	Next(ch models.Channel) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransferRequest describes one funds transfer.
type TransferRequest struct {
	Channel     models.Channel
	FromID      string // VPA for UPI, account number otherwise
	ToID        string // VPA for UPI, account number otherwise
	Amount      decimal.Decimal
	Remarks     string
	RoutingCode string // Optional IFSC of the destination branch
}

// TransferService orchestrates transfers: validation, debit, credit and compensation.
type TransferService struct {
	accounts     AccountFinder
	cache        UpiCache
	transactions TransactionStore
	ledger       Ledger
	simulator    SettlementSimulator
	ids          IDGenerator
	kafkaWriter  KafkaWriter
	now          func() time.Time
}

// NewTransferService creates a new TransferService. cache and kafkaWriter may be nil.
func NewTransferService(
	accounts AccountFinder,
	cache UpiCache,
	transactions TransactionStore,
	ledger Ledger,
	simulator SettlementSimulator,
	ids IDGenerator,
	kafkaWriter KafkaWriter,
) *TransferService {
	return &TransferService{
		accounts:     accounts,
		cache:        cache,
		transactions: transactions,
		ledger:       ledger,
		simulator:    simulator,
		ids:          ids,
		kafkaWriter:  kafkaWriter,
		now:          time.Now,
	}
}

// publishTransaction publishes a terminal transaction to Kafka.
func (s *TransferService) publishTransaction(ctx context.Context, result *models.TransactionResult) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", result.TransactionID)
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", result.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(result.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", result.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", result.TransactionID, "status", result.Status)
	}
}

// Transfer moves req.Amount from the payer to the payee over req.Channel.
//
// Business failures (unknown party, bad format, amount out of bounds, ledger
// rejections) produce a FAILED result and a nil error. A non-nil error means
// the outcome could not be recorded: it wraps ErrPersistence, and also
// ErrCompensationFailed when a debit could not be reversed.
func (s *TransferService) Transfer(ctx context.Context, req TransferRequest) (*models.TransactionResult, error) {
	if !req.Channel.Valid() {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownChannel, req.Channel)
	}

	if err := s.simulator.Simulate(ctx, req.Channel); err != nil {
		logger.Log.Warnw("settlement wait aborted, continuing transfer", "channel", req.Channel, "error", err)
	}
	// Once past the wait the transfer must reach a terminal status.
	ctx = context.WithoutCancel(ctx)

	id, err := s.ids.Next(req.Channel)
	if err != nil {
		logger.Log.Errorw("failed to generate transaction id", "channel", req.Channel, "error", err)
		return nil, fmt.Errorf("generate transaction id: %w", err)
	}

	from, err := s.resolve(ctx, req.Channel, req.FromID)
	if err != nil {
		return nil, err
	}
	to, err := s.resolve(ctx, req.Channel, req.ToID)
	if err != nil {
		return nil, err
	}

	fromNumber, toNumber := partyLabel(req.FromID), partyLabel(req.ToID)
	if from != nil {
		fromNumber = from.AccountNumber
	}
	if to != nil {
		toNumber = to.AccountNumber
	}
	txn := models.NewTransaction(id, req.Channel, fromNumber, toNumber, req.Amount, req.Remarks, s.now())

	violation, err := s.validate(req, from, to)
	if err != nil {
		return nil, err
	}
	if violation != nil {
		return s.reject(ctx, txn, violation)
	}

	return s.execute(ctx, txn)
}

// partyLabel truncates an identifier to maxPartyLength runes.
func partyLabel(id string) string {
	r := []rune(id)
	if len(r) <= maxPartyLength {
		return id
	}
	return string(r[:maxPartyLength])
}

// resolve returns the account behind a party identifier, or nil if there is none.
func (s *TransferService) resolve(ctx context.Context, ch models.Channel, id string) (*models.Account, error) {
	if !ch.UsesVPA() {
		acc, err := s.accounts.LoadAccount(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to load account", "account", id, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return acc, nil
	}

	if s.cache != nil {
		number, err := s.cache.GetAccountNumber(ctx, id)
		if err == nil {
			acc, err := s.accounts.LoadAccount(ctx, number)
			if err != nil {
				logger.Log.Errorw("failed to load account", "account", number, "error", err)
				return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
			}
			if acc != nil {
				return acc, nil
			}
		}
	}

	acc, err := s.accounts.FindAccountByUpiID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to resolve UPI id", "upi_id", id, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if acc != nil && s.cache != nil {
		if err := s.cache.SetAccountNumber(ctx, id, acc.AccountNumber); err != nil {
			logger.Log.Errorw("failed to cache UPI id", "upi_id", id, "error", err)
		}
	}
	return acc, nil
}

// validate applies the pre-ledger checks in order: identifiers resolved,
// distinct accounts, amount, identifier shape, routing code.
func (s *TransferService) validate(req TransferRequest, from, to *models.Account) (*rails.Violation, error) {
	if from == nil {
		return &rails.Violation{Code: models.FailureUnknownIdentifier, Reason: fmt.Sprintf("unknown payer identifier %q", partyLabel(req.FromID))}, nil
	}
	if to == nil {
		return &rails.Violation{Code: models.FailureUnknownIdentifier, Reason: fmt.Sprintf("unknown payee identifier %q", partyLabel(req.ToID))}, nil
	}
	if from.AccountNumber == to.AccountNumber {
		return &rails.Violation{Code: models.FailureSameAccount, Reason: "payer and payee resolve to the same account"}, nil
	}

	violation, err := rails.CheckAmount(req.Channel, req.Amount)
	if err != nil || violation != nil {
		return violation, err
	}

	for _, id := range []string{req.FromID, req.ToID} {
		if !rails.ValidateIdentifier(req.Channel, id) {
			return &rails.Violation{Code: models.FailureInvalidFormat, Reason: fmt.Sprintf("identifier %q is not valid for %s", partyLabel(id), req.Channel)}, nil
		}
	}

	if !req.Channel.UsesVPA() {
		code := req.RoutingCode
		if code == "" {
			code = to.IFSC
		}
		if code != "" && !rails.ValidRoutingCode(code) {
			return &rails.Violation{Code: models.FailureInvalidFormat, Reason: fmt.Sprintf("routing code %q is not a valid IFSC", code)}, nil
		}
	}
	return nil, nil
}

// reject records a transfer that failed validation before touching any balance.
func (s *TransferService) reject(ctx context.Context, txn *models.Transaction, violation *rails.Violation) (*models.TransactionResult, error) {
	if err := txn.Fail(violation.Code, violation.Reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.transactions.CreateTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record rejected transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Log.Infow("transfer rejected", "transaction_id", txn.TransactionID, "channel", txn.Channel, "failure_code", violation.Code, "reason", violation.Reason)
	result := txn.Result()
	s.publishTransaction(ctx, result)
	return result, nil
}

// execute runs the debit, credit and, if needed, compensation legs. Every leg
// is persisted before the ledger call so a crashed transfer can be reconciled.
func (s *TransferService) execute(ctx context.Context, txn *models.Transaction) (*models.TransactionResult, error) {
	if err := s.transactions.CreateTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := txn.Begin(s.now()); err != nil {
		return nil, err
	}
	if err := txn.MarkLeg(models.LegDebit, s.now()); err != nil {
		return nil, err
	}
	if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
		return nil, s.abort(ctx, txn, err)
	}

	if err := s.ledger.Debit(ctx, txn.FromAccount, txn.Amount); err != nil {
		if !ledger.IsBusinessError(err) {
			return nil, s.abort(ctx, txn, err)
		}
		return s.finish(ctx, txn, failureCode(err), err.Error())
	}

	if err := txn.MarkLeg(models.LegCredit, s.now()); err != nil {
		return nil, err
	}
	if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
		if cerr := s.compensate(ctx, txn); cerr != nil {
			return nil, errors.Join(s.abort(ctx, txn, err), cerr)
		}
		return nil, s.abort(ctx, txn, err)
	}

	if err := s.ledger.Credit(ctx, txn.ToAccount, txn.Amount); err != nil {
		cerr := s.compensate(ctx, txn)
		if !ledger.IsBusinessError(err) {
			return nil, errors.Join(s.abort(ctx, txn, err), cerr)
		}
		result, ferr := s.finish(ctx, txn, failureCode(err), err.Error())
		if cerr != nil {
			return result, errors.Join(cerr, ferr)
		}
		return result, ferr
	}

	fee, err := rails.Charge(txn.Channel, txn.Amount)
	if err != nil {
		return nil, err
	}
	if err := txn.Succeed(fee, s.now()); err != nil {
		return nil, err
	}
	if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
		// Both legs are applied; the CREDIT leg on the stored record lets reconciliation settle it.
		logger.Log.Errorw("failed to record successful transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Log.Infow("transfer completed",
		"transaction_id", txn.TransactionID,
		"channel", txn.Channel,
		"from", txn.FromAccount,
		"to", txn.ToAccount,
		"amount", txn.Amount,
		"fee", txn.Fee,
	)
	result := txn.Result()
	s.publishTransaction(ctx, result)
	return result, nil
}

// compensate reverses the debit of txn and records the outcome on its leg.
func (s *TransferService) compensate(ctx context.Context, txn *models.Transaction) error {
	if err := txn.MarkLeg(models.LegCompensation, s.now()); err != nil {
		return err
	}
	if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record compensation leg", "transaction_id", txn.TransactionID, "error", err)
	}

	if err := s.ledger.Compensate(ctx, txn.FromAccount, txn.Amount); err != nil {
		logger.Log.Errorw("compensation failed, funds debited but not returned",
			"transaction_id", txn.TransactionID,
			"account", txn.FromAccount,
			"amount", txn.Amount,
			"error", err,
		)
		if merr := txn.MarkLeg(models.LegCompensationFailed, s.now()); merr != nil {
			return merr
		}
		return fmt.Errorf("%w: transaction %s: %v", ErrCompensationFailed, txn.TransactionID, err)
	}

	logger.Log.Infow("debit compensated", "transaction_id", txn.TransactionID, "account", txn.FromAccount, "amount", txn.Amount)
	return txn.MarkLeg(models.LegCompensated, s.now())
}

// finish marks txn FAILED with a business failure and persists it.
func (s *TransferService) finish(ctx context.Context, txn *models.Transaction, code models.FailureCode, reason string) (*models.TransactionResult, error) {
	if err := txn.Fail(code, reason, s.now()); err != nil {
		return nil, err
	}
	if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
		logger.Log.Errorw("failed to record failed transaction", "transaction_id", txn.TransactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Log.Infow("transfer failed", "transaction_id", txn.TransactionID, "failure_code", code, "reason", reason, "leg", txn.Leg)
	result := txn.Result()
	s.publishTransaction(ctx, result)
	return result, nil
}

// abort marks txn FAILED after a storage error and returns the error to surface.
func (s *TransferService) abort(ctx context.Context, txn *models.Transaction, cause error) error {
	logger.Log.Errorw("transfer aborted by storage failure", "transaction_id", txn.TransactionID, "leg", txn.Leg, "error", cause)

	if err := txn.Fail(models.FailurePersistence, cause.Error(), s.now()); err == nil {
		if err := s.transactions.UpdateTransaction(ctx, txn); err != nil {
			logger.Log.Errorw("failed to record aborted transaction", "transaction_id", txn.TransactionID, "error", err)
		}
	}
	return fmt.Errorf("%w: %v", ErrPersistence, cause)
}

func failureCode(err error) models.FailureCode {
	switch {
	case errors.Is(err, ledger.ErrAccountNotFound):
		return models.FailureAccountNotFound
	case errors.Is(err, ledger.ErrAccountInactive):
		return models.FailureAccountInactive
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return models.FailureInsufficientBalance
	default:
		return models.FailureInvalidFormat
	}
}

// GetTransactionStatus returns the stored state of a transaction. It never mutates anything.
func (s *TransferService) GetTransactionStatus(ctx context.Context, transactionID string) (*models.TransactionResult, error) {
	txn, err := s.transactions.GetTransaction(ctx, transactionID)
	if err != nil {
		logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if txn == nil {
		return nil, ErrTransactionNotFound
	}
	return txn.Result(), nil
}
