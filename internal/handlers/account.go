package handlers

//go:generate mockgen -source=account.go -destination=account_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/middlewares"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/services"
	"github.com/shopspring/decimal"
)

// AccountReader defines the account lookup the service must implement.
type AccountReader interface {
	GetAccount(ctx context.Context, accountNumber string) (*models.Account, error)
}

// BalanceReader defines the balance lookup.
type BalanceReader interface {
	GetBalance(ctx context.Context, accountNumber string) (decimal.Decimal, error)
}

// AccountOpener defines account provisioning.
type AccountOpener interface {
	OpenAccount(ctx context.Context, req services.OpenAccountRequest) (*models.Account, error)
}

// AccountDeactivator defines account deactivation.
type AccountDeactivator interface {
	DeactivateAccount(ctx context.Context, accountNumber string) error
}

// AccountResponse represents an account
// swagger:model AccountResponse
type AccountResponse struct {
	// Account details
	Account *models.Account `json:"account"`
}

// BalanceResponse represents the balance of an account
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Account number
	// default: 100000000001
	AccountNumber string `json:"account_number"`

	// Current balance
	// default: 100000.00
	Balance decimal.Decimal `json:"balance"`
}

// OpenAccountRequest represents the JSON body for opening an account
// swagger:model OpenAccountRequest
type OpenAccountRequest struct {
	// Account number, 9 to 18 digits
	// required: true
	// default: 100000000101
	AccountNumber string `json:"account_number"`

	// Name of the account holder
	// required: true
	// default: Asha Rao
	HolderName string `json:"holder_name"`

	// Opening balance
	// default: 1000.00
	InitialBalance decimal.Decimal `json:"initial_balance"`

	// Branch IFSC
	// required: true
	// default: SBIN0001234
	IFSC string `json:"ifsc"`

	// Bank name
	// default: State Bank of India
	BankName string `json:"bank_name"`

	// Account type
	// default: SAVINGS
	AccountType string `json:"account_type"`
}

// AccountErrorResponse represents an error response for account endpoints
// swagger:model AccountErrorResponse
type AccountErrorResponse struct {
	// Error message
	// default: Account not found
	Error string `json:"error"`
}

// NewGetAccountHandler returns an HTTP handler that looks up an account.
// @Summary Get account
// @Description Returns account details and balance
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} handlers.AccountResponse "Account"
// @Failure 404 {object} handlers.AccountErrorResponse "Account not found"
// @Failure 500 {object} handlers.AccountErrorResponse "Internal server error"
// @Router /accounts/{accountNumber} [get]
func NewGetAccountHandler(svc AccountReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountNumber := chi.URLParam(r, "accountNumber")

		acc, err := svc.GetAccount(ctx, accountNumber)
		if err != nil {
			writeAccountError(ctx, w, accountNumber, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountResponse{Account: acc})
	}
}

// NewGetBalanceHandler returns an HTTP handler that reports an account balance.
// @Summary Get balance
// @Description Returns the current ledger balance of an account
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} handlers.BalanceResponse "Balance"
// @Failure 404 {object} handlers.AccountErrorResponse "Account not found"
// @Failure 500 {object} handlers.AccountErrorResponse "Internal server error"
// @Router /accounts/{accountNumber}/balance [get]
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountNumber := chi.URLParam(r, "accountNumber")

		balance, err := svc.GetBalance(ctx, accountNumber)
		if err != nil {
			writeAccountError(ctx, w, accountNumber, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{AccountNumber: accountNumber, Balance: balance})
	}
}

// NewOpenAccountHandler returns an HTTP handler that opens an account.
// @Summary Open account
// @Description Provisions an ACTIVE account with an opening balance
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.OpenAccountRequest true "Open Account Request"
// @Success 201 {object} handlers.AccountResponse "Account opened"
// @Failure 400 {object} handlers.AccountErrorResponse "Invalid account details"
// @Failure 409 {object} handlers.AccountErrorResponse "Account already exists"
// @Failure 500 {object} handlers.AccountErrorResponse "Internal server error"
// @Router /accounts [post]
func NewOpenAccountHandler(svc AccountOpener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req OpenAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode open account request", "request_id", middlewares.RequestIDFromContext(ctx), "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccountErrorResponse{Error: "Invalid request body"})
			return
		}

		acc, err := svc.OpenAccount(ctx, services.OpenAccountRequest{
			AccountNumber:  req.AccountNumber,
			HolderName:     req.HolderName,
			InitialBalance: req.InitialBalance,
			IFSC:           req.IFSC,
			BankName:       req.BankName,
			AccountType:    req.AccountType,
		})
		if err != nil {
			writeAccountError(ctx, w, req.AccountNumber, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(AccountResponse{Account: acc})
	}
}

// NewDeactivateAccountHandler returns an HTTP handler that deactivates an account.
// @Summary Deactivate account
// @Description Marks an account INACTIVE so it can no longer send or receive funds
// @Tags accounts
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 204 "Account deactivated"
// @Failure 404 {object} handlers.AccountErrorResponse "Account not found"
// @Failure 500 {object} handlers.AccountErrorResponse "Internal server error"
// @Router /accounts/{accountNumber}/deactivate [post]
func NewDeactivateAccountHandler(svc AccountDeactivator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		accountNumber := chi.URLParam(r, "accountNumber")

		if err := svc.DeactivateAccount(ctx, accountNumber); err != nil {
			writeAccountError(ctx, w, accountNumber, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeAccountError(ctx context.Context, w http.ResponseWriter, accountNumber string, err error) {
	status, msg := http.StatusInternalServerError, "Internal server error"
	switch {
	case errors.Is(err, services.ErrAccountNotFound):
		status, msg = http.StatusNotFound, "Account not found"
	case errors.Is(err, services.ErrInvalidAccount):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrAccountExists):
		status, msg = http.StatusConflict, "Account already exists"
	}

	if status == http.StatusInternalServerError {
		logger.Log.Errorw("account request failed", "request_id", middlewares.RequestIDFromContext(ctx), "account", accountNumber, "error", err)
	} else {
		logger.Log.Warnw("account request rejected", "request_id", middlewares.RequestIDFromContext(ctx), "account", accountNumber, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(AccountErrorResponse{Error: msg})
}
