package handlers

//go:generate mockgen -source=transaction_status.go -destination=transaction_status_mock.go -package=handlers

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
)

// TransactionStatusReader defines the interface that the service must implement.
type TransactionStatusReader interface {
	GetTransactionStatus(ctx context.Context, transactionID string) (*models.TransactionResult, error)
}

// TransactionStatusResponse represents a stored transaction
// swagger:model TransactionStatusResponse
type TransactionStatusResponse struct {
	// Transaction record
	Transaction *models.TransactionResult `json:"transaction"`
}

// TransactionStatusErrorResponse represents an error response for a status lookup
// swagger:model TransactionStatusErrorResponse
type TransactionStatusErrorResponse struct {
	// Error message
	// default: Transaction not found
	Error string `json:"error"`
}

// NewTransactionStatusHandler returns an HTTP handler that reports the state of a transaction.
// @Summary Get transaction status
// @Description Returns the stored transaction record. Reading never changes it.
// @Tags transfers
// @Produce json
// @Param id path string true "Transaction id"
// @Success 200 {object} handlers.TransactionStatusResponse "Transaction record"
// @Failure 404 {object} handlers.TransactionStatusErrorResponse "Transaction not found"
// @Failure 500 {object} handlers.TransactionStatusErrorResponse "Internal server error"
// @Router /transactions/{id} [get]
func NewTransactionStatusHandler(svc TransactionStatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		result, err := svc.GetTransactionStatus(ctx, id)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			if errors.Is(err, services.ErrTransactionNotFound) {
				logger.Log.Warnw("transaction not found", "request_id", middlewares.RequestIDFromContext(ctx), "transaction_id", id)
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TransactionStatusErrorResponse{Error: "Transaction not found"})
				return
			}
			logger.Log.Errorw("failed to get transaction status", "request_id", middlewares.RequestIDFromContext(ctx), "transaction_id", id, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionStatusErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransactionStatusResponse{Transaction: result})
	}
}
