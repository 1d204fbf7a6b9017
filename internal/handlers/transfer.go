package handlers

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/middlewares"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/services"
	"github.com/shopspring/decimal"
)

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, req services.TransferRequest) (*models.TransactionResult, error)
}

// TransferRequest represents the JSON body for a funds transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Payment rail: UPI, IMPS, NEFT or RTGS
	// required: true
	// default: UPI
	Channel string `json:"channel"`

	// Payer VPA for UPI, account number otherwise
	// required: true
	// default: user1@upi
	FromID string `json:"from_id"`

	// Payee VPA for UPI, account number otherwise
	// required: true
	// default: user2@upi
	ToID string `json:"to_id"`

	// Amount in rupees, at most 2 decimal places
	// required: true
	// default: 500.00
	Amount decimal.Decimal `json:"amount"`

	// Optional remarks
	Remarks string `json:"remarks,omitempty"`

	// Optional IFSC of the payee branch, ignored for UPI
	RoutingCode string `json:"routing_code,omitempty"`
}

// TransferResponse represents the outcome of a transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// Outcome message
	// default: Transfer completed
	Message string `json:"message"`

	// Transaction record
	Transaction *models.TransactionResult `json:"transaction"`
}

// TransferErrorResponse represents an error response for a transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewTransferHandler returns an HTTP handler that moves funds between two parties.
// @Summary Transfer funds
// @Description Debits the payer and credits the payee over the chosen rail. Business failures return status FAILED with a failure code.
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse "Terminal transaction record"
// @Failure 400 {object} handlers.TransferErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.TransferErrorResponse "Internal server error"
// @Router /transfers [post]
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode transfer request", "request_id", middlewares.RequestIDFromContext(ctx), "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		channel, err := models.ParseChannel(req.Channel)
		if err != nil {
			logger.Log.Warnw("invalid transfer channel", "request_id", middlewares.RequestIDFromContext(ctx), "channel", req.Channel)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Unknown channel"})
			return
		}

		fromID, toID := strings.TrimSpace(req.FromID), strings.TrimSpace(req.ToID)
		if fromID == "" || toID == "" {
			logger.Log.Warnw("transfer request without parties", "request_id", middlewares.RequestIDFromContext(ctx), "from", req.FromID, "to", req.ToID)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Payer and payee are required"})
			return
		}

		result, err := svc.Transfer(ctx, services.TransferRequest{
			Channel:     channel,
			FromID:      fromID,
			ToID:        toID,
			Amount:      req.Amount,
			Remarks:     req.Remarks,
			RoutingCode: strings.ToUpper(strings.TrimSpace(req.RoutingCode)),
		})
		if err != nil {
			logger.Log.Errorw("transfer failed", "request_id", middlewares.RequestIDFromContext(ctx), "channel", channel, "from", fromID, "to", toID, "error", err)
			msg := "Internal server error"
			if errors.Is(err, services.ErrCompensationFailed) {
				msg = "Transfer could not be reversed, contact support"
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: msg})
			return
		}

		message := "Transfer completed"
		if result.Status == models.StatusFailed {
			message = "Transfer failed"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TransferResponse{
			Message:     message,
			Transaction: result,
		})
	}
}
