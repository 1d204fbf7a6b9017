package handlers

//go:generate mockgen -source=upi.go -destination=upi_mock.go -package=handlers

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

// UpiIDValidator defines UPI id validation.
type UpiIDValidator interface {
	ValidateUpiID(ctx context.Context, upiID string) (bool, error)
}

// UpiIDRegistrar defines UPI id registration.
type UpiIDRegistrar interface {
	RegisterUpiID(ctx context.Context, upiID, accountNumber string, primary bool) (*models.UpiID, error)
}

// ValidateUpiIDResponse represents the result of a UPI id check
// swagger:model ValidateUpiIDResponse
type ValidateUpiIDResponse struct {
	// Checked UPI id
	// default: user1@upi
	UpiID string `json:"upi_id"`

	// Whether the UPI id is registered and active
	// default: true
	Valid bool `json:"valid"`
}

// RegisterUpiIDRequest represents the JSON body for registering a UPI id
// swagger:model RegisterUpiIDRequest
type RegisterUpiIDRequest struct {
	// UPI id (VPA)
	// required: true
	// default: asha@upi
	UpiID string `json:"upi_id"`

	// Account the UPI id resolves to
	// required: true
	// default: 100000000001
	AccountNumber string `json:"account_number"`

	// Whether this is the primary UPI id of the account
	// default: true
	IsPrimary bool `json:"is_primary"`
}

// RegisterUpiIDResponse represents a registered UPI id
// swagger:model RegisterUpiIDResponse
type RegisterUpiIDResponse struct {
	// Registered UPI id
	UpiID *models.UpiID `json:"upi_id"`
}

// UpiErrorResponse represents an error response for UPI endpoints
// swagger:model UpiErrorResponse
type UpiErrorResponse struct {
	// Error message
	// default: UPI ID not found
	Error string `json:"error"`
}

// NewValidateUpiIDHandler returns an HTTP handler that checks whether a UPI id can receive funds.
// @Summary Validate UPI id
// @Description Checks that a UPI id is registered and active
// @Tags upi
// @Produce json
// @Param upiId path string true "UPI id"
// @Success 200 {object} handlers.ValidateUpiIDResponse "UPI id is valid"
// @Failure 404 {object} handlers.ValidateUpiIDResponse "UPI id not found"
// @Failure 500 {object} handlers.UpiErrorResponse "Internal server error"
// @Router /upi/{upiId}/validate [get]
func NewValidateUpiIDHandler(svc UpiIDValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		upiID := chi.URLParam(r, "upiId")

		valid, err := svc.ValidateUpiID(ctx, upiID)
		if err != nil {
			logger.Log.Errorw("failed to validate UPI id", "request_id", middlewares.RequestIDFromContext(ctx), "upi_id", upiID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UpiErrorResponse{Error: "Internal server error"})
			return
		}

		status := http.StatusOK
		if !valid {
			status = http.StatusNotFound
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(ValidateUpiIDResponse{UpiID: upiID, Valid: valid})
	}
}

// NewRegisterUpiIDHandler returns an HTTP handler that maps a UPI id to an account.
// @Summary Register UPI id
// @Description Maps a UPI id to an existing account
// @Tags upi
// @Accept json
// @Produce json
// @Param request body handlers.RegisterUpiIDRequest true "Register UPI Request"
// @Success 201 {object} handlers.RegisterUpiIDResponse "UPI id registered"
// @Failure 400 {object} handlers.UpiErrorResponse "Invalid UPI id"
// @Failure 404 {object} handlers.UpiErrorResponse "Account not found"
// @Failure 409 {object} handlers.UpiErrorResponse "UPI id already registered"
// @Failure 500 {object} handlers.UpiErrorResponse "Internal server error"
// @Router /upi [post]
func NewRegisterUpiIDHandler(svc UpiIDRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterUpiIDRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode register UPI request", "request_id", middlewares.RequestIDFromContext(ctx), "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpiErrorResponse{Error: "Invalid request body"})
			return
		}

		upi, err := svc.RegisterUpiID(ctx, req.UpiID, req.AccountNumber, req.IsPrimary)
		if err != nil {
			status, msg := http.StatusInternalServerError, "Internal server error"
			switch {
			case errors.Is(err, services.ErrInvalidUpiID):
				status, msg = http.StatusBadRequest, "Invalid UPI ID"
			case errors.Is(err, services.ErrAccountNotFound):
				status, msg = http.StatusNotFound, "Account not found"
			case errors.Is(err, services.ErrUpiIDExists):
				status, msg = http.StatusConflict, "UPI ID already registered"
			}
			logger.Log.Errorw("failed to register UPI id", "request_id", middlewares.RequestIDFromContext(ctx), "upi_id", req.UpiID, "account", req.AccountNumber, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(UpiErrorResponse{Error: msg})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterUpiIDResponse{UpiID: upi})
	}
}
