package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-funds-transfer/internal/logger"
	"github.com/sbilibin2017/gw-funds-transfer/internal/middlewares"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTransferHandler(t *testing.T) {
	success := &models.TransactionResult{
		TransactionID: "UPI20250101120000000A1B2C3D4",
		Channel:       models.UPI,
		Amount:        decimal.NewFromInt(500),
		Fee:           decimal.Zero,
		Status:        models.StatusSuccess,
		FromAccount:   "100000000001",
		ToAccount:     "100000000002",
		Timestamp:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	failed := *success
	failed.Status = models.StatusFailed
	failed.FailureCode = models.FailureInsufficientBalance
	failed.FailureReason = "insufficient balance in account 100000000001"

	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(m *MockTransferer)
		expectedStatusCode int
		expectedKey        string
		expectedStatus     models.Status
	}{
		{
			name:        "successful transfer",
			requestBody: `{"channel":"upi","from_id":"user1@upi","to_id":"user2@upi","amount":"500.00","remarks":"dinner"}`,
			setupMocks: func(m *MockTransferer) {
				m.EXPECT().
					Transfer(gomock.Any(), services.TransferRequest{
						Channel: models.UPI,
						FromID:  "user1@upi",
						ToID:    "user2@upi",
						Amount:  decimal.RequireFromString("500.00"),
						Remarks: "dinner",
					}).
					Return(success, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transaction",
			expectedStatus:     models.StatusSuccess,
		},
		{
			name:        "failed transfer is still a 200",
			requestBody: `{"channel":"IMPS","from_id":"100000000001","to_id":"100000000002","amount":90000,"routing_code":" sbin0001234 "}`,
			setupMocks: func(m *MockTransferer) {
				m.EXPECT().
					Transfer(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req services.TransferRequest) (*models.TransactionResult, error) {
						assert.Equal(t, "SBIN0001234", req.RoutingCode)
						assert.True(t, req.Amount.Equal(decimal.NewFromInt(90000)))
						return &failed, nil
					})
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "transaction",
			expectedStatus:     models.StatusFailed,
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(m *MockTransferer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "unknown channel",
			requestBody:        `{"channel":"SWIFT","from_id":"a","to_id":"b","amount":1}`,
			setupMocks:         func(m *MockTransferer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:               "missing payee",
			requestBody:        `{"channel":"UPI","from_id":"user1@upi","to_id":"  ","amount":1}`,
			setupMocks:         func(m *MockTransferer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "persistence failure",
			requestBody: `{"channel":"NEFT","from_id":"100000000001","to_id":"100000000002","amount":100}`,
			setupMocks: func(m *MockTransferer) {
				m.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(nil, services.ErrPersistence)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTransferer := NewMockTransferer(ctrl)
			tt.setupMocks(mockTransferer)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", bytes.NewReader([]byte(tt.requestBody)))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			NewTransferHandler(mockTransferer).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)

			if tt.expectedStatus != "" {
				var txn models.TransactionResult
				require.NoError(t, json.Unmarshal(resp["transaction"], &txn))
				assert.Equal(t, tt.expectedStatus, txn.Status)
			}
		})
	}
}

func TestTransferHandler_LogsRequestID(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	originalLog := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = originalLog }()

	ctrl := gomock.NewController(t)
	mockTransferer := NewMockTransferer(ctrl)
	mockTransferer.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(nil, services.ErrPersistence)

	handler := middlewares.LoggingMiddleware(NewTransferHandler(mockTransferer))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers",
		bytes.NewReader([]byte(`{"channel":"IMPS","from_id":"100000000001","to_id":"100000000002","amount":100}`)))
	req.Header.Set("X-Request-ID", "req-7f3a")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	failures := logs.FilterMessage("transfer failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "req-7f3a", failures[0].ContextMap()["request_id"])
}
