package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-funds-transfer/internal/models"
	"github.com/sbilibin2017/gw-funds-transfer/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUpiIDHandler(t *testing.T) {
	tests := []struct {
		name               string
		valid              bool
		err                error
		expectedStatusCode int
		expectedKey        string
	}{
		{name: "valid", valid: true, expectedStatusCode: http.StatusOK, expectedKey: "valid"},
		{name: "not registered", valid: false, expectedStatusCode: http.StatusNotFound, expectedKey: "valid"},
		{name: "store failure", err: errors.New("connection refused"), expectedStatusCode: http.StatusInternalServerError, expectedKey: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockValidator := NewMockUpiIDValidator(ctrl)
			mockValidator.EXPECT().ValidateUpiID(gomock.Any(), "user1@upi").Return(tt.valid, tt.err)

			req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/upi/user1@upi/validate", nil), "upiId", "user1@upi")
			rr := httptest.NewRecorder()

			NewValidateUpiIDHandler(mockValidator).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)
			if tt.err == nil {
				assert.Equal(t, tt.valid, resp["valid"])
			}
		})
	}
}

func TestRegisterUpiIDHandler(t *testing.T) {
	body := `{"upi_id":"asha@upi","account_number":"100000000001","is_primary":true}`

	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(m *MockUpiIDRegistrar)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "registered",
			requestBody: body,
			setupMocks: func(m *MockUpiIDRegistrar) {
				m.EXPECT().RegisterUpiID(gomock.Any(), "asha@upi", "100000000001", true).Return(&models.UpiID{
					UpiID:         "asha@upi",
					AccountNumber: "100000000001",
					IsPrimary:     true,
					Status:        models.AccountActive,
					CreatedAt:     time.Now(),
				}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "upi_id",
		},
		{
			name:               "invalid request body",
			requestBody:        "[]",
			setupMocks:         func(m *MockUpiIDRegistrar) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "malformed upi id",
			requestBody: body,
			setupMocks: func(m *MockUpiIDRegistrar) {
				m.EXPECT().RegisterUpiID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidUpiID)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "unknown account",
			requestBody: body,
			setupMocks: func(m *MockUpiIDRegistrar) {
				m.EXPECT().RegisterUpiID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrAccountNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedKey:        "error",
		},
		{
			name:        "already registered",
			requestBody: body,
			setupMocks: func(m *MockUpiIDRegistrar) {
				m.EXPECT().RegisterUpiID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrUpiIDExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedKey:        "error",
		},
		{
			name:        "store failure",
			requestBody: body,
			setupMocks: func(m *MockUpiIDRegistrar) {
				m.EXPECT().RegisterUpiID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrPersistence)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRegistrar := NewMockUpiIDRegistrar(ctrl)
			tt.setupMocks(mockRegistrar)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/upi", bytes.NewReader([]byte(tt.requestBody)))
			rr := httptest.NewRecorder()

			NewRegisterUpiIDHandler(mockRegistrar).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			var resp map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Contains(t, resp, tt.expectedKey)
		})
	}
}
