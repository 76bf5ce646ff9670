package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/dto"
	"github.com/GlebRadaev/valorhood/pkg/auth"
)

const userID = "4f1c2b9e-8a47-4c55-9d3e-2a6f0f6b1c11"

func NewMock(t *testing.T) (*LedgerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func authorised(r *http.Request) *http.Request {
	return r.WithContext(auth.WithUserID(r.Context(), userID))
}

func TestGetBalance(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		authorised   bool
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:       "Balance returned",
			authorised: true,
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(15), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"aura":15}`,
		},
		{
			name:       "User missing",
			authorised: true,
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(0), domain.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "No identity",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
			if tt.authorised {
				req = authorised(req)
			}
			rr := httptest.NewRecorder()

			handler.GetBalance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	questID := int64(42)

	t.Run("History returned newest first", func(t *testing.T) {
		service.EXPECT().GetTransactions(gomock.Any(), userID).Return([]domain.Transaction{
			{ID: 2, UserID: userID, Amount: 5, Kind: domain.TxSpend, BalanceAfter: 10, CreatedAt: now},
			{ID: 1, UserID: userID, Amount: 15, Kind: domain.TxGain, QuestID: &questID, BalanceAfter: 15, CreatedAt: now},
		}, nil)
		rr := httptest.NewRecorder()

		handler.GetTransactions(rr, authorised(httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.TransactionDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 2)
		assert.Equal(t, "spend", resp[0].Kind)
		assert.Nil(t, resp[0].QuestID)
		assert.Equal(t, &questID, resp[1].QuestID)
	})

	t.Run("No transactions", func(t *testing.T) {
		service.EXPECT().GetTransactions(gomock.Any(), userID).Return(nil, nil)
		rr := httptest.NewRecorder()

		handler.GetTransactions(rr, authorised(httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().GetTransactions(gomock.Any(), userID).Return(nil, errors.New("db error"))
		rr := httptest.NewRecorder()

		handler.GetTransactions(rr, authorised(httptest.NewRequest(http.MethodGet, "/api/user/transactions", nil)))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestSpend(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Spend applied",
			body: `{"amount":5,"min_aura":0}`,
			prepareMock: func() {
				service.EXPECT().SpendAura(gomock.Any(), userID, int64(5), int64(0)).
					Return(&domain.LedgerResult{NewBalance: 10, TransactionID: 2, Timestamp: now}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient balance",
			body: `{"amount":50,"min_aura":0}`,
			prepareMock: func() {
				service.EXPECT().SpendAura(gomock.Any(), userID, int64(50), int64(0)).Return(nil, domain.ErrInsufficientBalance)
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Negative floor",
			body: `{"amount":5,"min_aura":-1}`,
			prepareMock: func() {
				service.EXPECT().SpendAura(gomock.Any(), userID, int64(5), int64(-1)).Return(nil, domain.ErrInvalidFloor)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid body",
			body:         `{"amount":"five"}`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			req := authorised(httptest.NewRequest(http.MethodPost, "/api/user/aura/spend", bytes.NewReader([]byte(tt.body))))
			rr := httptest.NewRecorder()

			handler.Spend(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
