package quests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/dto"
	"github.com/GlebRadaev/valorhood/pkg/auth"
	"github.com/GlebRadaev/valorhood/pkg/utils"
)

const (
	userID    = "4f1c2b9e-8a47-4c55-9d3e-2a6f0f6b1c11"
	creatorID = "0b7d5a8e-3f7c-4d0e-9a55-1c2d3e4f5a6b"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*QuestHandler, *MockService, *MockLifecycle) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	lifecycle := NewMockLifecycle(ctrl)
	return New(service, lifecycle), service, lifecycle
}

func request(method, target, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(auth.WithUserID(ctx, userID))
}

func quest(status domain.QuestStatus) *domain.Quest {
	return &domain.Quest{
		ID:           7,
		CreatorID:    creatorID,
		Title:        "Walk my dog",
		RewardAmount: 10,
		Category:     domain.CategoryChore,
		Status:       status,
		CreatedAt:    now,
		ExpiresAt:    now.Add(domain.QuestTTL),
	}
}

func TestCreateQuest(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Quest created",
			body: `{"title":"Walk my dog","reward_amount":10,"category":"chore"}`,
			prepareMock: func() {
				service.EXPECT().CreateQuest(gomock.Any(), userID, domain.QuestDraft{
					Title:        "Walk my dog",
					RewardAmount: 10,
					Category:     domain.CategoryChore,
				}).Return(quest(domain.QuestActive), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Missing title",
			body: `{"reward_amount":10}`,
			prepareMock: func() {
				service.EXPECT().CreateQuest(gomock.Any(), userID, gomock.Any()).Return(nil, domain.ErrEmptyTitle)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: domain.ErrEmptyTitle.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `[`,
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rr := httptest.NewRecorder()

			handler.CreateQuest(rr, request(http.MethodPost, "/api/quests", "", []byte(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.QuestDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, int64(7), resp.ID)
			assert.Equal(t, "active", resp.Status)
		})
	}
}

func TestGetActiveQuests(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Active quests listed", func(t *testing.T) {
		service.EXPECT().GetActiveQuests(gomock.Any()).Return([]domain.Quest{*quest(domain.QuestActive)}, nil)
		rr := httptest.NewRecorder()

		handler.GetActiveQuests(rr, request(http.MethodGet, "/api/quests", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.QuestDTO
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Len(t, resp, 1)
	})

	t.Run("Empty list", func(t *testing.T) {
		service.EXPECT().GetActiveQuests(gomock.Any()).Return([]domain.Quest{}, nil)
		rr := httptest.NewRecorder()

		handler.GetActiveQuests(rr, request(http.MethodGet, "/api/quests", "", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestGetQuest(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Quest found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(quest(domain.QuestExpired), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Quest not found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().GetQuest(gomock.Any(), int64(7)).Return(nil, domain.ErrQuestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			id:           "seven",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Non positive id",
			id:           "0",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			rr := httptest.NewRecorder()

			handler.GetQuest(rr, request(http.MethodGet, "/api/quests/"+tt.id, tt.id, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCompleteQuest(t *testing.T) {
	handler, _, lifecycle := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedKind string
	}{
		{
			name: "Quest completed",
			prepareMock: func() {
				lifecycle.EXPECT().CompleteQuest(gomock.Any(), int64(7), userID).Return(&domain.Completion{
					Quest:  *quest(domain.QuestCompleted),
					Reward: domain.LedgerResult{NewBalance: 10, TransactionID: 1, Timestamp: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Quest expired",
			prepareMock: func() {
				lifecycle.EXPECT().CompleteQuest(gomock.Any(), int64(7), userID).Return(nil, domain.ErrQuestExpired)
			},
			expectedCode: http.StatusNotFound,
			expectedKind: "not_found",
		},
		{
			name: "Lost the race",
			prepareMock: func() {
				lifecycle.EXPECT().CompleteQuest(gomock.Any(), int64(7), userID).Return(nil, domain.ErrQuestNotActive)
			},
			expectedCode: http.StatusConflict,
			expectedKind: "transaction_conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.CompleteQuest(rr, request(http.MethodPost, "/api/quests/7/complete", "7", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedKind != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedKind, resp.Kind)
				return
			}
			var resp dto.CompletionResponseDTO
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "completed", resp.Quest.Status)
			assert.Equal(t, int64(10), resp.Reward.NewBalance)
		})
	}
}
