package questservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/valorhood/internal/domain"
)

const creatorID = "4f1c2b9e-8a47-4c55-9d3e-2a6f0f6b1c11"

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	service.now = func() time.Time { return now }
	return service, repo
}

func TestCreateQuest(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name        string
		creatorID   string
		draft       domain.QuestDraft
		prepareMock func()
		expected    *domain.Quest
		expectedErr error
	}{
		{
			name:      "Quest created active with a thirty minute window",
			creatorID: creatorID,
			draft:     domain.QuestDraft{Title: " Walk my dog ", RewardAmount: 10, Category: "SOCIAL"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *domain.Quest) (*domain.Quest, error) {
					q.ID = 7
					return q, nil
				})
			},
			expected: &domain.Quest{
				ID:           7,
				CreatorID:    creatorID,
				Title:        "Walk my dog",
				RewardAmount: 10,
				Category:     domain.CategorySocial,
				Status:       domain.QuestActive,
				CreatedAt:    now,
				ExpiresAt:    now.Add(30 * time.Minute),
			},
		},
		{
			name:      "Unknown category becomes misc",
			creatorID: creatorID,
			draft:     domain.QuestDraft{Title: "Fix the bike", RewardAmount: 3, Category: "bikes", CustomTag: "repair"},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, q *domain.Quest) (*domain.Quest, error) {
					q.ID = 8
					return q, nil
				})
			},
			expected: &domain.Quest{
				ID:           8,
				CreatorID:    creatorID,
				Title:        "Fix the bike",
				RewardAmount: 3,
				Category:     domain.CategoryMisc,
				CustomTag:    "repair",
				Status:       domain.QuestActive,
				CreatedAt:    now,
				ExpiresAt:    now.Add(30 * time.Minute),
			},
		},
		{
			name:        "Creator must be a valid user id",
			creatorID:   "alice",
			draft:       domain.QuestDraft{Title: "Walk my dog", RewardAmount: 10},
			expectedErr: domain.ErrInvalidUserID,
		},
		{
			name:        "Title is required",
			creatorID:   creatorID,
			draft:       domain.QuestDraft{Title: "   ", RewardAmount: 10},
			expectedErr: domain.ErrEmptyTitle,
		},
		{
			name:        "Reward must be positive",
			creatorID:   creatorID,
			draft:       domain.QuestDraft{Title: "Walk my dog", RewardAmount: 0},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:      "Repository error",
			creatorID: creatorID,
			draft:     domain.QuestDraft{Title: "Walk my dog", RewardAmount: 10},
			prepareMock: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDependency)
			},
			expectedErr: domain.ErrDependency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			quest, err := service.CreateQuest(context.Background(), tt.creatorID, tt.draft)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, quest)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, quest)
		})
	}
}

func TestGetQuest(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name           string
		id             int64
		prepareMock    func()
		expectedStatus domain.QuestStatus
		expectedErr    error
	}{
		{
			name: "Active quest",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.Quest{ID: 7, Status: domain.QuestActive, ExpiresAt: now.Add(time.Minute)}, nil)
			},
			expectedStatus: domain.QuestActive,
		},
		{
			name: "Active quest past expiry reads as expired",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.Quest{ID: 7, Status: domain.QuestActive, ExpiresAt: now.Add(-time.Second)}, nil)
			},
			expectedStatus: domain.QuestExpired,
		},
		{
			name: "Completed quest stays completed",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).
					Return(&domain.Quest{ID: 7, Status: domain.QuestCompleted, ExpiresAt: now.Add(-time.Hour)}, nil)
			},
			expectedStatus: domain.QuestCompleted,
		},
		{
			name: "Missing quest",
			id:   7,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedErr: domain.ErrQuestNotFound,
		},
		{
			name:        "Invalid id",
			id:          0,
			expectedErr: domain.ErrInvalidQuestID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}
			quest, err := service.GetQuest(context.Background(), tt.id)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, quest.Status)
		})
	}
}

func TestGetActiveQuests(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Active quests returned without deleting anything", func(t *testing.T) {
		quests := []domain.Quest{{ID: 1, Status: domain.QuestActive, ExpiresAt: now.Add(time.Minute)}}
		repo.EXPECT().FindActive(gomock.Any(), now).Return(quests, nil)
		repo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Times(0)

		result, err := service.GetActiveQuests(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, quests, result)
	})

	t.Run("Empty result is an empty slice", func(t *testing.T) {
		repo.EXPECT().FindActive(gomock.Any(), now).Return(nil, nil)

		result, err := service.GetActiveQuests(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo.EXPECT().FindActive(gomock.Any(), now).Return(nil, errors.New("db error"))

		result, err := service.GetActiveQuests(context.Background())

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestCleanupExpired(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Sweep is idempotent", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(2), nil),
			repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(0), nil),
		)

		first, err := service.CleanupExpired(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, int64(2), first)

		second, err := service.CleanupExpired(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, second)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo.EXPECT().DeleteExpired(gomock.Any(), now).Return(int64(0), domain.ErrDependency)

		n, err := service.CleanupExpired(context.Background())

		assert.ErrorIs(t, err, domain.ErrDependency)
		assert.Zero(t, n)
	})
}
