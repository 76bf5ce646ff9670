package questservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/metrics"
)

type Repo interface {
	Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error)
	FindByID(ctx context.Context, id int64) (*domain.Quest, error)
	FindActive(ctx context.Context, now time.Time) ([]domain.Quest, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateQuest publishes draft on behalf of creatorID. The quest is active and
// completable for domain.QuestTTL.
func (s *Service) CreateQuest(ctx context.Context, creatorID string, draft domain.QuestDraft) (*domain.Quest, error) {
	id, err := domain.NewUserID(creatorID)
	if err != nil {
		return nil, err
	}
	draft, err = domain.NewQuestDraft(draft.Title, draft.Description, draft.RewardAmount, string(draft.Category), draft.CustomTag)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	quest := &domain.Quest{
		CreatorID:    id,
		Title:        draft.Title,
		Description:  draft.Description,
		RewardAmount: draft.RewardAmount,
		Category:     draft.Category,
		CustomTag:    draft.CustomTag,
		Status:       domain.QuestActive,
		CreatedAt:    now,
		ExpiresAt:    now.Add(domain.QuestTTL),
	}
	quest, err = s.repo.Create(ctx, quest)
	if err != nil {
		zap.L().Error("failed to create quest", zap.String("creator_id", id), zap.Error(err))
		return nil, err
	}
	zap.L().Info("quest created", zap.Int64("quest_id", quest.ID), zap.String("creator_id", id))
	return quest, nil
}

// GetQuest reports the quest with its effective status, so an active quest
// past its expiry reads as expired even before the sweep removes it.
func (s *Service) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	if _, err := domain.NewQuestID(id); err != nil {
		return nil, err
	}
	quest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get quest", zap.Int64("quest_id", id), zap.Error(err))
		return nil, err
	}
	if quest == nil {
		return nil, domain.ErrQuestNotFound
	}
	quest.Status = quest.EffectiveStatus(s.now())
	return quest, nil
}

// GetActiveQuests is a pure read: it never returns an expired quest and never
// deletes anything.
func (s *Service) GetActiveQuests(ctx context.Context) ([]domain.Quest, error) {
	quests, err := s.repo.FindActive(ctx, s.now())
	if err != nil {
		zap.L().Error("failed to get active quests", zap.Error(err))
		return nil, err
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	return quests, nil
}

// CleanupExpired removes active quests past their expiry and reports how many
// were removed. Running it twice in a row removes nothing the second time.
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, s.now())
	if err != nil {
		zap.L().Error("failed to clean up expired quests", zap.Error(err))
		return 0, err
	}
	metrics.RecordSwept(n)
	if n > 0 {
		zap.L().Info("expired quests removed", zap.Int64("count", n))
	}
	return n, nil
}
