// Package lifecycleservice owns the quest state machine: an active quest
// either completes before its expiry, crediting the helper exactly once, or
// expires and is removed.
package lifecycleservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/metrics"
	"github.com/GlebRadaev/valorhood/internal/pg"
	"github.com/GlebRadaev/valorhood/pkg/retry"
)

type QuestRepo interface {
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Quest, error)
	MarkCompleted(ctx context.Context, id int64, now time.Time) (bool, error)
	DeleteIfExpired(ctx context.Context, id int64, now time.Time) (bool, error)
}

type LedgerRepo interface {
	ExecuteTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.LedgerResult, error)
}

type Service struct {
	quests    QuestRepo
	ledger    LedgerRepo
	txManager pg.TXManager
	attempts  uint64
	now       func() time.Time
}

func New(quests QuestRepo, ledger LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		quests:    quests,
		ledger:    ledger,
		txManager: txManager,
		attempts:  retry.DefaultAttempts,
		now:       time.Now,
	}
}

// CompleteQuest marks the quest completed and credits helperID with its reward
// in one database transaction; a nil error means both happened. A quest found
// past its expiry is removed and ErrQuestExpired is returned. Losing a race
// against another completion yields ErrQuestNotActive.
func (s *Service) CompleteQuest(ctx context.Context, questID int64, helperID string) (*domain.Completion, error) {
	if _, err := domain.NewQuestID(questID); err != nil {
		return nil, err
	}
	helper, err := domain.NewUserID(helperID)
	if err != nil {
		return nil, err
	}

	completion, err := retry.Do(ctx, s.attempts, domain.IsRetryable, func(ctx context.Context) (*domain.Completion, error) {
		return s.complete(ctx, questID, helper)
	})
	if err != nil {
		metrics.RecordCompletion(string(domain.KindOf(err)))
		zap.L().Info("quest not completed",
			zap.Int64("quest_id", questID),
			zap.String("helper_id", helper),
			zap.String("error_kind", string(domain.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordCompletion("ok")
	zap.L().Info("quest completed",
		zap.Int64("quest_id", questID),
		zap.String("helper_id", helper),
		zap.Int64("reward", completion.Quest.RewardAmount),
		zap.Int64("new_balance", completion.Reward.NewBalance),
	)
	return completion, nil
}

func (s *Service) complete(ctx context.Context, questID int64, helperID string) (*domain.Completion, error) {
	var (
		completion *domain.Completion
		expired    bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()

		quest, err := s.quests.FindByIDForUpdate(ctx, questID)
		if err != nil {
			return err
		}
		if quest == nil {
			return domain.ErrQuestNotFound
		}
		if quest.Status.IsTerminal() {
			return domain.ErrQuestNotActive
		}

		// The removal has to commit, so the expiry is reported after Begin returns.
		if quest.IsExpired(now) {
			if _, err := s.quests.DeleteIfExpired(ctx, questID, now); err != nil {
				return err
			}
			expired = true
			return nil
		}

		ok, err := s.quests.MarkCompleted(ctx, questID, now)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrQuestNotActive
		}

		req, err := domain.NewTransactionRequest(helperID, quest.RewardAmount, domain.TxGain, &questID, 0)
		if err != nil {
			return err
		}
		reward, err := s.ledger.ExecuteTransaction(ctx, req)
		if err != nil {
			return err
		}

		quest.Status = domain.QuestCompleted
		completion = &domain.Completion{Quest: *quest, Reward: *reward}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		return nil, domain.ErrQuestExpired
	}
	return completion, nil
}
