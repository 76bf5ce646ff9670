package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/metrics"
	"github.com/GlebRadaev/valorhood/pkg/retry"
)

type Repo interface {
	ExecuteTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.LedgerResult, error)
	GetBalance(ctx context.Context, userID string) (int64, error)
	GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type Service struct {
	repo     Repo
	attempts uint64
}

func New(repo Repo) *Service {
	return &Service{
		repo:     repo,
		attempts: retry.DefaultAttempts,
	}
}

// ExecuteTransaction validates req and applies it atomically. A lost race with a
// concurrent writer is retried; every other failure is returned as is.
func (s *Service) ExecuteTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.LedgerResult, error) {
	valid, err := domain.NewTransactionRequest(req.UserID, req.Amount, req.Kind, req.QuestID, req.MinBalanceFloor)
	if err != nil {
		metrics.RecordTransaction(string(req.Kind), string(domain.KindOf(err)))
		return nil, err
	}
	req = valid

	result, err := retry.Do(ctx, s.attempts, domain.IsRetryable, func(ctx context.Context) (*domain.LedgerResult, error) {
		return s.repo.ExecuteTransaction(ctx, req)
	})
	if err != nil {
		metrics.RecordTransaction(string(req.Kind), string(domain.KindOf(err)))
		zap.L().Warn("aura transaction rejected",
			zap.String("user_id", req.UserID),
			zap.String("kind", string(req.Kind)),
			zap.Int64("amount", req.Amount),
			zap.String("error_kind", string(domain.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}
	metrics.RecordTransaction(string(req.Kind), "ok")
	return result, nil
}

func (s *Service) RewardQuest(ctx context.Context, userID string, amount, questID int64) (*domain.LedgerResult, error) {
	return s.ExecuteTransaction(ctx, domain.TransactionRequest{
		UserID:  userID,
		Amount:  amount,
		Kind:    domain.TxGain,
		QuestID: &questID,
	})
}

// SpendAura debits amount; it fails with ErrInsufficientBalance when the balance
// would drop below minAuraFloor.
func (s *Service) SpendAura(ctx context.Context, userID string, amount, minAuraFloor int64) (*domain.LedgerResult, error) {
	return s.ExecuteTransaction(ctx, domain.TransactionRequest{
		UserID:          userID,
		Amount:          amount,
		Kind:            domain.TxSpend,
		MinBalanceFloor: minAuraFloor,
	})
}

func (s *Service) GetBalance(ctx context.Context, userID string) (int64, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return 0, err
	}
	balance, err := s.repo.GetBalance(ctx, id)
	if err != nil {
		zap.L().Error("failed to get balance", zap.String("user_id", id), zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetTransactions(ctx context.Context, userID string) ([]domain.Transaction, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.GetTransactionsByUserID(ctx, id)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	return txs, nil
}
