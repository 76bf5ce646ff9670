package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/pg"
)

// SQLSTATE codes raised by process_aura.
const (
	codeInvalidAmount    = "AU001"
	codeUserNotFound     = "AU002"
	codeInsufficientAura = "AU003"
	codeInvalidKind      = "AU004"
	codeBalanceOverflow  = "AU005"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// ExecuteTransaction applies req through the process_aura stored function, which locks
// the user row, enforces the floor and appends the transaction row atomically.
// When ctx already carries a transaction the call joins it.
func (r *Repository) ExecuteTransaction(ctx context.Context, req domain.TransactionRequest) (*domain.LedgerResult, error) {
	query := `
		SELECT new_aura, transaction_id, processed_at
		FROM process_aura($1, $2, $3, $4, $5)
	`
	var result domain.LedgerResult
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query, req.UserID, req.Amount, string(req.Kind), req.QuestID, req.MinBalanceFloor)
		if err := row.Scan(&result.NewBalance, &result.TransactionID, &result.Timestamp); err != nil {
			zap.L().Error("failed to process aura transaction",
				zap.String("user_id", req.UserID),
				zap.String("kind", string(req.Kind)),
				zap.Int64("amount", req.Amount),
				zap.Error(err),
			)
			return mapError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Repository) GetBalance(ctx context.Context, userID string) (int64, error) {
	query := `
		SELECT aura_balance
		FROM users
		WHERE id = $1
	`
	var balance int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		zap.L().Error("failed to get aura balance", zap.Error(err))
		return 0, mapError(err)
	}
	return balance, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, amount, kind, quest_id, balance_after, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, mapError(err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var (
			tx   domain.Transaction
			kind string
		)
		if err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &kind, &tx.QuestID, &tx.BalanceAfter, &tx.CreatedAt); err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		tx.Kind = domain.TxKind(kind)
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return txs, nil
}

func mapError(err error) error {
	switch pg.ErrorCode(err) {
	case codeInvalidAmount:
		return domain.ErrInvalidAmount
	case codeUserNotFound:
		return domain.ErrUserNotFound
	case codeInsufficientAura:
		return domain.ErrInsufficientBalance
	case codeInvalidKind:
		return domain.ErrInvalidTxKind
	case codeBalanceOverflow, pg.CodeNumericOutOfRange:
		return domain.ErrBalanceOverflow
	case pg.CodeUniqueViolation:
		return domain.ErrQuestAlreadyRewarded
	}
	switch {
	case pg.IsConflict(err):
		return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
	case pg.IsUnavailable(err):
		return fmt.Errorf("%w: %v", domain.ErrDependency, err)
	}
	return err
}
