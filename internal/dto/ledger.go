package dto

import (
	"time"

	"github.com/GlebRadaev/valorhood/internal/domain"
)

type BalanceResponseDTO struct {
	Aura int64 `json:"aura"`
}

type SpendRequestDTO struct {
	Amount  int64 `json:"amount" validate:"required,gt=0"`
	MinAura int64 `json:"min_aura" validate:"gte=0"`
}

type LedgerResultDTO struct {
	NewBalance    int64     `json:"new_balance"`
	TransactionID int64     `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

type TransactionDTO struct {
	ID           int64     `json:"id"`
	Amount       int64     `json:"amount"`
	Kind         string    `json:"kind"`
	QuestID      *int64    `json:"quest_id,omitempty"`
	BalanceAfter int64     `json:"balance_after"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLedgerResultDTO(r *domain.LedgerResult) LedgerResultDTO {
	return LedgerResultDTO{
		NewBalance:    r.NewBalance,
		TransactionID: r.TransactionID,
		Timestamp:     r.Timestamp,
	}
}

func NewTransactionDTOs(txs []domain.Transaction) []TransactionDTO {
	out := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		out[i] = TransactionDTO{
			ID:           tx.ID,
			Amount:       tx.Amount,
			Kind:         string(tx.Kind),
			QuestID:      tx.QuestID,
			BalanceAfter: tx.BalanceAfter,
			CreatedAt:    tx.CreatedAt,
		}
	}
	return out
}
