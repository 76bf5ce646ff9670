package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// QuestTTL is how long a quest stays completable after creation.
const QuestTTL = 30 * time.Minute

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  string    `db:"display_name"`
	AuraBalance  int64     `db:"aura_balance"`
	CreatedAt    time.Time `db:"created_at"`
}

type Quest struct {
	ID           int64       `db:"id"`
	CreatorID    string      `db:"creator_id"`
	Title        string      `db:"title"`
	Description  string      `db:"description"`
	RewardAmount int64       `db:"reward_amount"`
	Category     Category    `db:"category"`
	CustomTag    string      `db:"custom_tag"`
	Status       QuestStatus `db:"status"`
	CreatedAt    time.Time   `db:"created_at"`
	ExpiresAt    time.Time   `db:"expires_at"`
}

// IsExpired is the source of truth for validity; a sweep may not have removed the row yet.
func (q *Quest) IsExpired(now time.Time) bool {
	return now.After(q.ExpiresAt)
}

func (q *Quest) EffectiveStatus(now time.Time) QuestStatus {
	if q.Status == QuestActive && q.IsExpired(now) {
		return QuestExpired
	}
	return q.Status
}

type Transaction struct {
	ID           int64     `db:"id"`
	UserID       string    `db:"user_id"`
	Amount       int64     `db:"amount"`
	Kind         TxKind    `db:"kind"`
	QuestID      *int64    `db:"quest_id"`
	BalanceAfter int64     `db:"balance_after"`
	CreatedAt    time.Time `db:"created_at"`
}

// TransactionRequest is a validated ledger mutation. Build it with NewTransactionRequest.
type TransactionRequest struct {
	UserID          string
	Amount          int64
	Kind            TxKind
	QuestID         *int64
	MinBalanceFloor int64
}

func NewTransactionRequest(userID string, amount int64, kind TxKind, questID *int64, minBalanceFloor int64) (TransactionRequest, error) {
	id, err := NewUserID(userID)
	if err != nil {
		return TransactionRequest{}, err
	}
	if _, err := NewAmount(amount); err != nil {
		return TransactionRequest{}, err
	}
	if kind != TxGain && kind != TxSpend {
		return TransactionRequest{}, ErrInvalidTxKind
	}
	if _, err := NewFloor(minBalanceFloor); err != nil {
		return TransactionRequest{}, err
	}
	if questID != nil {
		if kind != TxGain {
			return TransactionRequest{}, ErrSpendWithQuestRef
		}
		if _, err := NewQuestID(*questID); err != nil {
			return TransactionRequest{}, err
		}
	}
	return TransactionRequest{
		UserID:          id,
		Amount:          amount,
		Kind:            kind,
		QuestID:         questID,
		MinBalanceFloor: minBalanceFloor,
	}, nil
}

type LedgerResult struct {
	NewBalance    int64
	TransactionID int64
	Timestamp     time.Time
}

type Completion struct {
	Quest  Quest
	Reward LedgerResult
}

type Session struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

// QuestDraft holds validated creation input. Build it with NewQuestDraft.
type QuestDraft struct {
	Title        string
	Description  string
	RewardAmount int64
	Category     Category
	CustomTag    string
}

func NewQuestDraft(title, description string, rewardAmount int64, category, customTag string) (QuestDraft, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return QuestDraft{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return QuestDraft{}, ErrTitleTooLong
	}
	if _, err := NewAmount(rewardAmount); err != nil {
		return QuestDraft{}, err
	}
	return QuestDraft{
		Title:        title,
		Description:  strings.TrimSpace(description),
		RewardAmount: rewardAmount,
		Category:     NewCategory(category),
		CustomTag:    strings.TrimSpace(customTag),
	}, nil
}
