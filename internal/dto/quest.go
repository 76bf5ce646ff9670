package dto

import (
	"time"

	"github.com/GlebRadaev/valorhood/internal/domain"
)

type CreateQuestRequestDTO struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description"`
	RewardAmount int64  `json:"reward_amount" validate:"required,gt=0"`
	Category     string `json:"category"`
	CustomTag    string `json:"custom_tag"`
}

type QuestDTO struct {
	ID           int64     `json:"id"`
	CreatorID    string    `json:"creator_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	RewardAmount int64     `json:"reward_amount"`
	Category     string    `json:"category"`
	CustomTag    string    `json:"custom_tag,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type CompletionResponseDTO struct {
	Quest  QuestDTO        `json:"quest"`
	Reward LedgerResultDTO `json:"reward"`
}

func (r CreateQuestRequestDTO) Draft() domain.QuestDraft {
	return domain.QuestDraft{
		Title:        r.Title,
		Description:  r.Description,
		RewardAmount: r.RewardAmount,
		Category:     domain.Category(r.Category),
		CustomTag:    r.CustomTag,
	}
}

func NewQuestDTO(q *domain.Quest) QuestDTO {
	return QuestDTO{
		ID:           q.ID,
		CreatorID:    q.CreatorID,
		Title:        q.Title,
		Description:  q.Description,
		RewardAmount: q.RewardAmount,
		Category:     string(q.Category),
		CustomTag:    q.CustomTag,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
		ExpiresAt:    q.ExpiresAt,
	}
}

func NewQuestDTOs(quests []domain.Quest) []QuestDTO {
	out := make([]QuestDTO, len(quests))
	for i := range quests {
		out[i] = NewQuestDTO(&quests[i])
	}
	return out
}

func NewCompletionResponseDTO(c *domain.Completion) CompletionResponseDTO {
	return CompletionResponseDTO{
		Quest:  NewQuestDTO(&c.Quest),
		Reward: NewLedgerResultDTO(&c.Reward),
	}
}
