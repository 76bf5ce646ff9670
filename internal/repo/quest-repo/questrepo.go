package questrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, quest *domain.Quest) (*domain.Quest, error) {
	query := `
		INSERT INTO quests (creator_id, title, description, reward_amount, category, custom_tag, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		quest.CreatorID, quest.Title, quest.Description, quest.RewardAmount,
		string(quest.Category), quest.CustomTag, string(quest.Status), quest.CreatedAt, quest.ExpiresAt,
	).Scan(&quest.ID)
	if err != nil {
		zap.L().Error("can't save quest", zap.Error(err))
		return nil, mapError(err)
	}
	return quest, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Quest, error) {
	query := `
		SELECT id, creator_id, title, description, reward_amount, category, custom_tag, status, created_at, expires_at
		FROM quests
		WHERE id = $1
	`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the quest row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Quest, error) {
	query := `
		SELECT id, creator_id, title, description, reward_amount, category, custom_tag, status, created_at, expires_at
		FROM quests
		WHERE id = $1
		FOR UPDATE
	`
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, id int64) (*domain.Quest, error) {
	quest, err := scanQuest(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find quest", zap.Int64("quest_id", id), zap.Error(err))
		return nil, mapError(err)
	}
	return quest, nil
}

// FindActive returns active quests that have not expired at now, soonest expiry first.
func (r *Repository) FindActive(ctx context.Context, now time.Time) ([]domain.Quest, error) {
	query := `
		SELECT id, creator_id, title, description, reward_amount, category, custom_tag, status, created_at, expires_at
		FROM quests
		WHERE status = 'active' AND expires_at >= $1
		ORDER BY expires_at ASC
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get active quests", zap.Error(err))
		return nil, mapError(err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			zap.L().Error("can't scan quest row", zap.Error(err))
			return nil, err
		}
		quests = append(quests, *quest)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return quests, nil
}

// MarkCompleted is a compare-and-swap on status; it reports false when the quest
// was not active or had already expired at now.
func (r *Repository) MarkCompleted(ctx context.Context, id int64, now time.Time) (bool, error) {
	query := `
		UPDATE quests
		SET status = 'completed'
		WHERE id = $1 AND status = 'active' AND expires_at >= $2
	`
	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		zap.L().Error("failed to complete quest", zap.Int64("quest_id", id), zap.Error(err))
		return false, mapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteIfExpired removes a single quest that is still active but past its expiry.
func (r *Repository) DeleteIfExpired(ctx context.Context, id int64, now time.Time) (bool, error) {
	query := `
		DELETE FROM quests
		WHERE id = $1 AND status = 'active' AND expires_at < $2
	`
	tag, err := r.db.Exec(ctx, query, id, now)
	if err != nil {
		zap.L().Error("failed to delete expired quest", zap.Int64("quest_id", id), zap.Error(err))
		return false, mapError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteExpired sweeps every active quest past its expiry. Completed quests are never touched.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM quests
		WHERE status = 'active' AND expires_at < $1
	`
	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		zap.L().Error("failed to sweep expired quests", zap.Error(err))
		return 0, mapError(err)
	}
	return tag.RowsAffected(), nil
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		quest            domain.Quest
		category, status string
	)
	err := row.Scan(&quest.ID, &quest.CreatorID, &quest.Title, &quest.Description, &quest.RewardAmount,
		&category, &quest.CustomTag, &status, &quest.CreatedAt, &quest.ExpiresAt)
	if err != nil {
		return nil, err
	}
	quest.Category = domain.Category(category)
	quest.Status = domain.QuestStatus(status)
	return &quest, nil
}

func mapError(err error) error {
	switch {
	case pg.IsConflict(err):
		return fmt.Errorf("%w: %v", domain.ErrConcurrentUpdate, err)
	case pg.IsUnavailable(err):
		return fmt.Errorf("%w: %v", domain.ErrDependency, err)
	}
	return err
}
