package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, display_name, aura_balance, created_at
		FROM users
		WHERE email = $1
	`
	return repo.findOne(ctx, query, email)
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, display_name, aura_balance, created_at
		FROM users
		WHERE id = $1
	`
	return repo.findOne(ctx, query, id)
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, query, arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.DisplayName, &user.AuraBalance, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		if pg.IsUnavailable(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrDependency, err)
		}
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
		RETURNING aura_balance, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.DisplayName).Scan(&user.AuraBalance, &user.CreatedAt)
	if err != nil {
		if pg.ErrorCode(err) == pg.CodeUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
