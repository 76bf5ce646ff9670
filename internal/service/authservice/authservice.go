package authservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/valorhood/internal/domain"
	"github.com/GlebRadaev/valorhood/pkg/auth"
)

const DefaultTokenTTL = 24 * time.Hour

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
	newID       func() string
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// SignUp registers a user with a zero aura balance and returns the new user id.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (string, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return "", err
	}
	if err := domain.ValidatePassword(password); err != nil {
		return "", err
	}
	displayName, err = domain.NewDisplayName(displayName)
	if err != nil {
		return "", err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return "", err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return "", domain.ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return "", err
	}
	user := &domain.User{
		ID:           s.newID(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user", zap.String("email", email), zap.Error(err))
		return "", err
	}

	zap.L().Info("user successfully registered", zap.String("user_id", newUser.ID))
	return newUser.ID, nil
}

// SignIn verifies the credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	email, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := s.jwtService.GenerateJWT(user.ID, expiresAt)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID))
	return &domain.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser resolves a verified caller id to the stored account.
func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find user", zap.String("user_id", id), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
