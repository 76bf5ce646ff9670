package service

import (
	"time"

	"github.com/GlebRadaev/valorhood/internal/handlers/auth"
	"github.com/GlebRadaev/valorhood/internal/handlers/ledger"
	presencehandlers "github.com/GlebRadaev/valorhood/internal/handlers/presence"
	"github.com/GlebRadaev/valorhood/internal/handlers/quests"
	"github.com/GlebRadaev/valorhood/internal/presence"
	"github.com/GlebRadaev/valorhood/internal/repo"
	authservice "github.com/GlebRadaev/valorhood/internal/service/authservice"
	ledgerservice "github.com/GlebRadaev/valorhood/internal/service/ledgerservice"
	lifecycleservice "github.com/GlebRadaev/valorhood/internal/service/lifecycleservice"
	questservice "github.com/GlebRadaev/valorhood/internal/service/questservice"
	"github.com/GlebRadaev/valorhood/internal/sweeper"
	pkgauth "github.com/GlebRadaev/valorhood/pkg/auth"
)

type Services struct {
	AuthService      auth.Service
	LedgerService    ledger.Service
	QuestService     quests.Service
	LifecycleService quests.Lifecycle
	Users            presencehandlers.Users

	Presence *presence.Hub
	Sweeper  sweeper.Cleaner
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, tokenTTL time.Duration) *Services {
	hashService := pkgauth.NewHashService(pkgauth.DefaultCost)
	authService := authservice.New(repo.UserRepo, hashService, jwtService, tokenTTL)
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	questService := questservice.New(repo.QuestRepo)
	lifecycleService := lifecycleservice.New(repo.QuestState, repo.LedgerRepo, repo.TxManager)

	return &Services{
		AuthService:      authService,
		LedgerService:    ledgerService,
		QuestService:     questService,
		LifecycleService: lifecycleService,
		Users:            authService,
		Presence:         presence.NewHub(),
		Sweeper:          questService,
	}
}
