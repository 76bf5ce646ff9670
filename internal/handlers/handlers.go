package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/valorhood/docs"
	authhandlers "github.com/GlebRadaev/valorhood/internal/handlers/auth"
	ledgerhandlers "github.com/GlebRadaev/valorhood/internal/handlers/ledger"
	presencehandlers "github.com/GlebRadaev/valorhood/internal/handlers/presence"
	questhandlers "github.com/GlebRadaev/valorhood/internal/handlers/quests"
	"github.com/GlebRadaev/valorhood/internal/metrics"
	"github.com/GlebRadaev/valorhood/internal/service"
	"github.com/GlebRadaev/valorhood/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
}

type QuestHandler interface {
	CreateQuest(w http.ResponseWriter, r *http.Request)
	GetActiveQuests(w http.ResponseWriter, r *http.Request)
	GetQuest(w http.ResponseWriter, r *http.Request)
	CompleteQuest(w http.ResponseWriter, r *http.Request)
}

type PresenceHandler interface {
	Connect(w http.ResponseWriter, r *http.Request)
}

// Limiter throttles the mutating routes.
type Limiter interface {
	Handler(next http.Handler) http.Handler
}

type Handlers struct {
	AuthHandler     AuthHandler
	LedgerHandler   LedgerHandler
	QuestHandler    QuestHandler
	PresenceHandler PresenceHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		LedgerHandler:   ledgerhandlers.New(s.LedgerService),
		QuestHandler:    questhandlers.New(s.QuestService, s.LifecycleService),
		PresenceHandler: presencehandlers.New(s.Presence, s.Users),
	}
}

func (h *Handlers) InitRoutes(r chi.Router, jwtService auth.JWTServiceInterface, limiter Limiter) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter.Handler)
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(jwtService))
			r.Get("/balance", h.LedgerHandler.GetBalance)
			r.Get("/transactions", h.LedgerHandler.GetTransactions)
			r.With(limiter.Handler).Post("/aura/spend", h.LedgerHandler.Spend)
		})
	})

	r.Route("/api/quests", func(r chi.Router) {
		r.Use(auth.AuthMiddleware(jwtService))
		r.Get("/", h.QuestHandler.GetActiveQuests)
		r.With(limiter.Handler).Post("/", h.QuestHandler.CreateQuest)
		r.Get("/{id}", h.QuestHandler.GetQuest)
		r.With(limiter.Handler).Post("/{id}/complete", h.QuestHandler.CompleteQuest)
	})

	r.With(auth.AuthMiddleware(jwtService)).Get("/api/presence", h.PresenceHandler.Connect)

	return r
}
