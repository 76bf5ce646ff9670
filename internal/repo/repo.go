package repo

import (
	"github.com/GlebRadaev/valorhood/internal/pg"
	ledgerrepo "github.com/GlebRadaev/valorhood/internal/repo/ledger-repo"
	questrepo "github.com/GlebRadaev/valorhood/internal/repo/quest-repo"
	userrepo "github.com/GlebRadaev/valorhood/internal/repo/user-repo"
	"github.com/GlebRadaev/valorhood/internal/service/authservice"
	"github.com/GlebRadaev/valorhood/internal/service/ledgerservice"
	"github.com/GlebRadaev/valorhood/internal/service/lifecycleservice"
	"github.com/GlebRadaev/valorhood/internal/service/questservice"
)

type Repositories struct {
	UserRepo   authservice.Repo
	LedgerRepo ledgerservice.Repo
	QuestRepo  questservice.Repo
	// QuestState is the same quest store seen by the completion workflow.
	QuestState lifecycleservice.QuestRepo
	TxManager  pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	questRepo := questrepo.New(conn)

	return &Repositories{
		UserRepo:   userrepo.New(conn),
		LedgerRepo: ledgerrepo.New(conn, txManager),
		QuestRepo:  questRepo,
		QuestState: questRepo,
		TxManager:  txManager,
	}
}
