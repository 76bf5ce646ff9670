package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/valorhood/internal/pg"
	ledgerrepo "github.com/GlebRadaev/valorhood/internal/repo/ledger-repo"
	questrepo "github.com/GlebRadaev/valorhood/internal/repo/quest-repo"
	userrepo "github.com/GlebRadaev/valorhood/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	mockTxManager := pg.NewMockTXManager(ctrl)

	return New(mockDB, mockTxManager), mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.QuestRepo)
	assert.NotNil(t, repo.QuestState)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &questrepo.Repository{}, repo.QuestRepo)
	assert.Same(t, repo.QuestRepo, repo.QuestState)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
