package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tippliga/tippliga/internal/pg"
	"github.com/tippliga/tippliga/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	mockTxManager := pg.NewMockTXManager(ctrl)

	services := New(repo.New(mockDB), mockTxManager)

	assert.NotNil(t, services.BetService)
	assert.NotNil(t, services.SettlementService)
	assert.NotNil(t, services.EventService)
}
