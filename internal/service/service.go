package service

import (
	"github.com/tippliga/tippliga/internal/pg"
	"github.com/tippliga/tippliga/internal/repo"
	"github.com/tippliga/tippliga/internal/service/betservice"
	"github.com/tippliga/tippliga/internal/service/eventservice"
	"github.com/tippliga/tippliga/internal/service/settlementservice"
)

type Services struct {
	BetService        *betservice.Service
	SettlementService *settlementservice.Service
	EventService      *eventservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	betService := betservice.New(repo.UserRepo, repo.EventRepo, repo.PredictionRepo, repo.PoolRepo, txManager)
	settlementService := settlementservice.New(repo.UserRepo, repo.EventRepo, repo.PredictionRepo, repo.PoolRepo, txManager)
	eventService := eventservice.New(repo.UserRepo, repo.EventRepo, repo.PredictionRepo, repo.PoolRepo, txManager)

	return &Services{
		BetService:        betService,
		SettlementService: settlementService,
		EventService:      eventService,
	}
}
