package repo

import (
	"github.com/tippliga/tippliga/internal/pg"
	eventrepo "github.com/tippliga/tippliga/internal/repo/event-repo"
	poolrepo "github.com/tippliga/tippliga/internal/repo/pool-repo"
	predictionrepo "github.com/tippliga/tippliga/internal/repo/prediction-repo"
	userrepo "github.com/tippliga/tippliga/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	EventRepo      *eventrepo.Repository
	PredictionRepo *predictionrepo.Repository
	PoolRepo       *poolrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		EventRepo:      eventrepo.New(conn),
		PredictionRepo: predictionrepo.New(conn),
		PoolRepo:       poolrepo.New(conn),
	}
}
