package eventservice

import (
	"context"
	"errors"
	"strings"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=eventservice.go -destination=eventservice_mock.go -package=eventservice

type UserRepo interface {
	AddCredits(ctx context.Context, userID int, amount int64) error
	SetScore(ctx context.Context, userID int, score int64) error
	ListByScore(ctx context.Context) ([]domain.User, error)
}

type EventRepo interface {
	GetByID(ctx context.Context, eventID int) (*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	Delete(ctx context.Context, eventID int) error
}

type PredictionRepo interface {
	SpentByUser(ctx context.Context, eventID int) (map[int]int64, error)
	SumPointsByUser(ctx context.Context, userID int) (int64, error)
	DeleteByEvent(ctx context.Context, eventID int) (int64, error)
}

type PoolRepo interface {
	DeleteByEvent(ctx context.Context, eventID int) error
	GetGlobal(ctx context.Context) (*domain.GlobalPool, error)
}

var (
	ErrNotFound     = errors.New("event not found")
	ErrForbidden    = errors.New("only admins may delete events")
	ErrInvalidEvent = errors.New("event needs both teams, a kickoff and a non-negative cost")
)

type Service struct {
	userRepo       UserRepo
	eventRepo      EventRepo
	predictionRepo PredictionRepo
	poolRepo       PoolRepo
	txManager      pg.TXManager
}

func New(userRepo UserRepo, eventRepo EventRepo, predictionRepo PredictionRepo, poolRepo PoolRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		predictionRepo: predictionRepo,
		poolRepo:       poolRepo,
		txManager:      txManager,
	}
}

func (s *Service) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if strings.TrimSpace(event.Home) == "" || strings.TrimSpace(event.Away) == "" ||
		event.Kickoff.IsZero() || event.Cost < 0 {
		return nil, ErrInvalidEvent
	}
	if event.Status == "" {
		event.Status = domain.EventOpen
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		zap.L().Error("failed to create event", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	events, err := s.eventRepo.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list events", zap.Error(err))
		return nil, err
	}
	return events, nil
}

// Delete removes an event together with its predictions and pool row,
// refunds every bettor their spent credits and recomputes their totals
// from the predictions that remain. One transaction, no orphans.
func (s *Service) Delete(ctx context.Context, eventID int, role domain.Role) (int64, error) {
	if role != domain.RoleAdmin {
		return 0, ErrForbidden
	}

	var deleted int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		event, err := s.eventRepo.GetByID(ctx, eventID)
		if err != nil {
			return err
		}
		if event == nil {
			return ErrNotFound
		}

		spent, err := s.predictionRepo.SpentByUser(ctx, eventID)
		if err != nil {
			return err
		}

		deleted, err = s.predictionRepo.DeleteByEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if err := s.poolRepo.DeleteByEvent(ctx, eventID); err != nil {
			return err
		}
		if err := s.eventRepo.Delete(ctx, eventID); err != nil {
			return err
		}

		for userID, refund := range spent {
			if err := s.userRepo.AddCredits(ctx, userID, refund); err != nil {
				return err
			}
			score, err := s.predictionRepo.SumPointsByUser(ctx, userID)
			if err != nil {
				return err
			}
			if err := s.userRepo.SetScore(ctx, userID, score); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.L().Info("event deleted", zap.Int("eventID", eventID), zap.Int64("predictions", deleted))
	return deleted, nil
}

func (s *Service) Standings(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListByScore(ctx)
	if err != nil {
		zap.L().Error("failed to fetch standings", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) GlobalPool(ctx context.Context) (*domain.GlobalPool, error) {
	pool, err := s.poolRepo.GetGlobal(ctx)
	if err != nil {
		zap.L().Error("failed to fetch global pool", zap.Error(err))
		return nil, err
	}
	return pool, nil
}
