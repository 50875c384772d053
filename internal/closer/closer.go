package closer

import (
	"context"
	"time"

	"github.com/tippliga/tippliga/internal/config"
	"github.com/tippliga/tippliga/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=closer.go -destination=closer_mock.go -package=closer

type EventRepo interface {
	FindStarted(ctx context.Context, before time.Time, limit uint32) ([]domain.Event, error)
	Close(ctx context.Context, eventID int) error
}

// Service locks betting once kickoff has passed: it periodically scans for
// events still open past their kickoff and closes them.
type Service struct {
	eventRepo    EventRepo
	limit        uint32
	workerPool   WorkerPoolI
	scanInterval time.Duration
	now          func() time.Time
}

func New(cfg *config.Config, eventRepo EventRepo) *Service {
	return &Service{
		eventRepo:    eventRepo,
		limit:        1000,
		workerPool:   NewWorkerPool(10),
		scanInterval: cfg.CloseInterval,
		now:          time.Now,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Event closer started", zap.Duration("interval", s.scanInterval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping event closer")
			return
		case <-ticker.C:
			s.closeStarted(ctx)
		}
	}
}

func (s *Service) closeStarted(ctx context.Context) {
	events, err := s.eventRepo.FindStarted(ctx, s.now(), s.limit)
	if err != nil {
		zap.L().Error("Failed to fetch started events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		g.Go(func() error {
			return s.workerPool.AddTask(ctx, func() error {
				if err := s.eventRepo.Close(ctx, event.ID); err != nil {
					return err
				}
				zap.L().Info("Event closed at kickoff",
					zap.Int("eventID", event.ID),
					zap.Time("kickoff", event.Kickoff))
				return nil
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error closing started events", zap.Error(err))
	}
}
