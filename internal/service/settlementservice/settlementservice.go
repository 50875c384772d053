package settlementservice

import (
	"context"
	"errors"
	"time"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/metrics"
	"github.com/tippliga/tippliga/internal/pg"
	"github.com/tippliga/tippliga/pkg/scoring"
	"go.uber.org/zap"
)

//go:generate mockgen -source=settlementservice.go -destination=settlementservice_mock.go -package=settlementservice

type UserRepo interface {
	AddCredits(ctx context.Context, userID int, amount int64) error
	SetScore(ctx context.Context, userID int, score int64) error
}

type EventRepo interface {
	GetByID(ctx context.Context, eventID int) (*domain.Event, error)
	SetResult(ctx context.Context, eventID, home, away int) error
	FindPriorSettled(ctx context.Context, kickoff time.Time, excludeID int) (*domain.Event, error)
}

type PredictionRepo interface {
	ListByEvent(ctx context.Context, eventID int) ([]domain.Prediction, error)
	UpdatePoints(ctx context.Context, predictionID, points int) error
	SumPointsByUser(ctx context.Context, userID int) (int64, error)
}

type PoolRepo interface {
	GetByEvent(ctx context.Context, eventID int) (*domain.EventPool, error)
	SetPool(ctx context.Context, eventID int, local, carried int64) error
	MarkPaid(ctx context.Context, eventID int, distributed int64) error
}

var (
	ErrNotFound      = errors.New("event not found")
	ErrForbidden     = errors.New("only admins may post results")
	ErrTooEarly      = errors.New("result can be posted at most 2 hours before kickoff")
	ErrInvalidResult = errors.New("result goals must be non-negative")
)

// leadWindow is how long before kickoff a result may already be posted.
const leadWindow = 2 * time.Hour

// Result describes what a settlement run did with the prize pool.
type Result struct {
	PoolDistributed bool
	Winners         []int
	PoolCarry       int64
}

type Service struct {
	userRepo       UserRepo
	eventRepo      EventRepo
	predictionRepo PredictionRepo
	poolRepo       PoolRepo
	txManager      pg.TXManager
	now            func() time.Time
}

func New(userRepo UserRepo, eventRepo EventRepo, predictionRepo PredictionRepo, poolRepo PoolRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:       userRepo,
		eventRepo:      eventRepo,
		predictionRepo: predictionRepo,
		poolRepo:       poolRepo,
		txManager:      txManager,
		now:            time.Now,
	}
}

// PostResult stores the official result for an event, rescores every
// prediction on it, recomputes the owners' totals and settles the prize
// pool. Re-posting a result is safe: scoring converges to the same values
// and a pool that has already paid out is never credited again.
func (s *Service) PostResult(ctx context.Context, eventID, home, away int, role domain.Role) (*Result, error) {
	if role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	if home < 0 || away < 0 {
		return nil, ErrInvalidResult
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if event.Status != domain.EventClosed && s.now().Before(event.Kickoff.Add(-leadWindow)) {
		return nil, ErrTooEarly
	}

	var result *Result
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.eventRepo.SetResult(ctx, eventID, home, away); err != nil {
			return err
		}

		predictions, err := s.rescore(ctx, eventID, home, away)
		if err != nil {
			return err
		}

		winners := pickWinners(predictions, event.IsFinal, home, away)
		result, err = s.settlePool(ctx, event, predictions, winners)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.SettlementsTotal.Inc()
	zap.L().Info("event settled",
		zap.Int("eventID", eventID),
		zap.Bool("poolDistributed", result.PoolDistributed),
		zap.Int("winners", len(result.Winners)),
		zap.Int64("poolCarry", result.PoolCarry))
	return result, nil
}

// rescore recomputes the points of every prediction on the event and
// brings each owner's total score current across all their predictions.
func (s *Service) rescore(ctx context.Context, eventID, home, away int) ([]domain.Prediction, error) {
	predictions, err := s.predictionRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	for i, p := range predictions {
		points := scoring.Points(p.Home, p.Away, home, away)
		if points != p.Points {
			if err := s.predictionRepo.UpdatePoints(ctx, p.ID, points); err != nil {
				return nil, err
			}
			predictions[i].Points = points
		}

		total, err := s.predictionRepo.SumPointsByUser(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.SetScore(ctx, p.UserID, total); err != nil {
			return nil, err
		}
	}
	return predictions, nil
}

// pickWinners selects exact-match predictions. A finale with no exact match
// falls back to everyone who at least called the outcome.
func pickWinners(predictions []domain.Prediction, isFinal bool, home, away int) []int {
	var winners []int
	for _, p := range predictions {
		if p.Points == scoring.PointsExact {
			winners = append(winners, p.UserID)
		}
	}
	if len(winners) > 0 || !isFinal {
		return winners
	}
	for _, p := range predictions {
		if scoring.SameOutcome(p.Home, p.Away, home, away) {
			winners = append(winners, p.UserID)
		}
	}
	return winners
}

// settlePool recomputes the event pool from the predictions' entry fees,
// pulls in the carry from the previous settled event when that one paid
// nothing out, and either distributes the total among the winners or
// leaves it unclaimed for the next settled event to pick up.
func (s *Service) settlePool(ctx context.Context, event *domain.Event, predictions []domain.Prediction, winners []int) (*Result, error) {
	pool, err := s.poolRepo.GetByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if pool != nil && pool.PaidOut {
		// a previous run already credited the winners; never pay twice
		zap.L().Info("pool already paid out, skipping distribution", zap.Int("eventID", event.ID))
		return &Result{PoolDistributed: true, Winners: winners}, nil
	}

	var local int64
	for _, p := range predictions {
		local += domain.LocalShare(p.CreditSpent)
	}

	carried, err := s.carryIn(ctx, event)
	if err != nil {
		return nil, err
	}

	if err := s.poolRepo.SetPool(ctx, event.ID, local, carried); err != nil {
		return nil, err
	}

	if len(winners) == 0 {
		metrics.PoolCarried.Add(float64(local + carried))
		return &Result{PoolCarry: local + carried}, nil
	}

	payout := local + carried
	share := payout / int64(len(winners))
	for _, userID := range winners {
		if err := s.userRepo.AddCredits(ctx, userID, share); err != nil {
			return nil, err
		}
	}
	if err := s.poolRepo.MarkPaid(ctx, event.ID, payout); err != nil {
		return nil, err
	}

	metrics.PoolCredited.Add(float64(payout))
	return &Result{PoolDistributed: true, Winners: winners}, nil
}

// carryIn is nonzero only when the chronologically previous settled event
// distributed nothing; then its whole pool rolls forward.
func (s *Service) carryIn(ctx context.Context, event *domain.Event) (int64, error) {
	prior, err := s.eventRepo.FindPriorSettled(ctx, event.Kickoff, event.ID)
	if err != nil {
		return 0, err
	}
	if prior == nil {
		return 0, nil
	}

	priorPool, err := s.poolRepo.GetByEvent(ctx, prior.ID)
	if err != nil {
		return 0, err
	}
	if priorPool == nil || priorPool.Distributed != 0 {
		return 0, nil
	}
	return priorPool.Local + priorPool.Carried, nil
}
