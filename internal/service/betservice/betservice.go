package betservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/metrics"
	"github.com/tippliga/tippliga/internal/pg"
	"github.com/tippliga/tippliga/pkg/scoring"
	"go.uber.org/zap"
)

//go:generate mockgen -source=betservice.go -destination=betservice_mock.go -package=betservice

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalanceAndScore(ctx context.Context, userID int, credits, score int64) error
}

type EventRepo interface {
	GetByIDs(ctx context.Context, eventIDs []int) ([]domain.Event, error)
}

type PredictionRepo interface {
	Insert(ctx context.Context, p *domain.Prediction) (bool, error)
	UpdateScoreline(ctx context.Context, userID, eventID, home, away, points int) error
	ListByUser(ctx context.Context, userID int) ([]domain.Prediction, error)
	SumPointsByUser(ctx context.Context, userID int) (int64, error)
}

type PoolRepo interface {
	Accumulate(ctx context.Context, eventID int, local int64) error
	AddToGlobal(ctx context.Context, amount int64) error
}

// Entry is one scoreline in a submission batch.
type Entry struct {
	EventID int
	Home    int
	Away    int
}

var (
	ErrEmptyBatch   = errors.New("empty prediction batch")
	ErrUserNotFound = errors.New("user not found")
)

// InsufficientCreditsError reports how much the batch would cost against
// what the user actually has.
type InsufficientCreditsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: required %d, available %d", e.Required, e.Available)
}

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

// Submit processes a batch of predictions for one user inside a single
// serializable transaction and returns the total amount charged. The batch
// is all-or-nothing with respect to affordability; malformed entries are
// skipped individually. A first submission for an event charges its cost
// and folds the fee into the event and global pools; a resubmission only
// rewrites the scoreline.
func (s *Service) Submit(ctx context.Context, userID int, entries []Entry) (int64, error) {
	if len(entries) == 0 {
		return 0, ErrEmptyBatch
	}

	var charged int64
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		valid := validEntries(entries)
		events, err := s.loadEvents(ctx, valid)
		if err != nil {
			return err
		}

		existing, err := s.existingByEvent(ctx, userID)
		if err != nil {
			return err
		}

		required := requiredCredits(valid, events, existing)
		if required > user.Credits {
			return &InsufficientCreditsError{Required: required, Available: user.Credits}
		}

		for _, entry := range valid {
			event, ok := events[entry.EventID]
			if !ok {
				zap.L().Warn("prediction for unknown event skipped",
					zap.Int("eventID", entry.EventID), zap.Int("userID", userID))
				continue
			}

			amount, err := s.applyEntry(ctx, user, &event, entry, existing)
			if err != nil {
				return err
			}
			charged += amount
		}

		if charged == 0 {
			return nil
		}

		score, err := s.predictionRepo.SumPointsByUser(ctx, userID)
		if err != nil {
			return err
		}
		return s.userRepo.UpdateBalanceAndScore(ctx, userID, user.Credits-charged, score)
	})
	if err != nil {
		charged = 0
	} else if charged > 0 {
		metrics.CreditsCharged.Add(float64(charged))
	}
	return charged, err
}

// applyEntry stores one prediction and returns the amount charged for it
// (zero for resubmissions). When the insert loses a race on the unique
// (user, event) pair it falls through to the update path without charging.
func (s *Service) applyEntry(ctx context.Context, user *domain.User, event *domain.Event, entry Entry, existing map[int]domain.Prediction) (int64, error) {
	points := 0
	if event.HasResult() {
		points = scoring.Points(entry.Home, entry.Away, *event.ResultHome, *event.ResultAway)
	}

	if _, ok := existing[event.ID]; !ok {
		inserted, err := s.predictionRepo.Insert(ctx, &domain.Prediction{
			UserID:      user.ID,
			EventID:     event.ID,
			Home:        entry.Home,
			Away:        entry.Away,
			CreditSpent: event.Cost,
			Points:      points,
		})
		if err != nil {
			return 0, err
		}
		if inserted {
			if err := s.poolRepo.Accumulate(ctx, event.ID, domain.LocalShare(event.Cost)); err != nil {
				return 0, err
			}
			if err := s.poolRepo.AddToGlobal(ctx, domain.GlobalShare(event.Cost)); err != nil {
				return 0, err
			}
			metrics.PredictionsAccepted.Inc()
			return event.Cost, nil
		}
	}

	return 0, s.predictionRepo.UpdateScoreline(ctx, user.ID, event.ID, entry.Home, entry.Away, points)
}

func (s *Service) loadEvents(ctx context.Context, entries []Entry) (map[int]domain.Event, error) {
	ids := make([]int, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.EventID)
	}
	events, err := s.eventRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.Event, len(events))
	for _, event := range events {
		byID[event.ID] = event
	}
	return byID, nil
}

func (s *Service) existingByEvent(ctx context.Context, userID int) (map[int]domain.Prediction, error) {
	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	byEvent := make(map[int]domain.Prediction, len(predictions))
	for _, p := range predictions {
		byEvent[p.EventID] = p
	}
	return byEvent, nil
}

// validEntries drops malformed entries (negative scores, bad ids) and
// duplicates within the batch; the rest of the batch proceeds.
func validEntries(entries []Entry) []Entry {
	seen := make(map[int]bool, len(entries))
	valid := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.EventID <= 0 || entry.Home < 0 || entry.Away < 0 {
			zap.L().Warn("malformed prediction entry skipped",
				zap.Int("eventID", entry.EventID), zap.Int("home", entry.Home), zap.Int("away", entry.Away))
			continue
		}
		if seen[entry.EventID] {
			continue
		}
		seen[entry.EventID] = true
		valid = append(valid, entry)
	}
	return valid
}

func requiredCredits(entries []Entry, events map[int]domain.Event, existing map[int]domain.Prediction) int64 {
	var required int64
	for _, entry := range entries {
		event, ok := events[entry.EventID]
		if !ok {
			continue
		}
		if _, ok := existing[entry.EventID]; ok {
			continue
		}
		required += event.Cost
	}
	return required
}

// GetPredictions returns all predictions placed by the user.
func (s *Service) GetPredictions(ctx context.Context, userID int) ([]domain.Prediction, error) {
	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch predictions", zap.Error(err))
		return nil, err
	}
	return predictions, nil
}
