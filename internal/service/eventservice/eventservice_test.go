package eventservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/pg"
)

type mocks struct {
	userRepo       *MockUserRepo
	eventRepo      *MockEventRepo
	predictionRepo *MockPredictionRepo
	poolRepo       *MockPoolRepo
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		userRepo:       NewMockUserRepo(ctrl),
		eventRepo:      NewMockEventRepo(ctrl),
		predictionRepo: NewMockPredictionRepo(ctrl),
		poolRepo:       NewMockPoolRepo(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.userRepo, m.eventRepo, m.predictionRepo, m.poolRepo, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func (m *mocks) expectTx() {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestCreate(t *testing.T) {
	service, m := NewMock(t)
	kickoff := time.Date(2026, 6, 14, 20, 45, 0, 0, time.UTC)

	tests := []struct {
		name          string
		event         *domain.Event
		prepareMock   func()
		expectedEvent *domain.Event
		expectedError error
	}{
		{
			name:          "Missing home team",
			event:         &domain.Event{Away: "Újpest", Kickoff: kickoff, Cost: 100},
			expectedError: ErrInvalidEvent,
		},
		{
			name:          "Missing kickoff",
			event:         &domain.Event{Home: "Ferencváros", Away: "Újpest", Cost: 100},
			expectedError: ErrInvalidEvent,
		},
		{
			name:          "Negative cost",
			event:         &domain.Event{Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Cost: -1},
			expectedError: ErrInvalidEvent,
		},
		{
			name:  "Defaults to open status",
			event: &domain.Event{Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Cost: 100},
			prepareMock: func() {
				m.eventRepo.EXPECT().Create(gomock.Any(), &domain.Event{
					Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Status: domain.EventOpen, Cost: 100,
				}).Return(&domain.Event{
					ID: 1, Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Status: domain.EventOpen, Cost: 100,
				}, nil)
			},
			expectedEvent: &domain.Event{
				ID: 1, Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Status: domain.EventOpen, Cost: 100,
			},
		},
		{
			name:  "Repository error",
			event: &domain.Event{Home: "Ferencváros", Away: "Újpest", Kickoff: kickoff, Cost: 100},
			prepareMock: func() {
				m.eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			event, err := service.Create(context.Background(), tt.event)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEvent, event)
			}
		})
	}
}

func TestList(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		status        domain.EventStatus
		prepareMock   func()
		expected      []domain.Event
		expectedError error
	}{
		{
			name:   "Filter by open status",
			status: domain.EventOpen,
			prepareMock: func() {
				m.eventRepo.EXPECT().List(gomock.Any(), domain.EventOpen).Return([]domain.Event{
					{ID: 1, Status: domain.EventOpen},
				}, nil)
			},
			expected: []domain.Event{{ID: 1, Status: domain.EventOpen}},
		},
		{
			name: "Error listing events",
			prepareMock: func() {
				m.eventRepo.EXPECT().List(gomock.Any(), domain.EventStatus("")).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			events, err := service.List(context.Background(), tt.status)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, events)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name            string
		eventID         int
		role            domain.Role
		prepareMock     func()
		expectedDeleted int64
		expectedError   error
	}{
		{
			name:          "Non-admin is rejected",
			eventID:       10,
			role:          domain.RoleUser,
			expectedError: ErrForbidden,
		},
		{
			name:    "Unknown event",
			eventID: 99,
			role:    domain.RoleAdmin,
			prepareMock: func() {
				m.expectTx()
				m.eventRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:    "Deletes predictions and refunds every bettor",
			eventID: 10,
			role:    domain.RoleAdmin,
			prepareMock: func() {
				m.expectTx()
				m.eventRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Event{ID: 10, Cost: 100}, nil)
				m.predictionRepo.EXPECT().SpentByUser(gomock.Any(), 10).Return(map[int]int64{1: 100, 2: 100}, nil)
				m.predictionRepo.EXPECT().DeleteByEvent(gomock.Any(), 10).Return(int64(2), nil)
				m.poolRepo.EXPECT().DeleteByEvent(gomock.Any(), 10).Return(nil)
				m.eventRepo.EXPECT().Delete(gomock.Any(), 10).Return(nil)
				m.userRepo.EXPECT().AddCredits(gomock.Any(), 1, int64(100)).Return(nil)
				m.predictionRepo.EXPECT().SumPointsByUser(gomock.Any(), 1).Return(int64(3), nil)
				m.userRepo.EXPECT().SetScore(gomock.Any(), 1, int64(3)).Return(nil)
				m.userRepo.EXPECT().AddCredits(gomock.Any(), 2, int64(100)).Return(nil)
				m.predictionRepo.EXPECT().SumPointsByUser(gomock.Any(), 2).Return(int64(0), nil)
				m.userRepo.EXPECT().SetScore(gomock.Any(), 2, int64(0)).Return(nil)
			},
			expectedDeleted: 2,
		},
		{
			name:    "Refund failure rolls everything back",
			eventID: 10,
			role:    domain.RoleAdmin,
			prepareMock: func() {
				m.expectTx()
				m.eventRepo.EXPECT().GetByID(gomock.Any(), 10).Return(&domain.Event{ID: 10, Cost: 100}, nil)
				m.predictionRepo.EXPECT().SpentByUser(gomock.Any(), 10).Return(map[int]int64{1: 100}, nil)
				m.predictionRepo.EXPECT().DeleteByEvent(gomock.Any(), 10).Return(int64(1), nil)
				m.poolRepo.EXPECT().DeleteByEvent(gomock.Any(), 10).Return(nil)
				m.eventRepo.EXPECT().Delete(gomock.Any(), 10).Return(nil)
				m.userRepo.EXPECT().AddCredits(gomock.Any(), 1, int64(100)).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			deleted, err := service.Delete(context.Background(), tt.eventID, tt.role)
			assert.Equal(t, tt.expectedDeleted, deleted)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStandings(t *testing.T) {
	service, m := NewMock(t)

	m.userRepo.EXPECT().ListByScore(gomock.Any()).Return([]domain.User{
		{ID: 2, Name: "bela", Score: 12, Credits: 340},
		{ID: 1, Name: "anna", Score: 9, Credits: 500},
	}, nil)

	users, err := service.Standings(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, 2, users[0].ID)
}

func TestGlobalPool(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.GlobalPool
		expectedError error
	}{
		{
			name: "Returns the accumulated total",
			prepareMock: func() {
				m.poolRepo.EXPECT().GetGlobal(gomock.Any()).Return(&domain.GlobalPool{ID: 1, Total: 400}, nil)
			},
			expected: &domain.GlobalPool{ID: 1, Total: 400},
		},
		{
			name: "Error fetching the pool",
			prepareMock: func() {
				m.poolRepo.EXPECT().GetGlobal(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			pool, err := service.GlobalPool(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, pool)
			}
		})
	}
}
