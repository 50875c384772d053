package predictionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/tippliga/tippliga/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)

	prediction := &domain.Prediction{
		UserID: 1, EventID: 10, Home: 2, Away: 1, CreditSpent: 100, Points: 0,
	}

	tests := []struct {
		name      string
		mockSetup func()
		inserted  bool
		expectErr bool
	}{
		{
			name: "Row inserted",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, event_id) DO NOTHING")).
					WithArgs(1, 10, 2, 1, int64(100), 0).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			inserted: true,
		},
		{
			name: "Duplicate absorbed by the unique constraint",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, event_id) DO NOTHING")).
					WithArgs(1, 10, 2, 1, int64(100), 0).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			inserted: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id, event_id) DO NOTHING")).
					WithArgs(1, 10, 2, 1, int64(100), 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			inserted, err := repo.Insert(context.Background(), prediction)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.inserted, inserted)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateScoreline(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET home = $1, away = $2, points = $3")).
		WithArgs(3, 0, 6, 1, 10).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateScoreline(context.Background(), 1, 10, 3, 0, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePoints(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET points = $1")).
		WithArgs(6, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePoints(context.Background(), 7, 6)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Prediction
	}{
		{
			name: "Predictions found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "event_id", "home", "away", "credit_spent", "points"}).
					AddRow(1, 1, 10, 2, 1, int64(100), 6).
					AddRow(2, 1, 11, 0, 0, int64(150), 0)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
					WithArgs(1).
					WillReturnRows(rows)
			},
			result: []domain.Prediction{
				{ID: 1, UserID: 1, EventID: 10, Home: 2, Away: 1, CreditSpent: 100, Points: 6},
				{ID: 2, UserID: 1, EventID: 11, CreditSpent: 150},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			predictions, err := repo.ListByUser(context.Background(), 1)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, predictions)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListByEvent(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"id", "user_id", "event_id", "home", "away", "credit_spent", "points"}).
		AddRow(1, 1, 10, 2, 1, int64(100), 0).
		AddRow(2, 2, 10, 0, 3, int64(100), 0)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE event_id = $1")).
		WithArgs(10).
		WillReturnRows(rows)

	predictions, err := repo.ListByEvent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, predictions, 2)
	assert.Equal(t, 2, predictions[1].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumPointsByUser(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(9))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(points), 0)")).
		WithArgs(1).
		WillReturnRows(rows)

	total, err := repo.SumPointsByUser(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(9), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SpentByUser(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"user_id", "coalesce"}).
		AddRow(1, int64(100)).
		AddRow(2, int64(250))
	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY user_id")).
		WithArgs(10).
		WillReturnRows(rows)

	spent, err := repo.SpentByUser(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 100, 2: 250}, spent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteByEvent(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM predictions")).
		WithArgs(10).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	deleted, err := repo.DeleteByEvent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
