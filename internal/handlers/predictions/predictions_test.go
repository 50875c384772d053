package predictions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/dto"
	"github.com/tippliga/tippliga/internal/service/betservice"
	"github.com/tippliga/tippliga/pkg/auth"
)

func NewMock(t *testing.T) (*PredictionHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestSubmitHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.SubmitPredictionsResponseDTO
	}{
		{
			name: "Successful submission",
			body: `{"predictions":[{"event_id":10,"home":2,"away":1}]}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, []betservice.Entry{{EventID: 10, Home: 2, Away: 1}}).
					Return(int64(100), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.SubmitPredictionsResponseDTO{CreditSpent: 100},
		},
		{
			name:         "Invalid request body",
			body:         `{"predictions":invalid}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Empty batch",
			body: `{"predictions":[]}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, []betservice.Entry{}).
					Return(int64(0), betservice.ErrEmptyBatch)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient credits",
			body: `{"predictions":[{"event_id":10,"home":2,"away":1}]}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, gomock.Any()).
					Return(int64(0), &betservice.InsufficientCreditsError{Required: 200, Available: 120})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name: "Internal server error",
			body: `{"predictions":[{"event_id":10,"home":2,"away":1}]}`,
			prepareMock: func() {
				service.EXPECT().
					Submit(gomock.Any(), 1, gomock.Any()).
					Return(int64(0), errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			r := httptest.NewRequest(http.MethodPost, "/api/user/predictions", bytes.NewBufferString(tt.body))
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.Submit(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.SubmitPredictionsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestSubmitHandlerInsufficientCreditsBody(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().
		Submit(gomock.Any(), 1, gomock.Any()).
		Return(int64(0), &betservice.InsufficientCreditsError{Required: 200, Available: 120})

	r := httptest.NewRequest(http.MethodPost, "/api/user/predictions",
		bytes.NewBufferString(`{"predictions":[{"event_id":10,"home":2,"away":1}]}`))
	r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
	w := httptest.NewRecorder()

	handler.Submit(w, r)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	var body dto.InsufficientCreditsResponseDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, int64(200), body.Required)
	assert.Equal(t, int64(120), body.Available)
}

func TestGetPredictionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.GetPredictionsResponseDTO
	}{
		{
			name: "Predictions returned",
			prepareMock: func() {
				service.EXPECT().
					GetPredictions(gomock.Any(), 1).
					Return([]domain.Prediction{
						{ID: 1, UserID: 1, EventID: 10, Home: 2, Away: 1, CreditSpent: 100, Points: 6},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.GetPredictionsResponseDTO{
				{EventID: 10, Home: 2, Away: 1, CreditSpent: 100, Points: 6},
			},
		},
		{
			name: "No predictions yet",
			prepareMock: func() {
				service.EXPECT().
					GetPredictions(gomock.Any(), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetPredictions(gomock.Any(), 1).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/user/predictions", nil)
			r = r.WithContext(context.WithValue(context.Background(), auth.UserIDKey, 1))
			w := httptest.NewRecorder()

			handler.GetPredictions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body []dto.GetPredictionsResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
