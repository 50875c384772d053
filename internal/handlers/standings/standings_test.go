package standings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/dto"
)

func NewMock(t *testing.T) (*StandingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetStandingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.StandingsEntryDTO
	}{
		{
			name: "Standings returned",
			prepareMock: func() {
				service.EXPECT().Standings(gomock.Any()).Return([]domain.User{
					{ID: 2, Name: "bela", Credits: 340, Score: 12},
					{ID: 1, Name: "anna", Credits: 500, Score: 9},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.StandingsEntryDTO{
				{UserID: 2, Name: "bela", Score: 12, Credits: 340},
				{UserID: 1, Name: "anna", Score: 9, Credits: 500},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Standings(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/standings", nil)
			w := httptest.NewRecorder()

			handler.GetStandings(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body []dto.StandingsEntryDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetGlobalPoolHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.GlobalPoolResponseDTO
	}{
		{
			name: "Pool returned",
			prepareMock: func() {
				service.EXPECT().GlobalPool(gomock.Any()).Return(&domain.GlobalPool{ID: 1, Total: 400}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.GlobalPoolResponseDTO{Total: 400},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().GlobalPool(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/pool", nil)
			w := httptest.NewRecorder()

			handler.GetGlobalPool(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.GlobalPoolResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
