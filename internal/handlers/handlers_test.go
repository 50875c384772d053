package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/tippliga/tippliga/docs"
	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/pg"
	"github.com/tippliga/tippliga/internal/repo"
	"github.com/tippliga/tippliga/internal/service"
	"github.com/tippliga/tippliga/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	services := service.New(repo.New(mockDB), pg.NewMockTXManager(ctrl))

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.PredictionHandler)
	assert.NotNil(t, h.EventHandler)
	assert.NotNil(t, h.StandingsHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictionHandler := NewMockPredictionHandler(ctrl)
	mockEventHandler := NewMockEventHandler(ctrl)
	mockStandingsHandler := NewMockStandingsHandler(ctrl)

	mockPredictionHandler.EXPECT().Submit(gomock.Any(), gomock.Any()).AnyTimes()
	mockPredictionHandler.EXPECT().GetPredictions(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().PostResult(gomock.Any(), gomock.Any()).AnyTimes()
	mockEventHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockStandingsHandler.EXPECT().GetStandings(gomock.Any(), gomock.Any()).AnyTimes()
	mockStandingsHandler.EXPECT().GetGlobalPool(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	h := &Handlers{
		PredictionHandler: mockPredictionHandler,
		EventHandler:      mockEventHandler,
		StandingsHandler:  mockStandingsHandler,
		jwtService:        jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	expiration := time.Now().Add(time.Hour)
	userToken, err := jwtService.GenerateJWT(1, domain.RoleUser, expiration)
	assert.NoError(t, err)
	adminToken, err := jwtService.GenerateJWT(2, domain.RoleAdmin, expiration)
	assert.NoError(t, err)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/predictions", "", http.StatusUnauthorized},
		{"GET", "/api/user/predictions", "", http.StatusUnauthorized},
		{"GET", "/api/events", "", http.StatusUnauthorized},
		{"GET", "/api/standings", "", http.StatusUnauthorized},
		{"GET", "/api/pool", "", http.StatusUnauthorized},
		{"POST", "/api/user/predictions", userToken, http.StatusOK},
		{"GET", "/api/events", userToken, http.StatusOK},
		{"GET", "/api/standings", userToken, http.StatusOK},
		{"GET", "/api/pool", userToken, http.StatusOK},
		{"POST", "/api/admin/events", userToken, http.StatusForbidden},
		{"POST", "/api/admin/events/1/result", userToken, http.StatusForbidden},
		{"DELETE", "/api/admin/events/1", userToken, http.StatusForbidden},
		{"POST", "/api/admin/events", adminToken, http.StatusOK},
		{"POST", "/api/admin/events/1/result", adminToken, http.StatusOK},
		{"DELETE", "/api/admin/events/1", adminToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
