package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tippliga/tippliga/internal/domain"
)

func TestMiddleware(t *testing.T) {
	jwtService := NewJWTService("secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(int)
		role, _ := r.Context().Value(RoleKey).(domain.Role)
		assert.Equal(t, 1, userID)
		assert.Equal(t, domain.RoleAdmin, role)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		authHeader   func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(1, domain.RoleAdmin, time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer scheme",
			authHeader:   func() string { return "Basic dXNlcjpwYXNz" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			authHeader:   func() string { return "Bearer invalid.token.string" },
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			if header := tt.authHeader(); header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()

			jwtService.Middleware(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		role         any
		expectedCode int
	}{
		{name: "Admin passes", role: domain.RoleAdmin, expectedCode: http.StatusOK},
		{name: "User is rejected", role: domain.RoleUser, expectedCode: http.StatusForbidden},
		{name: "Missing role is rejected", role: nil, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/admin/events", nil)
			if tt.role != nil {
				r = r.WithContext(context.WithValue(r.Context(), RoleKey, tt.role))
			}
			w := httptest.NewRecorder()

			AdminOnly(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
