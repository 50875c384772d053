package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/tippliga/tippliga/docs"
	eventshandlers "github.com/tippliga/tippliga/internal/handlers/events"
	predictionshandlers "github.com/tippliga/tippliga/internal/handlers/predictions"
	standingshandlers "github.com/tippliga/tippliga/internal/handlers/standings"
	"github.com/tippliga/tippliga/internal/metrics"
	"github.com/tippliga/tippliga/internal/service"
	"github.com/tippliga/tippliga/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type PredictionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetPredictions(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PostResult(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StandingsHandler interface {
	GetStandings(w http.ResponseWriter, r *http.Request)
	GetGlobalPool(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PredictionHandler PredictionHandler
	EventHandler      EventHandler
	StandingsHandler  StandingsHandler

	jwtService *auth.JWTService
}

func New(s *service.Services, jwtService *auth.JWTService) *Handlers {
	return &Handlers{
		PredictionHandler: predictionshandlers.New(s.BetService),
		EventHandler:      eventshandlers.New(s.EventService, s.SettlementService),
		StandingsHandler:  standingshandlers.New(s.EventService),
		jwtService:        jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.jwtService.Middleware)

		r.Route("/api/user/predictions", func(r chi.Router) {
			r.Post("/", h.PredictionHandler.Submit)
			r.Get("/", h.PredictionHandler.GetPredictions)
		})
		r.Get("/api/events", h.EventHandler.List)
		r.Get("/api/standings", h.StandingsHandler.GetStandings)
		r.Get("/api/pool", h.StandingsHandler.GetGlobalPool)

		r.Route("/api/admin/events", func(r chi.Router) {
			r.Use(auth.AdminOnly)
			r.Post("/", h.EventHandler.Create)
			r.Post("/{id}/result", h.EventHandler.PostResult)
			r.Delete("/{id}", h.EventHandler.Delete)
		})
	})

	return r
}
