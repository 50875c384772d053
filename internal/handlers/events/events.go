package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/dto"
	"github.com/tippliga/tippliga/internal/service/eventservice"
	"github.com/tippliga/tippliga/internal/service/settlementservice"
	"github.com/tippliga/tippliga/pkg/auth"
	"github.com/tippliga/tippliga/pkg/utils"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=events

type EventService interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	Delete(ctx context.Context, eventID int, role domain.Role) (int64, error)
}

type SettlementService interface {
	PostResult(ctx context.Context, eventID, home, away int, role domain.Role) (*settlementservice.Result, error)
}

type EventHandler struct {
	eventService      EventService
	settlementService SettlementService
}

func New(eventService EventService, settlementService SettlementService) *EventHandler {
	return &EventHandler{
		eventService:      eventService,
		settlementService: settlementService,
	}
}

// Create godoc
//
//	@Summary		Create an event
//	@Description	Register a new match with kickoff time and entry cost. Status accepts OPEN/CLOSED and their legacy Hungarian synonyms.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateEventRequestDTO	true	"Event payload"
//	@Success		201		{object}	dto.EventResponseDTO
//	@Failure		400		{object}	utils.Response	"Malformed payload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/events [post]
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	status, ok := dto.NormalizeStatus(req.Status)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown event status")
		return
	}

	event, err := h.eventService.Create(r.Context(), &domain.Event{
		Home:    req.Home,
		Away:    req.Away,
		Kickoff: req.Kickoff,
		Status:  status,
		Cost:    req.Cost,
		IsFinal: req.IsFinal,
	})
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrInvalidEvent):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toEventDTO(event))
}

// List godoc
//
//	@Summary		List events
//	@Description	All events in kickoff order, optionally filtered by status.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"OPEN or CLOSED"
//	@Success		200		{array}		dto.EventResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status filter"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/events [get]
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	var status domain.EventStatus
	if q := r.URL.Query().Get("status"); q != "" {
		normalized, ok := dto.NormalizeStatus(q)
		if !ok {
			utils.RespondWithError(w, http.StatusBadRequest, "unknown event status")
			return
		}
		status = normalized
	}

	events, err := h.eventService.List(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.EventResponseDTO, len(events))
	for i := range events {
		response[i] = toEventDTO(&events[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PostResult godoc
//
//	@Summary		Post an official result
//	@Description	Store the final score, rescore every prediction and settle the prize pool. Safe to re-run.
//	@Tags			Events
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Event id"
//	@Param			request	body		dto.PostResultRequestDTO	true	"Final score"
//	@Success		200		{object}	dto.PostResultResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid result"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin role required"
//	@Failure		404		{object}	utils.Response	"Event not found"
//	@Failure		409		{object}	utils.Response	"Too early before kickoff"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/events/{id}/result [post]
func (h *EventHandler) PostResult(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(domain.Role)

	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var req dto.PostResultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.settlementService.PostResult(r.Context(), eventID, req.Home, req.Away, role)
	if err != nil {
		switch {
		case errors.Is(err, settlementservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, settlementservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, settlementservice.ErrTooEarly):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, settlementservice.ErrInvalidResult):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	winners := result.Winners
	if winners == nil {
		winners = []int{}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PostResultResponseDTO{
		PoolDistributed: result.PoolDistributed,
		Winners:         winners,
		PoolCarry:       result.PoolCarry,
	})
}

// Delete godoc
//
//	@Summary		Delete an event
//	@Description	Remove an event, its predictions and pool; refund every bettor and recompute their scores.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Event id"
//	@Success		200	{object}	dto.DeleteEventResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid event id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin role required"
//	@Failure		404	{object}	utils.Response	"Event not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/events/{id} [delete]
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(auth.RoleKey).(domain.Role)

	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	deleted, err := h.eventService.Delete(r.Context(), eventID, role)
	if err != nil {
		switch {
		case errors.Is(err, eventservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, eventservice.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteEventResponseDTO{DeletedPredictionsCount: deleted})
}

func toEventDTO(event *domain.Event) dto.EventResponseDTO {
	return dto.EventResponseDTO{
		ID:         event.ID,
		Home:       event.Home,
		Away:       event.Away,
		Kickoff:    event.Kickoff,
		Status:     string(event.Status),
		Cost:       event.Cost,
		IsFinal:    event.IsFinal,
		ResultHome: event.ResultHome,
		ResultAway: event.ResultAway,
	}
}
