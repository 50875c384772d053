package standings

import (
	"context"
	"net/http"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/dto"
	"github.com/tippliga/tippliga/pkg/utils"
)

//go:generate mockgen -source=standings.go -destination=standings_mock.go -package=standings

type Service interface {
	Standings(ctx context.Context) ([]domain.User, error)
	GlobalPool(ctx context.Context) (*domain.GlobalPool, error)
}

type StandingsHandler struct {
	eventService Service
}

func New(eventService Service) *StandingsHandler {
	return &StandingsHandler{
		eventService: eventService,
	}
}

// GetStandings godoc
//
//	@Summary		Get the score table
//	@Description	All users ordered by total score, then credits.
//	@Tags			Standings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.StandingsEntryDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/standings [get]
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	users, err := h.eventService.Standings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.StandingsEntryDTO, len(users))
	for i, user := range users {
		response[i] = dto.StandingsEntryDTO{
			UserID:  user.ID,
			Name:    user.Name,
			Score:   user.Score,
			Credits: user.Credits,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGlobalPool godoc
//
//	@Summary		Get the championship pool
//	@Description	Current value of the championship-wide accumulator.
//	@Tags			Standings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GlobalPoolResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/pool [get]
func (h *StandingsHandler) GetGlobalPool(w http.ResponseWriter, r *http.Request) {
	pool, err := h.eventService.GlobalPool(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GlobalPoolResponseDTO{Total: pool.Total})
}
