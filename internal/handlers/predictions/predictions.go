package predictions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tippliga/tippliga/internal/domain"
	"github.com/tippliga/tippliga/internal/dto"
	"github.com/tippliga/tippliga/internal/service/betservice"
	"github.com/tippliga/tippliga/pkg/auth"
	"github.com/tippliga/tippliga/pkg/utils"
)

//go:generate mockgen -source=predictions.go -destination=predictions_mock.go -package=predictions

type Service interface {
	Submit(ctx context.Context, userID int, entries []betservice.Entry) (int64, error)
	GetPredictions(ctx context.Context, userID int) ([]domain.Prediction, error)
}

type PredictionHandler struct {
	betService Service
}

func New(betService Service) *PredictionHandler {
	return &PredictionHandler{
		betService: betService,
	}
}

// Submit godoc
//
//	@Summary		Submit a batch of predictions
//	@Description	Charge the user's credits for new predictions and update already placed ones in a single atomic batch.
//	@Tags			Predictions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitPredictionsRequestDTO	true	"Prediction batch"
//	@Success		200		{object}	dto.SubmitPredictionsResponseDTO
//	@Failure		400		{object}	utils.Response							"Empty batch or malformed body"
//	@Failure		401		{object}	utils.Response							"User not authorized"
//	@Failure		402		{object}	dto.InsufficientCreditsResponseDTO	"Not enough credits"
//	@Failure		500		{object}	utils.Response							"Internal server error"
//	@Router			/api/user/predictions [post]
func (h *PredictionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SubmitPredictionsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]betservice.Entry, 0, len(req.Predictions))
	for _, p := range req.Predictions {
		entries = append(entries, betservice.Entry{EventID: p.EventID, Home: p.Home, Away: p.Away})
	}

	spent, err := h.betService.Submit(r.Context(), userID, entries)
	if err != nil {
		var insufficient *betservice.InsufficientCreditsError
		switch {
		case errors.Is(err, betservice.ErrEmptyBatch):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &insufficient):
			utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.InsufficientCreditsResponseDTO{
				Message:   "insufficient credits",
				Required:  insufficient.Required,
				Available: insufficient.Available,
			})
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SubmitPredictionsResponseDTO{CreditSpent: spent})
}

// GetPredictions godoc
//
//	@Summary		Get own predictions
//	@Description	Retrieve all predictions placed by the authenticated user, with awarded points.
//	@Tags			Predictions
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetPredictionsResponseDTO
//	@Success		204	{object}	utils.Response	"No predictions yet"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/predictions [get]
func (h *PredictionHandler) GetPredictions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	predictions, err := h.betService.GetPredictions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(predictions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No predictions yet")
		return
	}

	response := make([]dto.GetPredictionsResponseDTO, len(predictions))
	for i, p := range predictions {
		response[i] = dto.GetPredictionsResponseDTO{
			EventID:     p.EventID,
			Home:        p.Home,
			Away:        p.Away,
			CreditSpent: p.CreditSpent,
			Points:      p.Points,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
