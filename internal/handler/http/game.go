package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/fraud-shield/internal/app"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/models"
)

func (h *Handler) completeGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgNoToken, http.StatusUnauthorized)
		return
	}

	var completion models.GameCompletion
	if err := json.NewDecoder(r.Body).Decode(&completion); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	reward, err := h.services.GameService.CompleteGame(ctx, userID, completion)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgInvalidGameCompletion, statusFromError(err))
		case errors.Is(err, service.ErrUserNotFound):
			utils.WriteError(w, app.MsgUserNotFound, statusFromError(err))
		default:
			log.Err(err).Str("user_id", userID).Msg("game completion failed")
			utils.WriteError(w, app.MsgGameCompletionFailed, statusFromError(err))
		}
		return
	}

	utils.WriteJSON(w, models.GameRewardResponse{Success: true, GameReward: reward}, http.StatusOK)
}
