// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fraud-shield/internal/app"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/MKhiriev/fraud-shield/models"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, app.MsgNoToken, http.StatusUnauthorized)
		return
	}

	user, err := h.services.ProfileService.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			utils.WriteError(w, app.MsgUserNotFound, statusFromError(err))
			return
		}
		log.Err(err).Str("user_id", userID).Msg("profile retrieval failed")
		utils.WriteError(w, app.MsgProfileFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Success: true, User: user.Profile()}, http.StatusOK)
}

func (h *Handler) leaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.ProfileService.GetLeaderboard(r.Context())
	if err != nil {
		log.Err(err).Msg("leaderboard retrieval failed")
		utils.WriteError(w, app.MsgLeaderboardFailed, statusFromError(err))
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	utils.WriteJSON(w, models.LeaderboardResponse{
		Success:     true,
		Message:     app.MsgLeaderboardRetrieved,
		Leaderboard: entries,
	}, http.StatusOK)
}
