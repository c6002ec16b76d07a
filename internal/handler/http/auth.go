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

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Signup(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgAllFieldsRequired, statusFromError(err))
		case errors.Is(err, service.ErrEmailAlreadyRegistered):
			utils.WriteError(w, app.MsgUserAlreadyExists, statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			utils.WriteError(w, app.MsgSomethingWentWrong, statusFromError(err))
		}
		return
	}

	setTokenCookie(w, result.Token)
	utils.WriteJSON(w, models.SignupResponse{
		Success: true,
		User:    result.User.Summary(),
		Token:   result.Token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			utils.WriteError(w, app.MsgEmailPasswordRequired, statusFromError(err))
		case errors.Is(err, service.ErrUserNotFound):
			// login answers an unknown email with 401, not the default 404
			utils.WriteError(w, app.MsgLoginUserNotFound, http.StatusUnauthorized)
		case errors.Is(err, service.ErrWrongPassword):
			utils.WriteError(w, app.MsgInvalidCredentials, statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteError(w, app.MsgSomethingWentWrong, statusFromError(err))
		}
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user successfully logged in")

	setTokenCookie(w, result.Token)
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		User:    result.User.Snapshot(),
		Token:   result.Token.SignedString,
	}, http.StatusOK)
}

// logout always succeeds. A presented token is handed to the auth service for
// revocation and the cookie is cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if tokenString, err := tokenFromRequest(r); err == nil {
		h.services.AuthService.Logout(r.Context(), tokenString)
	}

	clearTokenCookie(w)
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) protected(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Success: true, Message: app.MsgUserVerified}, http.StatusOK)
}
