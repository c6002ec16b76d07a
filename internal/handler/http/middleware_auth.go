package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/app"
	"github.com/MKhiriev/fraud-shield/internal/logger"
	"github.com/MKhiriev/fraud-shield/internal/service"
	"github.com/MKhiriev/fraud-shield/internal/utils"
)

// auth is an HTTP middleware that enforces session-token authentication.
//
// The token is taken from the "Authorization: Bearer" header, or from the
// token cookie when the header is absent, and verified with
// [service.AuthService.VerifySession]. On success the user id and email are
// stored in the request context with [utils.WithSession].
//
// Responses:
//   - 401 with MsgNoToken when no token is found.
//   - 401 with MsgInvalidToken for a malformed header or a token that is
//     invalid, expired or revoked.
//   - 500 when verification itself fails, e.g. the revocation store is
//     unreachable.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromRequest(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without a usable token")
			if err == ErrNoSessionToken {
				utils.WriteError(w, app.MsgNoToken, http.StatusUnauthorized)
				return
			}
			utils.WriteError(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.VerifySession(ctx, tokenString)
		if err != nil {
			if service.IsUnauthorized(err) {
				log.Debug().Err(err).Msg("session rejected")
				utils.WriteError(w, app.MsgInvalidToken, statusFromError(err))
				return
			}
			log.Err(err).Msg("session verification failed")
			utils.WriteError(w, app.MsgSomethingWentWrong, statusFromError(err))
			return
		}

		ctx = utils.WithSession(ctx, token.UserID, token.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the bearer token of the Authorization header or,
// when the header is empty, the value of the token cookie.
func tokenFromRequest(r *http.Request) (string, error) {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	if cookie, err := r.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoSessionToken
}
