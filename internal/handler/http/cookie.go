package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/fraud-shield/models"
)

const tokenCookieName = "token"

func setTokenCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.Expiry(),
		MaxAge:   int(token.ExpiresIn(time.Now()).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
