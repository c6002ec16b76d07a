package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fraud-shield/internal/service"
)

// errorStatusMap holds the status every handler answers a service error
// with. Errors outside the map are 500. Login overrides ErrUserNotFound
// with 401.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrEmailAlreadyRegistered:  http.StatusConflict,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrNoToken:                 http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenRevoked:            http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
