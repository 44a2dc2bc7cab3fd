package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-gate-keeper/internal/secret"
	"github.com/MKhiriev/go-gate-keeper/internal/service"
	"github.com/MKhiriev/go-gate-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrNotAuthenticated:    http.StatusUnauthorized,
	secret.ErrMalformedBearerKey:   http.StatusBadRequest,
	store.ErrLoginAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrTokenNotFound:         http.StatusNotFound,
	store.ErrUserNotPending:        http.StatusConflict,
}

// statusFromError maps known service and store errors onto HTTP status
// codes. Unknown errors are internal.
func statusFromError(err error) int {
	for knownError, status := range errorStatusMap {
		if errors.Is(err, knownError) {
			return status
		}
	}

	return http.StatusInternalServerError
}
