package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-work-tracker/internal/service"
	"github.com/MKhiriev/go-work-tracker/internal/store"
	"github.com/MKhiriev/go-work-tracker/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidEmail:            http.StatusBadRequest,
	service.ErrPasswordTooShort:        http.StatusBadRequest,
	service.ErrInvalidDate:             http.StatusBadRequest,
	service.ErrInvalidHours:            http.StatusBadRequest,
	service.ErrDateRequired:            http.StatusBadRequest,
	service.ErrHoursRequired:           http.StatusBadRequest,
	service.ErrDescriptionRequired:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for err. Mapped sentinel errors
// surface their own message; anything unmapped is reported as a plain 500
// so that internal wrapping chains never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			utils.WriteJSONError(w, target.Error(), status)
			return
		}
	}
	utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
