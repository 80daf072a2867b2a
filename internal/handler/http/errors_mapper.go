package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMissingMachine:       http.StatusBadRequest,
	ErrInvalidBuildID:       http.StatusBadRequest,
	ErrMissingLanguage:      http.StatusBadRequest,
	ErrSnapshotsUnavailable: http.StatusServiceUnavailable,

	service.ErrUnknownMachine:    http.StatusBadRequest,
	service.ErrBuildNotFound:     http.StatusNotFound,
	service.ErrMissingIdentity:   http.StatusUnprocessableEntity,
	service.ErrMalformedXML:      http.StatusUnprocessableEntity,
	service.ErrMissingUpdateInfo: http.StatusUnprocessableEntity,

	adapter.ErrCircuitOpen:       http.StatusServiceUnavailable,
	adapter.ErrTicketExpired:     http.StatusBadGateway,
	adapter.ErrUnauthorized:      http.StatusBadGateway,
	adapter.ErrUnexpectedStatus:  http.StatusBadGateway,
	adapter.ErrMalformedResponse: http.StatusBadGateway,

	store.ErrBuildNotFound:        http.StatusNotFound,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
