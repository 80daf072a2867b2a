package http

import (
	"net/http"

	"github.com/MKhiriev/go-wu-catalog/internal/utils"
	"github.com/MKhiriev/go-wu-catalog/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.VersionResponse{
		Version: h.buildInfo.BuildVersion(),
		Date:    h.buildInfo.BuildDate(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
}
