package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/utils"
	"github.com/MKhiriev/go-wu-catalog/models"
)

// requireSnapshots rejects build requests when the server runs without a
// snapshot store.
func (h *Handler) requireSnapshots(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.services == nil || h.services.SnapshotService == nil {
			utils.WriteError(w, ErrSnapshotsUnavailable.Error(), statusFromError(ErrSnapshotsUnavailable))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) listBuilds(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	raw := strings.TrimSpace(r.URL.Query().Get("machine"))
	if raw == "" {
		utils.WriteError(w, ErrMissingMachine.Error(), statusFromError(ErrMissingMachine))
		return
	}
	machine, ok := models.ParseMachineType(raw)
	if !ok {
		utils.WriteError(w, "unknown machine type: "+raw, http.StatusBadRequest)
		return
	}

	builds, err := h.services.SnapshotService.ListBuilds(r.Context(), machine)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBuilds").Str("machine", raw).Msg("error listing builds")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.BuildsResponse{
		Machine: machine.String(),
		Builds:  builds,
		Length:  len(builds),
	}, http.StatusOK)
}

// loadRecord reassembles the stored build named by the {id} path segment.
// It writes the error response itself and reports false on failure.
func (h *Handler) loadRecord(w http.ResponseWriter, r *http.Request, caller string) (*models.UpdateRecord, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id == 0 {
		utils.WriteError(w, ErrInvalidBuildID.Error(), statusFromError(ErrInvalidBuildID))
		return nil, false
	}

	record, err := h.services.SnapshotService.GetRecord(r.Context(), id)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", caller).Uint64("update_id", id).Msg("error loading build")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return nil, false
	}
	return record, true
}

func (h *Handler) getBuild(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadRecord(w, r, "*Handler.getBuild")
	if !ok {
		return
	}

	utils.WriteJSON(w, models.NewBuildResponse(record), http.StatusOK)
}

func (h *Handler) getBuildFiles(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadRecord(w, r, "*Handler.getBuildFiles")
	if !ok {
		return
	}

	infos, err := h.services.CatalogService.GetFileURLs(r.Context(), record)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBuildFiles").Uint64("update_id", record.ID).Msg("error resolving file urls")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	links := make([]models.FileLink, 0, len(infos))
	for _, info := range infos {
		var file *models.File
		if f, found := record.Xml.FileByDigest(info.Digest); found {
			file = &f
		}
		links = append(links, models.NewFileLink(info, file))
	}

	utils.WriteJSON(w, models.FilesResponse{
		UpdateID: record.ID,
		Files:    links,
		Length:   len(links),
	}, http.StatusOK)
}

func (h *Handler) getBuildLanguages(w http.ResponseWriter, r *http.Request) {
	record, ok := h.loadRecord(w, r, "*Handler.getBuildLanguages")
	if !ok {
		return
	}

	langs, err := h.services.CatalogService.GetAvailableBuildLanguages(r.Context(), record)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBuildLanguages").Uint64("update_id", record.ID).Msg("error listing languages")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}
	if langs == nil {
		langs = []string{}
	}

	utils.WriteJSON(w, models.LanguagesResponse{UpdateID: record.ID, Languages: langs}, http.StatusOK)
}

func (h *Handler) getBuildEditions(w http.ResponseWriter, r *http.Request) {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		utils.WriteError(w, ErrMissingLanguage.Error(), statusFromError(ErrMissingLanguage))
		return
	}

	record, ok := h.loadRecord(w, r, "*Handler.getBuildEditions")
	if !ok {
		return
	}

	editions, err := h.services.CatalogService.GetAvailableEditions(r.Context(), record, lang)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBuildEditions").Uint64("update_id", record.ID).Msg("error listing editions")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}
	if editions == nil {
		editions = []string{}
	}

	utils.WriteJSON(w, models.EditionsResponse{UpdateID: record.ID, Language: lang, Editions: editions}, http.StatusOK)
}
