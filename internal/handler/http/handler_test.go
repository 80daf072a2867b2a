package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/mock"
	"github.com/MKhiriev/go-wu-catalog/internal/service"
	"github.com/MKhiriev/go-wu-catalog/models"
)

type testAPI struct {
	router    http.Handler
	catalog   *mock.MockCatalogService
	snapshots *mock.MockSnapshotService
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		catalog:   mock.NewMockCatalogService(ctrl),
		snapshots: mock.NewMockSnapshotService(ctrl),
	}
	h := NewHandler(&service.Services{
		CatalogService:  api.catalog,
		SnapshotService: api.snapshots,
	}, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
	api.router = h.Init()
	return api
}

func (a *testAPI) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func testRecord() *models.UpdateRecord {
	return &models.UpdateRecord{
		ID: 42,
		Xml: &models.UpdateDescriptor{
			UpdateIdentity: models.UpdateIdentity{UpdateID: "guid-42", RevisionNumber: "3"},
			ExtendedProperties: &models.ExtendedProperties{
				ContentType:  models.ContentTypeProductRelease,
				CreationDate: "2026-09-30T10:00:00Z",
			},
			LocalizedProperties: &models.LocalizedProperties{Title: "Windows 11 Insider Preview 27000.1"},
			Files: []models.File{
				{FileName: "build.cab", Digest: "meta==", Size: "10", PatchingType: "metadata"},
				{FileName: "payload.esd", Digest: "payload==", Size: "1000",
					AdditionalDigest: &models.AdditionalDigest{Algorithm: "SHA256", Value: "payload256=="}},
			},
		},
	}
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	info := models.NewAppBuildInfo("v", "d", "c")

	h := NewHandler(svc, info, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, info, h.buildInfo)
}

func TestGetServerVersion(t *testing.T) {
	api := newTestAPI(t)

	rec := api.get(t, "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	got := decode[models.VersionResponse](t, rec)
	assert.Equal(t, models.VersionResponse{Version: "1.2.3", Date: "2026-10-01", Commit: "abc123"}, got)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newTestAPI(t)

	rec := api.get(t, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestUnknownRouteAndWrongMethod(t *testing.T) {
	api := newTestAPI(t)

	rec := api.get(t, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/builds/42", nil)
			rec := httptest.NewRecorder()
			api.router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestBuildsWithoutSnapshotStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(&service.Services{CatalogService: mock.NewMockCatalogService(ctrl)},
		models.AppBuildInfo{}, logger.Nop())
	router := h.Init()

	for _, target := range []string{"/api/builds?machine=amd64", "/api/builds/1", "/api/builds/1/files"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing machine", ErrMissingMachine, http.StatusBadRequest},
		{"build not found wrapped", fmt.Errorf("get: %w", service.ErrBuildNotFound), http.StatusNotFound},
		{"unknown machine", service.ErrUnknownMachine, http.StatusBadRequest},
		{"snapshots unavailable", ErrSnapshotsUnavailable, http.StatusServiceUnavailable},
		{"unmapped", assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return v
}
