package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wu-catalog/internal/adapter"
	"github.com/MKhiriev/go-wu-catalog/internal/logger"
	"github.com/MKhiriev/go-wu-catalog/internal/mock"
	"github.com/MKhiriev/go-wu-catalog/models"
)

func newTestResolver(t *testing.T) (FileResolver, *mock.MockCatalogAdapter) {
	t.Helper()
	m := mock.NewMockCatalogAdapter(gomock.NewController(t))
	return NewResolver(m, logger.Nop()), m
}

func resolverRecord() *models.UpdateRecord {
	r := record(fixture{id: 7, guid: "guid-7", revision: "12", extraFiles: 1}, models.TargetingProfile{DeviceAttributes: "E:App=Test"})
	r.Xml.Files = append(r.Xml.Files, models.File{
		FileName:         "aliased.cab",
		Digest:           "PRIMARY",
		AdditionalDigest: &models.AdditionalDigest{Algorithm: "SHA256", Value: " SECONDARY "},
	})
	return &r
}

var testLocations = []adapter.FileLocation{
	{FileDigest: "payload-7-0", URL: "http://dl/payload0.esd?P1=1700000000"},
	{FileDigest: "PRIMARY", URL: "http://dl/aliased.cab", EsrpDecryptionInformation: `{"KeyData":"abc"}`},
}

func expectLocations(m *mock.MockCatalogAdapter) {
	m.EXPECT().GetExtendedUpdateInfo2(gomock.Any(), adapter.FileLocationsRequest{
		UpdateID:         "guid-7",
		RevisionNumber:   "12",
		DeviceAttributes: "E:App=Test",
	}).Return(testLocations, nil)
}

func TestResolver_GetFileURL(t *testing.T) {
	tests := []struct {
		name      string
		digest    string
		wantURL   string
		encrypted bool
	}{
		{name: "primary digest", digest: "payload-7-0", wantURL: "http://dl/payload0.esd?P1=1700000000"},
		{name: "additional digest alias", digest: "SECONDARY", wantURL: "http://dl/aliased.cab", encrypted: true},
		{name: "not listed", digest: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, m := newTestResolver(t)
			expectLocations(m)

			info, err := r.GetFileURL(testContext(), resolverRecord(), tt.digest)
			require.NoError(t, err)

			if tt.wantURL == "" {
				assert.Nil(t, info)
				return
			}
			require.NotNil(t, info)
			assert.Equal(t, tt.wantURL, info.URL)
			assert.Equal(t, tt.encrypted, info.Encrypted())
		})
	}
}

func TestResolver_GetFileURL_Errors(t *testing.T) {
	t.Run("missing identity", func(t *testing.T) {
		r, _ := newTestResolver(t)

		_, err := r.GetFileURL(testContext(), &models.UpdateRecord{ID: 1}, "x")
		assert.ErrorIs(t, err, ErrMissingIdentity)

		_, err = r.GetFileURL(testContext(), nil, "x")
		assert.ErrorIs(t, err, ErrMissingIdentity)
	})

	t.Run("transport failure", func(t *testing.T) {
		r, m := newTestResolver(t)
		m.EXPECT().GetExtendedUpdateInfo2(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrCircuitOpen)

		_, err := r.GetFileURL(testContext(), resolverRecord(), "x")
		assert.ErrorIs(t, err, adapter.ErrCircuitOpen)
	})
}

func TestResolver_GetFileURLs(t *testing.T) {
	r, m := newTestResolver(t)
	expectLocations(m)

	infos, err := r.GetFileURLs(testContext(), resolverRecord())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "payload-7-0", infos[0].Digest)
	assert.False(t, infos[0].Encrypted())
	assert.Equal(t, []byte(`{"KeyData":"abc"}`), infos[1].DecryptionInfo)
}

func TestResolver_GetExtendedInfo(t *testing.T) {
	r, m := newTestResolver(t)
	c := adapter.Cookie{EncryptedData: "session"}

	gomock.InOrder(
		m.EXPECT().GetCookie(gomock.Any()).Return(c, nil),
		m.EXPECT().GetExtendedUpdateInfo(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req adapter.ExtendedInfoRequest) (adapter.ExtendedInfoResult, error) {
				assert.Equal(t, c, req.Cookie)
				assert.Equal(t, []string{"7"}, req.RevisionIDs)
				assert.Equal(t, "E:App=Test", req.DeviceAttributes)
				return adapter.ExtendedInfoResult{RawBody: "ok"}, nil
			}),
	)

	res, err := r.GetExtendedInfo(testContext(), resolverRecord())
	require.NoError(t, err)
	assert.Equal(t, "ok", res.RawBody)
}

func TestResolver_GetExtendedInfo_CookieError(t *testing.T) {
	r, m := newTestResolver(t)
	boom := errors.New("boom")
	m.EXPECT().GetCookie(gomock.Any()).Return(adapter.Cookie{}, boom)

	_, err := r.GetExtendedInfo(testContext(), resolverRecord())
	assert.ErrorIs(t, err, boom)

	_, err = r.GetExtendedInfo(testContext(), nil)
	assert.ErrorIs(t, err, ErrMissingIdentity)
}
