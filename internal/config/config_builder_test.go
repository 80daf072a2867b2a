package config

import (
	"os"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source keeps its value
// and later sources only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Catalog: Catalog{Machine: "arm64"}},
		&StructuredConfig{Catalog: Catalog{Machine: "x86", MaxPages: 7}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "arm64", cfg.Catalog.Machine)
	assert.Equal(t, 7, cfg.Catalog.MaxPages)
}

// TestBuild_DefaultsFillGaps verifies that defaults never override a set value.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Catalog: Catalog{MaxPages: 3}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Catalog.MaxPages)
	assert.Equal(t, DefaultEndpoint, cfg.Adapter.Endpoint)
	assert.Equal(t, "amd64", cfg.Catalog.Machine)
	assert.Equal(t, DefaultMaxParallelProfiles, cfg.Workers.MaxParallelProfiles)
	assert.Equal(t, 60*time.Second, cfg.Adapter.RequestTimeout)
}

// TestBuild_ValidationFailure verifies that an invalid merged config is rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{name: "bad endpoint", cfg: &StructuredConfig{Adapter: Adapter{Endpoint: "not a url"}}, wantErr: ErrInvalidAdapterConfigs},
		{name: "unknown machine", cfg: &StructuredConfig{Catalog: Catalog{Machine: "mips"}}, wantErr: ErrInvalidCatalogConfigs},
		{name: "memory dsn", cfg: &StructuredConfig{Storage: Storage{DB: DB{DSN: "file::memory:"}}}, wantErr: ErrInvalidStorageConfigs},
		{name: "negative parallelism", cfg: &StructuredConfig{Workers: Workers{MaxParallelProfiles: -1}}, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_LoadsReferencedFile verifies that a path found in an earlier
// source is loaded and appended.
func TestWithJSON_LoadsReferencedFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"catalog": map[string]any{"language": "ja-jp"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "ja-jp", b.configs[1].Catalog.Language)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON path is recorded
// as a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	require.Error(t, b.err)
}

// TestWithJSON_NoPath verifies that nothing happens without a JSON path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestLoad_FlagsAndRest(t *testing.T) {
	setEnvVars(t, map[string]string{"CATALOG_LANGUAGE": "it-it"})

	cfg, rest, err := Load([]string{"-m", "arm64", "-lang", "pl-pl", "editions", "42"})
	require.NoError(t, err)

	assert.Equal(t, "arm64", cfg.Catalog.Machine)
	assert.Equal(t, "it-it", cfg.Catalog.Language)
	assert.Equal(t, DefaultMaxPages, cfg.Catalog.MaxPages)
	assert.Equal(t, []string{"editions", "42"}, rest)
}
