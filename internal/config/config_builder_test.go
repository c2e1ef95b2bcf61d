package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

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

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result, earlier configs winning for set fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AgentSecret: "from-first"}},
		&StructuredConfig{
			App:  App{AgentSecret: "from-second", TokenSignKey: "sign-key"},
			Host: Host{Address: "localhost:39130"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field
	assert.Equal(t, "from-first", cfg.App.AgentSecret)
	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:39130", cfg.Host.Address)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPathSpecified verifies that withJSON is a no-op when no
// config on the builder carries a JSON path.
func TestWithJSON_NoPathSpecified(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that withJSON appends the parsed file
// config when a JSON path is present.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"agent_secret":   "json-secret",
			"usage_debounce": "45s",
		},
		"stores": map[string]any{
			"default": map[string]any{"id": "default", "name": "Personal", "path": "~/.password-store"},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	jsonCfg := b.configs[1]
	assert.Equal(t, "json-secret", jsonCfg.App.AgentSecret)
	assert.Equal(t, 45*time.Second, jsonCfg.App.UsageDebounce)
	require.Contains(t, jsonCfg.Stores, "default")
	assert.Equal(t, "Personal", jsonCfg.Stores["default"].Name)
}

// TestWithJSON_BadFile verifies that an unreadable JSON path surfaces as a
// builder error.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent.json"})

	b.withJSON()
	require.Error(t, b.err)
}
