package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"agent_secret":          "file-secret",
			"pairing_key":           "file-pairing",
			"token_sign_key":        "file-sign",
			"token_issuer":          "file-issuer",
			"token_duration":        "8h",
			"default_username":      "bob",
			"enable_otp":            true,
			"auto_submit":           false,
			"usage_debounce":        "30s",
			"clipboard_clear_delay": "45s",
		},
		"host":   map[string]any{"address": "localhost:39130", "request_timeout": "30s"},
		"bridge": map[string]any{"address": "localhost:39131", "inject_timeout": "500ms"},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "/tmp/agent.db"},
		},
		"server":  map[string]any{"http_address": "127.0.0.1:39127", "request_timeout": "1m"},
		"workers": map[string]any{"badge_refresh_interval": "90s"},
		"stores": map[string]any{
			"work": map[string]any{
				"id":       "work",
				"name":     "Work",
				"path":     "/home/bob/.password-store-work",
				"settings": map[string]any{"enableOTP": true, "username": "bob@corp"},
			},
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.App.AgentSecret)
	assert.Equal(t, "file-pairing", cfg.App.PairingKey)
	assert.Equal(t, "file-sign", cfg.App.TokenSignKey)
	assert.Equal(t, "file-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 8*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "bob", cfg.App.DefaultUsername)
	assert.True(t, cfg.App.EnableOTP)
	assert.False(t, cfg.App.AutoSubmit)
	assert.Equal(t, 30*time.Second, cfg.App.UsageDebounce)
	assert.Equal(t, 45*time.Second, cfg.App.ClipboardClearDelay)

	assert.Equal(t, "localhost:39130", cfg.Host.Address)
	assert.Equal(t, 30*time.Second, cfg.Host.RequestTimeout)
	assert.Equal(t, "localhost:39131", cfg.Bridge.Address)
	assert.Equal(t, 500*time.Millisecond, cfg.Bridge.InjectTimeout)
	assert.Equal(t, "/tmp/agent.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:39127", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 90*time.Second, cfg.Workers.BadgeRefreshInterval)

	require.Contains(t, cfg.Stores, "work")
	work := cfg.Stores["work"]
	assert.Equal(t, "Work", work.Name)
	require.NotNil(t, work.Settings.EnableOTP)
	assert.True(t, *work.Settings.EnableOTP)
	require.NotNil(t, work.Settings.Username)
	assert.Equal(t, "bob@corp", *work.Settings.Username)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/definitely/not/there.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	f := t.TempDir() + "/bad.json"
	require.NoError(t, os.WriteFile(f, []byte("{not json"), 0o600))

	_, err := parseJSON(f)
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON covers the string, numeric, and invalid forms.
func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, Duration(90*time.Minute), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, d.UnmarshalJSON([]byte(`"week"`)))
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := Duration(30 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"30s"`, string(out))
}
