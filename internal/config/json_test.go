package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"pepper": "json-pepper",
			"max_tries": 5,
			"relevance_window": "2m",
			"ban_duration": "30m",
			"autologin_enabled": true,
			"autologin_ttl": "168h"
		},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/gk"}},
		"session": {"cookie_name": "sid", "ttl": "1h"},
		"server": {"http_address": "localhost:9090", "request_timeout": "30s"},
		"workers": {"sweep_interval": "10m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-pepper", cfg.App.Pepper)
	assert.Equal(t, 5, cfg.App.MaxTries)
	assert.Equal(t, 2*time.Minute, cfg.App.RelevanceWindow)
	assert.Equal(t, 30*time.Minute, cfg.App.BanDuration)
	assert.Equal(t, 168*time.Hour, cfg.App.AutologinTTL)
	assert.Equal(t, "postgres://localhost/gk", cfg.Storage.DB.DSN)
	assert.Equal(t, "sid", cfg.Session.CookieName)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "localhost:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// durations may also be given as nanosecond numbers
	path := writeTempJSON(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalInvalid(t *testing.T) {
	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
