package config

import (
	"encoding/json"
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
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestParseJSON_FullConfig verifies that all sections of a JSON config file
// map onto StructuredConfig.
func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "json-issuer",
			"token_duration": "48h",
			"bcrypt_cost": 12,
			"refresh_role": true
		},
		"storage": {"db": {"driver": "postgres", "dsn": "postgres://localhost/notes"}},
		"server": {
			"http_address": ":7070",
			"grpc_address": ":7071",
			"request_timeout": "15s",
			"cors_allowed_origins": ["http://localhost:5173"]
		},
		"app": {"version": "1.2.3"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 48*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Auth.RefreshRole)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "1.2.3", cfg.App.Version)
}

// TestParseJSON_MissingFile verifies that a nonexistent path is reported.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

// TestParseJSON_MalformedJSON verifies that invalid JSON is reported.
func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"auth": `)
	_, err := parseJSON(path)
	assert.Error(t, err)
}

// TestDuration_UnmarshalJSON covers the supported duration encodings.
func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"ninety seconds"`), &d))
}

// TestDuration_MarshalJSON verifies the string round-trip.
func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
