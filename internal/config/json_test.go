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

func TestParseJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key":      testSignKey,
			"token_issuer":        "issuer",
			"token_duration":      "90m",
			"token_expiration_ms": 1000,
			"bcrypt_cost":         11,
			"log_level":           "error",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://db/users"},
		},
		"server": map[string]any{
			"http_address":     "0.0.0.0:8080",
			"grpc_address":     "0.0.0.0:9090",
			"request_timeout":  "5s",
			"shutdown_timeout": 3000000000,
		},
		"security": map[string]any{
			"permit_all":       true,
			"protected_routes": []string{"/user"},
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, testSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, int64(1000), cfg.App.TokenExpirationMs)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "postgres://db/users", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Security.PermitAll)
	assert.Equal(t, []string{"/user"}, cfg.Security.ProtectedRoutes)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		_, err := parseJSON(path)
		assert.Error(t, err)
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTempJSONConfig(t, map[string]any{
			"app": map[string]any{"token_duration": "soon"},
		})
		_, err := parseJSON(path)
		assert.Error(t, err)
	})
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))

	out, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(out))
}
