// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", testSignKey)
	t.Setenv("APP_TOKEN_ISSUER", "go-user-auth")
	t.Setenv("APP_TOKEN_EXPIRATION_MS", "86400000")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/users")
	t.Setenv("SERVER_ADDRESS", "localhost:8080")
	t.Setenv("SERVER_GRPC_ADDRESS", "localhost:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "10s")
	t.Setenv("SECURITY_PERMIT_ALL", "true")
	t.Setenv("SECURITY_PROTECTED_ROUTES", "/user,/id/{id}")

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, testSignKey, cfg.App.TokenSignKey)
	assert.Equal(t, "go-user-auth", cfg.App.TokenIssuer)
	assert.Equal(t, int64(86400000), cfg.App.TokenExpirationMs)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres://localhost/users", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Security.PermitAll)
	assert.Equal(t, []string{"/user", "/id/{id}"}, cfg.Security.ProtectedRoutes)
}

func TestParseEnv_InvalidValue(t *testing.T) {
	_, err := parseEnvWithOptions(env.Options{Environment: map[string]string{"APP_BCRYPT_COST": "twelve"}})
	assert.Error(t, err)
}

func TestParseEnv_IgnoresUnrelatedVariables(t *testing.T) {
	cfg, err := parseEnvWithOptions(env.Options{Environment: map[string]string{
		"TOKEN_SIGN_KEY": "ignored without prefix",
		"SERVER_ADDRESS": ":8080",
	}})
	require.NoError(t, err)

	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}
