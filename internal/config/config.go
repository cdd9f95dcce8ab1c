// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"
)

// minTokenSignKeyLength is the minimal decoded length, in bytes, of the
// HMAC-SHA256 signing key.
const minTokenSignKeyLength = 32

// MinTokenLifetime is the shortest accepted token lifetime. The exp claim
// has whole-second precision.
const MinTokenLifetime = time.Second

// defaultProtectedRoutes lists the routes that require an authenticated
// caller when no explicit policy is configured.
var defaultProtectedRoutes = []string{"/user"}

// StructuredConfig is the top-level configuration container for the
// go-user-auth service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the user store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Security holds the route protection policy.
	Security Security `envPrefix:"SECURITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance, password hashing and logging.
type App struct {
	// TokenSignKey is the base64url-encoded secret used to sign and verify
	// tokens with HMAC-SHA256. It must decode to at least 32 bytes.
	// Never logged: excluded from JSON.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY" json:"-"`

	// TokenIssuer is the optional "iss" claim embedded in every token.
	// When set, tokens carrying a different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after
	// issuance (e.g. "1h", "30m"). Takes precedence over TokenExpirationMs.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenExpirationMs is the token lifetime in milliseconds.
	// Env: APP_TOKEN_EXPIRATION_MS
	TokenExpirationMs int64 `env:"TOKEN_EXPIRATION_MS"`

	// BcryptCost is the password hashing work factor. Zero selects the
	// library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// LogLevel narrows the process log level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend and connection parameters:
	//   - "postgres://..." or "postgresql://..." opens PostgreSQL via pgx;
	//   - "sqlite://<path>", "file:<path>" or ":memory:" opens SQLite.
	// Excluded from JSON because it may carry credentials.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"-"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Security describes which routes require an authenticated caller.
type Security struct {
	// PermitAll disables enforcement entirely: every route accepts
	// anonymous callers. Tokens are still validated and identities attached.
	// Env: SECURITY_PERMIT_ALL
	PermitAll bool `env:"PERMIT_ALL"`

	// ProtectedRoutes lists chi route patterns (e.g. "/user", "/id/{id}")
	// that reject anonymous callers. Defaults to "/user".
	// Env: SECURITY_PROTECTED_ROUTES (comma separated)
	ProtectedRoutes []string `env:"PROTECTED_ROUTES" envSeparator:","`
}

// SigningKey decodes TokenSignKey into raw HMAC key bytes.
//
// Both padded and unpadded base64url input is accepted. Returns
// [ErrEmptyTokenSignKey], [ErrMalformedTokenSignKey] or
// [ErrShortTokenSignKey] when the key is unusable.
func (a App) SigningKey() ([]byte, error) {
	if a.TokenSignKey == "" {
		return nil, ErrEmptyTokenSignKey
	}

	key, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(a.TokenSignKey, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTokenSignKey, err)
	}

	if len(key) < minTokenSignKeyLength {
		return nil, ErrShortTokenSignKey
	}

	return key, nil
}

// TokenLifetime returns the effective token lifetime: TokenDuration when
// set, otherwise TokenExpirationMs converted to a duration.
func (a App) TokenLifetime() time.Duration {
	if a.TokenDuration > 0 {
		return a.TokenDuration
	}
	return time.Duration(a.TokenExpirationMs) * time.Millisecond
}

// IsProtected reports whether the route pattern rejects anonymous callers
// under this policy.
func (s Security) IsProtected(pattern string) bool {
	if s.PermitAll {
		return false
	}

	routes := s.ProtectedRoutes
	if len(routes) == 0 {
		routes = defaultProtectedRoutes
	}

	for _, route := range routes {
		if strings.TrimSpace(route) == pattern {
			return true
		}
	}
	return false
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
