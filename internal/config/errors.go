package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates unusable token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address was configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// Signing key and lifetime errors, wrapped by ErrInvalidAppConfigs.
var (
	ErrEmptyTokenSignKey     = errors.New("token sign key is empty")
	ErrMalformedTokenSignKey = errors.New("token sign key is not valid base64url")
	ErrShortTokenSignKey     = errors.New("token sign key must decode to at least 32 bytes")
	ErrNoTokenLifetime       = errors.New("token lifetime must be at least one second")
)
