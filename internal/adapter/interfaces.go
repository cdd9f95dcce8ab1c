// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the go-user-auth HTTP API.
//
// The primary abstraction is [AuthClient], which hides the REST routes,
// the JSON envelopes and the bearer token handling from callers.
// [NewHTTPAuthClient] returns the resty-backed implementation.
//
// Error envelopes returned by the server are mapped by mapHTTPError onto
// the sentinel values in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthClient talks to a running go-user-auth server.
type AuthClient interface {
	// SetToken stores the bearer token attached to every subsequent
	// request. An empty token makes requests anonymous again.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates an account and returns the server's echo of the
	// submitted profile. No token is issued on registration.
	Register(ctx context.Context, req models.RegistrationRequest) (models.RegistrationEcho, error)

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Me returns the identity bound to the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// ListUsers returns every registered user.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUserByUsername returns a single user by login name.
	GetUserByUsername(ctx context.Context, username string) (models.User, error)

	// GetUserByID returns a single user by numeric identifier.
	GetUserByID(ctx context.Context, userID int64) (models.User, error)

	// Health reports whether the server and its store are reachable.
	Health(ctx context.Context) error

	// Version returns the server build information.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
