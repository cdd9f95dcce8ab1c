// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-user-auth handlers and clients.
//
// Code* constants are the machine-readable "error" field of the JSON failure
// envelope; Msg* constants are the human-readable "message" field. Keeping
// them in one place keeps wording consistent between the HTTP entry point,
// the error mapper and the clients that match on them.
package app

// Envelope codes.
const (
	CodeRegistrationConflict = "registration_conflict"
	CodeInvalidRequest       = "invalid_request"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeUnauthorized         = "unauthorized"
	CodeNotFound             = "not_found"
	CodeServiceUnavailable   = "service_unavailable"
	CodeInternalError        = "internal_error"
)

const (
	// MsgRegistrationConflict is returned when either the username or the
	// email is taken. Which one is never disclosed.
	MsgRegistrationConflict = "Username or email is already in use"

	// MsgInvalidDataProvided is the fallback text for a request body that
	// fails validation.
	MsgInvalidDataProvided = "Invalid data provided"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidUserID is returned when a path id is not a number.
	MsgInvalidUserID = "User id must be numeric"

	// MsgInvalidCredentials is returned for unknown users and wrong
	// passwords alike.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgFullAuthenticationRequired is written by the entry point whenever
	// an anonymous caller reaches a protected route.
	MsgFullAuthenticationRequired = "Full authentication is required to access this resource"

	// MsgUserNotFound is returned when a lookup by id or username misses.
	MsgUserNotFound = "User not found"

	// MsgServiceUnavailable is returned when the user store cannot be
	// reached.
	MsgServiceUnavailable = "Service is temporarily unavailable"

	// MsgInternalServerError is returned for every unexpected failure.
	MsgInternalServerError = "Internal Server Error"

	// MsgNotFound is returned for unknown routes and unsupported methods.
	MsgNotFound = "Not Found"
)

// BearerRealm is advertised in the WWW-Authenticate challenge.
const BearerRealm = "go-user-auth"
