// Package config loads the go-user-auth server configuration.
//
// Sources are applied in order, later non-zero fields winning:
//  1. Environment variables (APP_*, STORAGE_*, SERVER_*, SECURITY_*, CONFIG)
//  2. Command-line flags
//  3. JSON file named by CONFIG or -c/-config
//
// The merged result is validated before [GetStructuredConfig] returns it:
// the token signing key must decode to at least 32 bytes, the token lifetime
// must be at least one second, a database DSN is required and at least one listen
// address must be set.
package config
