// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidTokenParams is returned by GenerateJWTToken when a
	// required parameter is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT token")
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
	// header does not carry a bearer credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

// bearerScheme is the Authorization scheme carrying a token.
const bearerScheme = "Bearer"

// JWTParams describes a token to be issued.
type JWTParams struct {
	// Issuer is the optional "iss" claim.
	Issuer string
	// Subject is the username the token is issued for. Required.
	Subject string
	// ID is the optional "jti" claim.
	ID string
	// IssuedAt is the issuance instant. Required.
	IssuedAt time.Time
	// Lifetime is added to IssuedAt to form "exp". Must be positive.
	Lifetime time.Duration
	// SignKey is the HMAC-SHA256 secret. Required.
	SignKey []byte
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Subject   (sub): the username
//   - IssuedAt  (iat): params.IssuedAt
//   - ExpiresAt (exp): params.IssuedAt plus params.Lifetime, rounded up to
//     the next whole second
//   - Issuer    (iss) and ID (jti) when set
//
// Returns [ErrInvalidTokenParams] if a required parameter is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.JWTParams{
//	    Subject:  "alice",
//	    IssuedAt: time.Now(),
//	    Lifetime: time.Hour,
//	    SignKey:  key,
//	})
func GenerateJWTToken(params JWTParams) (models.Token, error) {
	if params.Subject == "" || params.Lifetime <= 0 || len(params.SignKey) == 0 || params.IssuedAt.IsZero() {
		return models.Token{}, ErrInvalidTokenParams
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.Subject,
		ID:        params.ID,
		IssuedAt:  jwt.NewNumericDate(params.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt(params.IssuedAt, params.Lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(params.SignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      claims.Subject,
		IssuedAt:     claims.IssuedAt.Time,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// expiresAt rounds issuedAt+lifetime up to a whole second. NumericDate
// truncates, which would end the token up to a second early.
func expiresAt(issuedAt time.Time, lifetime time.Duration) time.Time {
	exp := issuedAt.Add(lifetime)
	if truncated := exp.Truncate(time.Second); !truncated.Equal(exp) {
		return truncated.Add(time.Second)
	}
	return exp
}

// ValidateJWTToken checks a compact token and reports the outcome as a
// tagged value. It never returns an error and never panics on
// attacker-controlled input.
//
// Checks performed:
//   - the algorithm is HS256 (anything else, "none" included, is unsupported)
//   - the signature matches signKey
//   - exp is present and in the future relative to now
//   - iat is not in the future
//   - iss equals issuer when issuer is non-empty
//   - sub is present
func ValidateJWTToken(tokenString string, signKey []byte, issuer string, now func() time.Time) models.TokenValidation {
	if strings.TrimSpace(tokenString) == "" {
		return models.InvalidToken(models.ReasonEmpty)
	}
	if now == nil {
		now = time.Now
	}

	options := []jwt.ParserOption{
		jwt.WithTimeFunc(now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithStrictDecoding(),
	}
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return signKey, nil
	}, options...)
	if err != nil {
		return models.InvalidToken(invalidReason(err))
	}

	if claims.Subject == "" {
		return models.InvalidToken(models.ReasonInvalidClaims)
	}

	return models.ValidToken(claims.Subject)
}

// invalidReason maps jwt parse errors onto validation reasons.
// Order matters: an expired token also matches ErrTokenInvalidClaims.
func invalidReason(err error) models.TokenInvalidReason {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return models.ReasonMalformed
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return models.ReasonUnsupported
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return models.ReasonSignatureMismatch
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.ReasonExpired
	default:
		return models.ReasonInvalidClaims
	}
}

// ParseBearerToken extracts the token from an Authorization header value
// of the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}

// SubjectFromJWT reads the "sub" claim without verifying the signature.
// Callers must only pass tokens that already passed ValidateJWTToken.
func SubjectFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject")
	}

	return sub, nil
}
