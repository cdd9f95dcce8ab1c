package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// tokenService is the HS256 implementation of [TokenService].
// All fields are read-only after construction.
type tokenService struct {
	// signKey is the decoded HMAC secret. Never logged.
	signKey []byte

	// issuer is the optional "iss" claim; when set, foreign issuers are
	// rejected on validation.
	issuer string

	// lifetime is added to the issuance instant to form "exp".
	lifetime time.Duration

	now    func() time.Time
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from cfg. It fails when the
// signing key is unusable or the lifetime is shorter than
// [config.MinTokenLifetime].
func NewTokenService(cfg config.App, logger *logger.Logger) (TokenService, error) {
	signKey, err := cfg.SigningKey()
	if err != nil {
		return nil, err
	}

	lifetime := cfg.TokenLifetime()
	if lifetime < config.MinTokenLifetime {
		return nil, config.ErrNoTokenLifetime
	}

	return &tokenService{
		signKey:  signKey,
		issuer:   cfg.TokenIssuer,
		lifetime: lifetime,
		now:      time.Now,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

// Issue implements [TokenService].
func (s *tokenService) Issue(ctx context.Context, identity models.Identity) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.JWTParams{
		Issuer:   s.issuer,
		Subject:  identity.Username,
		ID:       s.ids.Generate(),
		IssuedAt: s.now(),
		Lifetime: s.lifetime,
		SignKey:  s.signKey,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate implements [TokenService].
func (s *tokenService) Validate(ctx context.Context, tokenString string) models.TokenValidation {
	return utils.ValidateJWTToken(tokenString, s.signKey, s.issuer, s.now)
}

// ExtractSubject implements [TokenService].
func (s *tokenService) ExtractSubject(ctx context.Context, tokenString string) (string, error) {
	return utils.SubjectFromJWT(tokenString)
}
