package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	UserService    UserService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating token service: %w", err)
	}

	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)
	validator := validators.NewUserRequestValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokenService, validator, logger),
		TokenService:   tokenService,
		UserService:    NewUserService(storages.UserRepository, logger),
		HealthService:  NewHealthService(storages.HealthChecker, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
