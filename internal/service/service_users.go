package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}
	return users, nil
}

// GetUserByID returns store.ErrUserNotFound (wrapped) when no user matches.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("id", userID).Msg("user lookup by id failed")
		return models.User{}, fmt.Errorf("user lookup by id failed: %w", err)
	}
	return user, nil
}

// GetUserByUsername returns store.ErrUserNotFound (wrapped) when no user matches.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("username", username).Msg("user lookup by username failed")
		return models.User{}, fmt.Errorf("user lookup by username failed: %w", err)
	}
	return user, nil
}
