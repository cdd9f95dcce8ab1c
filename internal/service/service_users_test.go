package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())

	users := []models.User{{UserID: 1, Username: "alice"}, {UserID: 2, Username: "bob"}}
	mockRepo.EXPECT().ListUsers(gomock.Any()).Return(users, nil)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())

	mockRepo.EXPECT().ListUsers(gomock.Any()).Return(nil, errStorage)

	got, err := svc.ListUsers(context.Background())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, errStorage)
}

func TestUserService_GetUserByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())

	mockRepo.EXPECT().FindUserByID(gomock.Any(), int64(1)).Return(models.User{UserID: 1, Username: "alice"}, nil)
	mockRepo.EXPECT().FindUserByID(gomock.Any(), int64(99)).Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUserByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserService_GetUserByUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())

	mockRepo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{UserID: 1, Username: "alice"}, nil)
	mockRepo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	user, err := svc.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	_, err = svc.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
