package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"username taken", service.ErrUsernameTaken, http.StatusBadRequest},
		{"email taken", service.ErrEmailTaken, http.StatusBadRequest},
		{"late unique violation", fmt.Errorf("%w: %w", service.ErrRegistrationConflict, store.ErrUserAlreadyExists), http.StatusBadRequest},
		{"password too long", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, crypto.ErrPasswordTooLong), http.StatusBadRequest},
		{"invalid json", ErrInvalidJSON, http.StatusBadRequest},
		{"invalid id", ErrInvalidUserID, http.StatusBadRequest},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"not found", fmt.Errorf("lookup: %w", store.ErrUserNotFound), http.StatusNotFound},
		{"store unavailable", fmt.Errorf("lookup: %w", store.ErrStoreUnavailable), http.StatusServiceUnavailable},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestResponseFromError_ConflictMessageIsUniform(t *testing.T) {
	username := responseFromError(service.ErrUsernameTaken)
	email := responseFromError(service.ErrEmailTaken)

	assert.Equal(t, username, email)
	assert.Equal(t, "Username or email is already in use", username.message)
}
