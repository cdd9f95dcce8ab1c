// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() models.RegistrationRequest {
	return models.RegistrationRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
		FullName: "Alice Liddell",
	}
}

func TestUserRequestValidator_Registration(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(r *models.RegistrationRequest)
		wantErr    bool
		wantFields []string
	}{
		{name: "valid", mutate: func(*models.RegistrationRequest) {}},
		{name: "full name optional", mutate: func(r *models.RegistrationRequest) { r.FullName = "" }},
		{name: "missing username", mutate: func(r *models.RegistrationRequest) { r.Username = "" }, wantErr: true, wantFields: []string{"username is required"}},
		{name: "bad email", mutate: func(r *models.RegistrationRequest) { r.Email = "not-an-email" }, wantErr: true, wantFields: []string{"email must be a valid email address"}},
		{name: "long password", mutate: func(r *models.RegistrationRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: true, wantFields: []string{"password must be at most 72 characters"}},
		{
			name: "several fields",
			mutate: func(r *models.RegistrationRequest) {
				r.Username = ""
				r.Password = ""
			},
			wantErr:    true,
			wantFields: []string{"username is required", "password is required"},
		},
	}

	v := NewUserRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegistration()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			for _, field := range tt.wantFields {
				assert.Contains(t, err.Error(), field)
			}
		})
	}
}

func TestUserRequestValidator_ErrorDoesNotEchoPassword(t *testing.T) {
	req := validRegistration()
	req.Password = strings.Repeat("secret", 20)

	err := NewUserRequestValidator().Validate(context.Background(), &req)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secretsecret")
}

func TestUserRequestValidator_Credentials(t *testing.T) {
	v := NewUserRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Credentials{Username: "alice", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(context.Background(), &models.Credentials{Username: "alice"}), ErrInvalidRequest)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Credentials)(nil)), ErrInvalidRequest)
}

func TestUserRequestValidator_PartialFields(t *testing.T) {
	v := NewUserRequestValidator()
	req := validRegistration()
	req.Email = "broken"

	assert.NoError(t, v.Validate(context.Background(), req, "username", "password"))
	assert.ErrorIs(t, v.Validate(context.Background(), req, "email"), ErrInvalidRequest)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "nickname"), ErrUnknownField)
}

func TestUserRequestValidator_UnsupportedType(t *testing.T) {
	err := NewUserRequestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
