package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

func fillRegisterForm(m *RegisterModel, username, email, password, repeat, fullName string) {
	m.inputs[registerUsername].SetValue(username)
	m.inputs[registerEmail].SetValue(email)
	m.inputs[registerPassword].SetValue(password)
	m.inputs[registerRepeat].SetValue(repeat)
	m.inputs[registerFullName].SetValue(fullName)
}

func TestRegisterModel_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fill    func(m *RegisterModel)
		wantErr string
	}{
		{
			name:    "missing email",
			fill:    func(m *RegisterModel) { fillRegisterForm(m, "alice", "", "pw", "pw", "") },
			wantErr: "Username, email and password are required",
		},
		{
			name:    "passwords differ",
			fill:    func(m *RegisterModel) { fillRegisterForm(m, "alice", "alice@example.com", "pw", "pw2", "") },
			wantErr: "Passwords do not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(testCtx, newMockClient(t))
			tt.fill(m)

			_, cmd := m.Update(keyEnter)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.errMsg)
		})
	}
}

func TestRegisterModel_Success(t *testing.T) {
	req := models.RegistrationRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw",
		FullName: "Alice Liddell",
	}

	client := newMockClient(t)
	client.EXPECT().Register(testCtx, req).Return(req.Echo(), nil)

	m := NewRegisterModel(testCtx, client)
	fillRegisterForm(m, " alice ", "alice@example.com", "pw", "pw", "Alice Liddell")

	_, cmd := m.Update(keyEnter)
	require.True(t, m.submitting)

	_, cmd = m.Update(execCmd(t, cmd))
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "alice"}}, execCmd(t, cmd))
	assert.False(t, m.submitting)
	assert.Empty(t, m.inputs[registerUsername].Value())
}

func TestRegisterModel_Conflict(t *testing.T) {
	client := newMockClient(t)
	client.EXPECT().Register(testCtx, gomock.Any()).
		Return(models.RegistrationEcho{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "Username or email is already in use"))

	m := NewRegisterModel(testCtx, client)
	fillRegisterForm(m, "alice", "alice@example.com", "pw", "pw", "")

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(execCmd(t, cmd))

	assert.Nil(t, cmd)
	assert.Contains(t, m.errMsg, "already in use")
	assert.Equal(t, "alice", m.inputs[registerUsername].Value())
}

func TestMenuModel_RegisterNotice(t *testing.T) {
	m := NewMenuModel()

	m.Update(RegisterSuccessNotice{Username: "alice"})
	assert.Contains(t, m.View(), "User alice registered")

	m.Update(runeKey('j'))
	_, cmd := m.Update(keyEnter)
	assert.Equal(t, NavigateTo{Page: pageRegister}, execCmd(t, cmd))
	assert.Empty(t, m.status)
}
