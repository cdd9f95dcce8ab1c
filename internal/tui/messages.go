package tui

import (
	"github.com/MKhiriev/go-user-auth/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
	pageUsers    = "users"
	pageDetail   = "detail"
)

// NavigateTo switches the active page of [RootModel]. When Payload is set
// it is delivered to the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login form once the server has answered.
type LoginResult struct {
	Err      error
	Username string
	Token    string
}

// RegisterResult is produced by the registration form once the server has answered.
type RegisterResult struct {
	Err  error
	Echo models.RegistrationEcho
}

// RegisterSuccessNotice is delivered to the menu after a successful registration.
type RegisterSuccessNotice struct {
	Username string
}

type logoutNotice struct{}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type identityLoadedMsg struct {
	identity models.Identity
	err      error
}

type userSelectedMsg struct {
	user models.User
}

type userLoadedMsg struct {
	user models.User
	err  error
}

type serverVersionMsg struct {
	info models.AppBuildInfo
	err  error
}

type showErrorMsg struct {
	message string
}
