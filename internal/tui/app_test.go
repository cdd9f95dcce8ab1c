package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/models"
)

func newTestTUI(t *testing.T) (*TUI, *mock.MockAuthClient) {
	t.Helper()
	client := newMockClient(t)
	ui, err := New(client, models.NewAppBuildInfo("v0.1.0", "", ""), logger.Nop())
	require.NoError(t, err)
	return ui, client
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestNew_NilClient(t *testing.T) {
	_, err := New(nil, models.AppBuildInfo{}, nil)
	assert.Error(t, err)
}

func TestRootModel_StartPage(t *testing.T) {
	t.Run("anonymous client opens the menu", func(t *testing.T) {
		ui, client := newTestTUI(t)
		client.EXPECT().Token().Return("")

		r := ui.newRoot(testCtx)
		assert.IsType(t, &MenuModel{}, r.current)
	})

	t.Run("client with a token opens the users page", func(t *testing.T) {
		ui, client := newTestTUI(t)
		client.EXPECT().Token().Return("token-1")

		r := ui.newRoot(testCtx)
		assert.IsType(t, &UsersModel{}, r.current)
	})
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	r := ui.newRoot(testCtx)

	r, cmd := update(t, r, NavigateTo{Page: pageRegister})
	assert.IsType(t, &RegisterModel{}, r.current)
	assert.NotNil(t, cmd)

	r, cmd = update(t, r, NavigateTo{Page: pageMenu, Payload: RegisterSuccessNotice{Username: "bob"}})
	assert.IsType(t, &MenuModel{}, r.current)

	r, _ = update(t, r, execCmd(t, cmd))
	assert.Contains(t, r.View(), "User bob registered")

	r, cmd = update(t, r, NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.IsType(t, &MenuModel{}, r.current)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	client.EXPECT().Version(testCtx).Return(models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"), nil)
	r := ui.newRoot(testCtx)

	r, cmd := update(t, r, runeKey('v'))
	require.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "loading...")

	r, _ = update(t, r, execCmd(t, cmd))
	view := r.View()
	assert.Contains(t, view, "v0.1.0")
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	r, _ = update(t, r, keyEnter)
	assert.True(t, r.showBuildInfo)

	r, _ = update(t, r, keyEsc)
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_BuildInfoServerDown(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	client.EXPECT().Version(testCtx).Return(models.AppBuildInfo{}, errors.New("dial tcp: connection refused"))
	r := ui.newRoot(testCtx)

	r, cmd := update(t, r, runeKey('v'))
	r, _ = update(t, r, execCmd(t, cmd))

	assert.Contains(t, r.View(), "unavailable: Network is down or the server is unavailable")
}

func TestRootModel_ErrorOverlay(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	r := ui.newRoot(testCtx)

	r, _ = update(t, r, showErrorMsg{message: "Service is temporarily unavailable"})
	assert.Contains(t, r.View(), "Service is temporarily unavailable")

	// Keys other than enter/esc are swallowed by the overlay.
	r, cmd := update(t, r, runeKey('q'))
	assert.Nil(t, cmd)
	assert.True(t, r.showOverlay)

	r, _ = update(t, r, keyEnter)
	assert.False(t, r.showOverlay)
	assert.Contains(t, r.View(), "MAIN MENU")
}

func TestRootModel_Quit(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	r := ui.newRoot(testCtx)

	_, cmd := update(t, r, runeKey('q'))
	assert.IsType(t, tea.QuitMsg{}, execCmd(t, cmd))

	_, cmd = update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.IsType(t, tea.QuitMsg{}, execCmd(t, cmd))
}

func TestRootModel_QuitKeyIsTypedInForms(t *testing.T) {
	ui, client := newTestTUI(t)
	client.EXPECT().Token().Return("")
	r := ui.newRoot(testCtx)

	r, _ = update(t, r, NavigateTo{Page: pageLogin})
	r, _ = update(t, r, runeKey('q'))

	login, ok := r.current.(*LoginModel)
	require.True(t, ok)
	assert.Equal(t, "q", login.inputs[0].Value())
}
