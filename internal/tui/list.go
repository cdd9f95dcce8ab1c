package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

// UsersModel lists every registered user on behalf of the signed-in
// identity. A 401 from the server drops the stored token and returns to
// the login form.
type UsersModel struct {
	ctx    context.Context
	client adapter.AuthClient

	users    []models.User
	identity *models.Identity
	idx      int
	loading  bool
	spinner  spinner.Model
	lastErr  error
}

func NewUsersModel(ctx context.Context, client adapter.AuthClient) *UsersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &UsersModel{ctx: ctx, client: client, spinner: s}
}

// Init reloads the identity and the user list every time the page opens.
func (m *UsersModel) Init() tea.Cmd {
	m.loading = true
	m.lastErr = nil
	return tea.Batch(m.spinner.Tick, m.cmdLoadIdentity(), m.cmdLoadUsers())
}

func (m *UsersModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m *UsersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.handleErr(msg.err)
		}
		m.users = msg.users
		m.idx = min(m.idx, max(len(m.users)-1, 0))
		return m, nil

	case identityLoadedMsg:
		if msg.err != nil {
			return m, m.handleErr(msg.err)
		}
		identity := msg.identity
		m.identity = &identity
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.users)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.logout):
			m.logout()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: logoutNotice{}} }
		case key.Matches(msg, keys.enter):
			user, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg { return NavigateTo{Page: pageDetail, Payload: userSelectedMsg{user: user}} }
		}
	}

	return m, nil
}

func (m *UsersModel) View() string {
	var b strings.Builder

	if m.identity != nil {
		b.WriteString(fmt.Sprintf("Signed in as %s (id %d, %s)\n\n",
			m.identity.Username, m.identity.UserID, strings.Join(m.identity.Authorities, ", ")))
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case m.lastErr != nil:
		b.WriteString("Error: ")
		b.WriteString(humanizeError(m.lastErr))
		b.WriteString("\n")
	case len(m.users) == 0:
		b.WriteString("No users\n")
	default:
		b.WriteString(fmt.Sprintf("  %-6s │ %-20s │ %s\n", "ID", "Username", "Email"))
		b.WriteString("─────────┼──────────────────────┼───────────────────────\n")
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-6d │ %-20s │ %s\n", cursor, user.UserID, fitText(user.Username, 20), fitText(user.Email, 30)))
		}
	}

	return renderPage("USERS", strings.TrimRight(b.String(), "\n"), "enter: open │ r: refresh │ l: log out │ q: quit")
}

// handleErr sends the user back to the login form when the session is no
// longer accepted and shows every other failure in the error overlay.
func (m *UsersModel) handleErr(err error) tea.Cmd {
	if errors.Is(err, adapter.ErrUnauthorized) {
		m.logout()
		return func() tea.Msg {
			return NavigateTo{Page: pageLogin, Payload: LoginResult{Err: err}}
		}
	}
	m.lastErr = err
	return func() tea.Msg { return showErrorMsg{message: humanizeError(err)} }
}

func (m *UsersModel) logout() {
	m.client.SetToken("")
	m.users = nil
	m.identity = nil
	m.idx = 0
	m.loading = false
}

func (m *UsersModel) cmdLoadUsers() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		users, err := client.ListUsers(ctx)
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m *UsersModel) cmdLoadIdentity() tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		identity, err := client.Me(ctx)
		return identityLoadedMsg{identity: identity, err: err}
	}
}
