package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

// DetailModel shows one user. The row picked on the users page is shown
// at once and replaced by a fresh copy fetched by id.
type DetailModel struct {
	ctx    context.Context
	client adapter.AuthClient

	user    models.User
	loading bool
	lastErr error
}

func NewDetailModel(ctx context.Context, client adapter.AuthClient) *DetailModel {
	return &DetailModel{ctx: ctx, client: client}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case userSelectedMsg:
		m.user = msg.user
		m.loading = true
		m.lastErr = nil
		return m, m.cmdLoadUser(msg.user.UserID)

	case userLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.user = msg.user
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageUsers)
		}
	}

	return m, nil
}

func (m *DetailModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("ID:         %d\n", m.user.UserID))
	b.WriteString(fmt.Sprintf("Username:   %s\n", valueOrDash(m.user.Username)))
	b.WriteString(fmt.Sprintf("Email:      %s\n", valueOrDash(m.user.Email)))
	b.WriteString(fmt.Sprintf("Full name:  %s\n", valueOrDash(m.user.FullName)))

	created := "-"
	if !m.user.CreatedAt.IsZero() {
		created = m.user.CreatedAt.Local().Format(time.DateTime)
	}
	b.WriteString(fmt.Sprintf("Created:    %s\n", created))

	if m.loading {
		b.WriteString("\nRefreshing...\n")
	}
	if m.lastErr != nil {
		b.WriteString("\nError: ")
		b.WriteString(humanizeError(m.lastErr))
		b.WriteString("\n")
	}

	return renderPage("USER", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func (m *DetailModel) cmdLoadUser(userID int64) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		user, err := client.GetUserByID(ctx, userID)
		return userLoadedMsg{user: user, err: err}
	}
}
