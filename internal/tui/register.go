package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
	registerRepeat
	registerFullName
)

// RegisterModel is the registration form with username, email, password,
// password confirmation and full name inputs.
type RegisterModel struct {
	ctx    context.Context
	client adapter.AuthClient

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, client adapter.AuthClient) *RegisterModel {
	newInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 40
		return in
	}

	inputs := []textinput.Model{
		newInput("username", 50),
		newInput("email", 255),
		newInput("password", 72),
		newInput("repeat password", 72),
		newInput("full name (optional)", 255),
	}
	for _, i := range []int{registerPassword, registerRepeat} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[registerUsername].Focus()

	return &RegisterModel{
		ctx:    ctx,
		client: client,
		inputs: inputs,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.resetForm()
		notice := RegisterSuccessNotice{Username: result.Echo.Username}
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu, Payload: notice} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageMenu)
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			req := models.RegistrationRequest{
				Username: strings.TrimSpace(m.inputs[registerUsername].Value()),
				Email:    strings.TrimSpace(m.inputs[registerEmail].Value()),
				Password: m.inputs[registerPassword].Value(),
				FullName: strings.TrimSpace(m.inputs[registerFullName].Value()),
			}
			if req.Username == "" || req.Email == "" || req.Password == "" {
				m.errMsg = "Username, email and password are required"
				return m, nil
			}
			if req.Password != m.inputs[registerRepeat].Value() {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	labels := []string{"Username", "Email", "Password", "Repeat", "Full name"}

	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 11-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Register...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(req models.RegistrationRequest) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		echo, err := client.Register(ctx, req)
		return RegisterResult{Err: err, Echo: echo}
	}
}

func (m *RegisterModel) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
