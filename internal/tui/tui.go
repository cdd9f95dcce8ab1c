// Package tui is the interactive terminal client for go-user-auth built on
// Bubble Tea. [TUI.Run] opens the main menu; from there the user can
// register, log in and browse the registered users.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
)

type TUI struct {
	client    adapter.AuthClient
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(client adapter.AuthClient, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, errors.New("tui: nil auth client")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{client: client, buildInfo: buildInfo, logger: log}, nil
}

// newRoot wires every page. A client that already holds a token starts on
// the users page.
func (t *TUI) newRoot(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.client),
		pageRegister: NewRegisterModel(ctx, t.client),
		pageUsers:    NewUsersModel(ctx, t.client),
		pageDetail:   NewDetailModel(ctx, t.client),
	}

	start := pageMenu
	if t.client.Token() != "" {
		start = pageUsers
	}
	return NewRootModel(ctx, t.client, pages, start, t.buildInfo)
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRoot(ctx)
	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Debug().Msg("tui stopped by signal")
			return nil
		}
		return err
	}
	return nil
}
