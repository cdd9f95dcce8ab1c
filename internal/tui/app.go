package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global quit and the build info window
// 3) handles NavigateTo messages
// 4) shows the error overlay
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	client  adapter.AuthClient
	pages   map[string]tea.Model
	current tea.Model

	buildInfo     models.AppBuildInfo
	serverInfo    *models.AppBuildInfo
	serverErr     string
	showBuildInfo bool

	overlay     errorOverlayModel
	showOverlay bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, client adapter.AuthClient, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		client:    client,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.String() == "ctrl+c" {
			return r, tea.Quit
		}

		if r.showOverlay {
			if key.Matches(k, keys.enter) || key.Matches(k, keys.esc) {
				r.showOverlay = false
			}
			return r, nil
		}

		switch {
		case key.Matches(k, keys.version) && r.isMenuPage():
			r.showBuildInfo = !r.showBuildInfo
			if r.showBuildInfo {
				r.serverInfo = nil
				r.serverErr = ""
				return r, r.cmdServerVersion()
			}
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		case key.Matches(k, keys.quit) && r.isListPage():
			return r, tea.Quit
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case showErrorMsg:
		r.overlay = errorOverlayModel{message: msg.message}
		r.showOverlay = true
		return r, nil

	case serverVersionMsg:
		if msg.err != nil {
			r.serverErr = humanizeError(msg.err)
			return r, nil
		}
		info := msg.info
		r.serverInfo = &info
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	switch {
	case r.showOverlay:
		return r.overlay.View()
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo, r.serverInfo, r.serverErr)
	case r.current == nil:
		return renderPage("go-user-auth", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

// isListPage reports whether the active page has no text inputs, so a
// plain "q" can quit.
func (r RootModel) isListPage() bool {
	switch r.current.(type) {
	case *MenuModel, *UsersModel:
		return true
	}
	return false
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx := r.ctx
	client := r.client

	return func() tea.Msg {
		info, err := client.Version(ctx)
		return serverVersionMsg{info: info, err: err}
	}
}
