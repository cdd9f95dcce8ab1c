package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := titleStyle.Render("Error") + "\n\n" + m.message + "\n\n" + helpStyle.Render("enter / esc: close")
	return appStyle.Render(overlayBoxStyle.Render(content))
}
