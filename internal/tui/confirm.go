package tui

type confirmModel struct {
	name string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.name + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
