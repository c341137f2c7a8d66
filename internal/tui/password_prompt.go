package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type promptPurpose int

const (
	promptDelete promptPurpose = iota
	promptSession
)

// passwordPromptModel asks for the admin password before a delete or when
// opening an admin session.
type passwordPromptModel struct {
	input      textinput.Model
	purpose    promptPurpose
	target     string
	submitting bool
}

func newPasswordPromptModel(purpose promptPurpose, target string) passwordPromptModel {
	input := textinput.New()
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return passwordPromptModel{input: input, purpose: purpose, target: target}
}

func (m passwordPromptModel) View() string {
	title := "Admin login"
	if m.purpose == promptDelete {
		title = "Delete \"" + m.target + "\""
	}

	body := "Admin password: [" + m.input.View() + "]"
	if m.submitting {
		body += "\n\nPlease wait..."
	}

	return renderPage(titleStyle.Render(title), body, "enter confirm  esc cancel")
}
