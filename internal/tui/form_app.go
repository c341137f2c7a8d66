package tui

import (
	"strings"

	"github.com/MKhiriev/app-dashboard/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldName = iota
	fieldURL
	fieldIcon
	fieldDescription
	fieldPassword
)

var formLabels = []string{
	fieldName:        "Name:        ",
	fieldURL:         "URL:         ",
	fieldIcon:        "Icon:        ",
	fieldDescription: "Description: ",
	fieldPassword:    "Password:    ",
}

type formAppModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newFormAppModel() formAppModel {
	inputs := make([]textinput.Model, len(formLabels))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[fieldIcon].Placeholder = "fa-solid fa-chart-line or https://..."
	inputs[fieldPassword].Placeholder = "empty with an admin session"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldPassword].EchoCharacter = '•'
	inputs[fieldName].Focus()

	return formAppModel{inputs: inputs}
}

func (m formAppModel) toApp() models.App {
	return models.App{
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		URL:         strings.TrimSpace(m.inputs[fieldURL].Value()),
		Icon:        strings.TrimSpace(m.inputs[fieldIcon].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
	}
}

func (m formAppModel) password() string {
	return m.inputs[fieldPassword].Value()
}

// complete reports whether every record field is filled in.
func (m formAppModel) complete() bool {
	app := m.toApp()
	return app.Name != "" && app.URL != "" && app.Icon != "" && app.Description != ""
}

func (m formAppModel) focusNext() formAppModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formAppModel) focusPrev() formAppModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formAppModel) View() string {
	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(formLabels[i])
		b.WriteString("[")
		b.WriteString(input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nSaving...")
	}

	return renderPage(titleStyle.Render("New app"), b.String(), "tab next field  enter save  esc cancel")
}
