package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/app-dashboard/models"
	"github.com/charmbracelet/bubbles/spinner"
)

type listModel struct {
	apps    []models.App
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	admin   bool
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (models.App, bool) {
	if len(m.apps) == 0 || m.idx < 0 || m.idx >= len(m.apps) {
		return models.App{}, false
	}
	return m.apps[m.idx], true
}

// clampCursor keeps idx inside the list after it shrank.
func (m *listModel) clampCursor() {
	if m.idx >= len(m.apps) {
		m.idx = len(m.apps) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View(title string) string {
	header := titleStyle.Render(title)
	if m.loading {
		header += "  " + m.spinner.View()
	}
	if m.admin {
		header += "  " + helpStyle.Render("[admin session]")
	}

	var b strings.Builder
	switch {
	case m.loading && len(m.apps) == 0:
		b.WriteString("Loading...")
	case len(m.apps) == 0:
		b.WriteString("No apps yet")
	default:
		for i, app := range m.apps {
			line := fmt.Sprintf("%s  %s", fitText(app.Name, 30), helpStyle.Render(fitText(app.URL, 50)))
			if i == m.idx {
				line = selectedStyle.Render("> ") + line
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(header, b.String(),
		"enter open  n new  d delete  c copy url  r refresh  a admin login  v info  q quit")
}
