package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/app-dashboard/models"
)

type detailModel struct {
	app    models.App
	status string
}

func (m detailModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "URL:          %s\n", valueOrDash(m.app.URL))
	fmt.Fprintf(&b, "Icon:         %s\n", valueOrDash(m.app.Icon))
	fmt.Fprintf(&b, "Description:  %s\n", valueOrDash(m.app.Description))

	if len(m.app.Extra) > 0 {
		keys := make([]string, 0, len(m.app.Extra))
		for k := range m.app.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %s\n", k, fitText(string(m.app.Extra[k]), 60))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(titleStyle.Render(m.app.Name), b.String(), "c copy url  d delete  esc back")
}
