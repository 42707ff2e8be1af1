package state

import (
	"strings"

	"github.com/smsportal/portal-console/internal/tui/render"
)

// View renders the palette.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if len(m.results) == 0 {
		b.WriteString(render.Empty(m.input.Value(), m.theme))
	} else {
		b.WriteString(render.Results(m.groups, m.cursor, m.width, m.theme))
	}
	b.WriteString("\n\n")
	b.WriteString(render.Footer(m.theme))

	if toasts := render.Toasts(m.toasts, m.theme); toasts != "" {
		b.WriteString("\n\n")
		b.WriteString(toasts)
	}
	return b.String()
}
