package state

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smsportal/portal-console/internal/logging"
	"github.com/smsportal/portal-console/internal/notify"
)

// handleKeyMsg processes keyboard input for the palette. Navigation keys
// are handled here; everything else goes to the text input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case tea.KeyUp, tea.KeyCtrlP:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown, tea.KeyCtrlN:
		m.moveCursor(1)
		return m, nil
	case tea.KeyEnter:
		m.openSelected()
		return m, nil
	case tea.KeyCtrlD:
		m.closeNewestToast()
		return m, nil
	case tea.KeyCtrlX:
		m.store.Dismiss("")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

// moveCursor moves the highlight by delta, clamped to the result list.
func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
}

// closeNewestToast closes the newest open toast on screen the way a user
// closes the element, through its OnOpenChange callback.
func (m *Model) closeNewestToast() {
	for _, t := range m.toasts {
		if t.Open && t.OnOpenChange != nil {
			t.OnOpenChange(false)
			return
		}
	}
}

// openSelected records the highlighted destination and raises a toast.
// With nothing highlighted it only warns.
func (m *Model) openSelected() {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		m.notifier.Warning(fmt.Sprintf("Nothing to open for %q", m.Query()))
		return
	}
	r := m.results[m.cursor]
	m.selected = r.Path
	m.notifier.Raise(notify.LevelSuccess, "Opening "+r.Title, r.Path)
	logging.Debug("palette open", "path", r.Path, "category", r.Category.String())
}
