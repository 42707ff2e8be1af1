// Package render draws the command palette and the toast stack.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/smsportal/portal-console/internal/toast"
)

const (
	defaultWidth     = 80
	titleWidth       = 28
	toastWidth       = 44
	cursorSymbol     = "›"
	ellipsis         = "…"
	columnSeparation = 2
)

// Theme names accepted by ThemeByName.
const (
	ThemeDefault = "default"
	ThemeMinimal = "minimal"
)

// Theme holds the styles used by the palette and the toast renderer.
type Theme struct {
	Name        string
	Group       lipgloss.Style
	Row         lipgloss.Style
	Selected    lipgloss.Style
	Path        lipgloss.Style
	Help        lipgloss.Style
	Empty       lipgloss.Style
	Toast       lipgloss.Style
	ToastTitle  lipgloss.Style
	ToastBody   lipgloss.Style
	ToastAccent map[toast.Variant]lipgloss.Color
}

// ThemeByName returns the named theme, falling back to the default one.
func ThemeByName(name string) Theme {
	if name == ThemeMinimal {
		return minimalTheme()
	}
	return defaultTheme()
}

func defaultTheme() Theme {
	blue := lipgloss.Color(ansiColorNumber(colors.Blue))
	return Theme{
		Name:  ThemeDefault,
		Group: lipgloss.NewStyle().Bold(true).Foreground(blue),
		Row:   lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Background(blue).
			Foreground(lipgloss.Color("0")),
		Path:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		Toast: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(toastWidth),
		ToastTitle: lipgloss.NewStyle().Bold(true),
		ToastBody:  lipgloss.NewStyle(),
		ToastAccent: map[toast.Variant]lipgloss.Color{
			toast.VariantDefault:     blue,
			toast.VariantSuccess:     lipgloss.Color(ansiColorNumber(colors.Green)),
			toast.VariantDestructive: lipgloss.Color(ansiColorNumber(colors.Red)),
		},
	}
}

func minimalTheme() Theme {
	return Theme{
		Name:        ThemeMinimal,
		Group:       lipgloss.NewStyle().Bold(true),
		Row:         lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Reverse(true),
		Path:        lipgloss.NewStyle(),
		Help:        lipgloss.NewStyle(),
		Empty:       lipgloss.NewStyle(),
		Toast:       lipgloss.NewStyle().Width(toastWidth),
		ToastTitle:  lipgloss.NewStyle().Bold(true),
		ToastBody:   lipgloss.NewStyle(),
		ToastAccent: map[toast.Variant]lipgloss.Color{},
	}
}

// ResultRow defines the inputs needed to render one search result.
type ResultRow struct {
	Result   search.Result
	Selected bool
	Width    int
	Theme    Theme
}

// GroupHeader renders a category heading with its result count.
func GroupHeader(g search.Group, theme Theme) string {
	return theme.Group.Render(fmt.Sprintf("%s (%d)", g.Label, len(g.Results)))
}

// Row renders a single result: cursor, title and path.
func Row(row ResultRow) string {
	width := row.Width
	if width <= 0 {
		width = defaultWidth
	}

	marker := " "
	if row.Selected {
		marker = cursorSymbol
	}
	title := truncate(row.Result.Title, titleWidth)
	pathWidth := width - titleWidth - columnSeparation*2 - 1
	path := truncate(row.Result.Path, max(pathWidth, 0))

	label := fmt.Sprintf("%s %-*s%s", marker, titleWidth, title, strings.Repeat(" ", columnSeparation))
	if row.Selected {
		return row.Theme.Selected.Render(label + path)
	}
	return row.Theme.Row.Render(label) + row.Theme.Path.Render(path)
}

// Results renders grouped results. cursor indexes the flattened list.
func Results(groups []search.Group, cursor, width int, theme Theme) string {
	var lines []string
	index := 0
	for _, g := range groups {
		lines = append(lines, GroupHeader(g, theme))
		for _, r := range g.Results {
			lines = append(lines, Row(ResultRow{
				Result:   r,
				Selected: index == cursor,
				Width:    width,
				Theme:    theme,
			}))
			index++
		}
	}
	return strings.Join(lines, "\n")
}

// Empty renders the no-results line for query.
func Empty(query string, theme Theme) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return theme.Empty.Render("Nothing to show")
	}
	return theme.Empty.Render(fmt.Sprintf("No results for %q", query))
}

// Footer renders the key help line.
func Footer(theme Theme) string {
	help := []string{
		"↑/↓: move",
		"Enter: open",
		"Ctrl+D: close toast",
		"Ctrl+X: dismiss toasts",
		"Esc: quit",
	}
	return theme.Help.Render(strings.Join(help, "  |  "))
}

// Toast renders one toast as a box with an accent border for its variant.
func Toast(t toast.Toast, theme Theme) string {
	style := theme.Toast
	if accent, ok := theme.ToastAccent[t.Variant]; ok {
		style = style.BorderForeground(accent)
	}
	body := theme.ToastTitle.Render(t.Title)
	if t.Description != "" {
		body += "\n" + theme.ToastBody.Render(t.Description)
	}
	return style.Render(body)
}

// Toasts renders the open toasts, newest first. Closed toasts are skipped
// while they wait for removal.
func Toasts(list []toast.Toast, theme Theme) string {
	var boxes []string
	for _, t := range list {
		if !t.Open {
			continue
		}
		boxes = append(boxes, Toast(t, theme))
	}
	if len(boxes) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(value) <= width {
		return value
	}
	if width == 1 {
		return ellipsis
	}
	return string([]rune(value)[:width-1]) + ellipsis
}

// ansiColorNumber extracts the color number from an ANSI escape such as
// "\033[0;34m".
func ansiColorNumber(ansi string) string {
	if len(ansi) < 2 {
		return ""
	}
	lastSemicolon := strings.LastIndex(ansi, ";")
	if lastSemicolon == -1 {
		return ""
	}
	return ansi[lastSemicolon+1 : len(ansi)-1]
}
