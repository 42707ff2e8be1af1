// Package state holds the bubbletea model of the command palette.
package state

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/smsportal/portal-console/internal/notify"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/smsportal/portal-console/internal/toast"
	"github.com/smsportal/portal-console/internal/tui/render"
)

const (
	defaultViewportWidth = 80
	inputCharLimit       = 120
	placeholder          = "Search pages, contacts, groups..."
)

// Model is the command palette: a query input, grouped results and the
// toast stack rendered underneath.
type Model struct {
	engine   *search.Engine
	store    *toast.Store
	notifier *notify.ToastHandler
	theme    render.Theme

	input   textinput.Model
	groups  []search.Group
	results []search.Result // flattened groups, indexed by cursor
	cursor  int

	toasts      []toast.Toast
	feed        *toastFeed
	unsubscribe func()

	selected string
	width    int
	height   int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithTheme selects the render theme by name.
func WithTheme(name string) Option {
	return func(m *Model) {
		m.theme = render.ThemeByName(name)
	}
}

// WithQuery pre-fills the query input.
func WithQuery(q string) Option {
	return func(m *Model) {
		m.input.SetValue(q)
	}
}

// NewModel creates a palette bound to engine and store. The model
// subscribes to the store until Close is called.
func NewModel(engine *search.Engine, store *toast.Store, opts ...Option) *Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	input.CharLimit = inputCharLimit
	input.Width = defaultViewportWidth - len(input.Prompt)
	input.Focus()

	m := &Model{
		engine:   engine,
		store:    store,
		notifier: notify.NewToastHandler(store),
		theme:    render.ThemeByName(render.ThemeDefault),
		input:    input,
		feed:     newToastFeed(),
		width:    defaultViewportWidth,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.toasts = store.State().Toasts
	m.unsubscribe = store.Subscribe(m.feed.offer)
	m.refresh()
	return m
}

// Init starts the cursor blink and the toast feed.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.feed.wait())
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt), 1)
		return m, nil
	case ToastsChangedMsg:
		m.toasts = msg.State.Toasts
		return m, m.feed.wait()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Close detaches the model from the toast store. It is safe to call twice.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	m.feed.close()
}

// Query returns the current input value.
func (m *Model) Query() string {
	return m.input.Value()
}

// Results returns the results in display order.
func (m *Model) Results() []search.Result {
	return m.results
}

// Cursor returns the index of the highlighted result.
func (m *Model) Cursor() int {
	return m.cursor
}

// Selected returns the path of the last opened result, or "".
func (m *Model) Selected() string {
	return m.selected
}

// Toasts returns the toasts the model last received.
func (m *Model) Toasts() []toast.Toast {
	return m.toasts
}

// refresh reruns the query and resets the cursor to the top.
func (m *Model) refresh() {
	m.groups = search.GroupByCategory(m.engine.Search(m.input.Value()))
	m.results = search.Flatten(m.groups)
	m.cursor = 0
}
