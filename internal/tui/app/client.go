package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/smsportal/portal-console/internal/toast"
	"github.com/smsportal/portal-console/internal/tui/state"
)

// Model defines the narrow TUI model surface used by command wiring.
type Model interface {
	tea.Model
	Selected() string
	Close()
}

// Client defines dependencies needed by the palette command.
type Client interface {
	CreateModel(engine *search.Engine, store *toast.Store) Model
	RunProgram(model Model) error
}

// DefaultClient is the default adapter-based implementation used by CLI wiring.
type DefaultClient struct {
	programRunner ProgramRunner
	theme         string
	query         string
}

// NewDefaultClient creates a default TUI client adapter.
// If programRunner is nil, a DefaultProgramRunner will be used.
func NewDefaultClient(programRunner ProgramRunner, theme, query string) *DefaultClient {
	if programRunner == nil {
		programRunner = NewDefaultProgramRunner()
	}
	return &DefaultClient{
		programRunner: programRunner,
		theme:         theme,
		query:         query,
	}
}

// CreateModel builds the palette model.
func (d *DefaultClient) CreateModel(engine *search.Engine, store *toast.Store) Model {
	opts := []state.Option{state.WithTheme(d.theme)}
	if d.query != "" {
		opts = append(opts, state.WithQuery(d.query))
	}
	return state.NewModel(engine, store, opts...)
}

// RunProgram starts the bubbletea program using the configured ProgramRunner.
// The model is detached from its toast store when the program exits.
func (d *DefaultClient) RunProgram(model Model) error {
	defer model.Close()
	err := d.programRunner.Run(model)
	if err != nil {
		colors.Error(fmt.Sprintf("Error running palette: %v", err))
		return err
	}
	return nil
}
