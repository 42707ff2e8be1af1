package main

import (
	"fmt"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/toast"
	"github.com/smsportal/portal-console/internal/tui/app"
	"github.com/spf13/cobra"
)

// newPaletteClient builds the TUI adapter. Tests replace it.
var newPaletteClient = func(theme, query string) app.Client {
	return app.NewDefaultClient(nil, theme, query)
}

// NewPaletteCmd creates the palette command with explicit dependencies.
func NewPaletteCmd(client engineClient) *cobra.Command {
	if client == nil {
		panic("NewPaletteCmd: client dependency cannot be nil")
	}

	var req engineRequest
	var theme string
	var query string

	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Open the interactive command palette",
		Long: `Open the interactive command palette.

Type to search, move with up/down (or ctrl+p/ctrl+n) and press Enter to
open a result. The path of the last opened result is printed on exit.
Ctrl+D closes the newest toast and Ctrl+X dismisses all of them; Esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			engine, release, err := client.NewEngine(c.Context(), req)
			if err != nil {
				return err
			}
			defer func() { _ = release() }()

			store := toast.NewStore(toast.OptionsFromConfig()...)
			defer store.Close()

			if theme == "" {
				theme = config.Get("palette_theme", "default")
			}
			tui := newPaletteClient(theme, query)
			model := tui.CreateModel(engine, store)
			if err := tui.RunProgram(model); err != nil {
				return err
			}
			if selected := model.Selected(); selected != "" {
				fmt.Fprintln(c.OutOrStdout(), selected)
			}
			return nil
		},
	}

	paletteCmd.Flags().StringVar(&theme, "theme", "", "Palette theme: default or minimal (default: palette_theme config)")
	paletteCmd.Flags().StringVar(&query, "query", "", "Initial query")
	addEngineFlags(paletteCmd, &req)
	return paletteCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewPaletteCmd(defaultClient))
}
