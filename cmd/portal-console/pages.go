package main

import (
	"fmt"
	"io"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/spf13/cobra"
)

// NewPagesCmd creates the pages command with explicit dependencies.
func NewPagesCmd(client engineClient) *cobra.Command {
	if client == nil {
		panic("NewPagesCmd: client dependency cannot be nil")
	}

	var req engineRequest
	var asJSON bool

	pagesCmd := &cobra.Command{
		Use:   "pages",
		Short: "List the pages the caller can open",
		Long: `List every page the caller can open, in navigation order.

Admin pages are listed only for super admins.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			engine, release, err := client.NewEngine(c.Context(), req)
			if err != nil {
				return err
			}
			defer func() { _ = release() }()

			pages := engine.AllPages()
			if asJSON {
				return printJSON(c.OutOrStdout(), pages)
			}
			printPages(c.OutOrStdout(), pages)
			return nil
		},
	}

	pagesCmd.Flags().BoolVar(&asJSON, "json", false, "Print pages as JSON")
	addEngineFlags(pagesCmd, &req)
	return pagesCmd
}

func printPages(w io.Writer, pages []search.Result) {
	rows := make([][]string, 0, len(pages))
	for _, p := range pages {
		rows = append(rows, []string{p.Title, p.Path, p.Description})
	}
	fmt.Fprintln(w, newTable("TITLE", "PATH", "DESCRIPTION").Rows(rows...).Render())
	fmt.Fprintf(w, "%d pages\n", len(pages))
}

func init() {
	cmd.RootCmd.AddCommand(NewPagesCmd(defaultClient))
}
