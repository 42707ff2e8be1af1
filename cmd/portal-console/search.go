package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/spf13/cobra"
)

const searchCommandLong = `Search the portal's pages, contacts and groups.

Every word of the query must appear in a result's title, description or
path. Exact title or path matches rank first, then title matches, then the
rest. An empty query lists the first pages without ranking.

USAGE:
    portal-console search [QUERY...] [OPTIONS]

OPTIONS:
    --json                Print results as JSON
    --identity <file>     JSON file with the caller's user payload
    --super-admin         Search as a super admin
    --provider <name>     Matching strategy: token (default), substring, regex
    --directory <db>      Directory database adding contacts and groups
    -h, --help            Show this help`

// NewSearchCmd creates the search command with explicit dependencies.
func NewSearchCmd(client engineClient) *cobra.Command {
	if client == nil {
		panic("NewSearchCmd: client dependency cannot be nil")
	}

	var req engineRequest
	var asJSON bool

	searchCmd := &cobra.Command{
		Use:   "search [QUERY...]",
		Short: "Search pages, contacts and groups",
		Long:  searchCommandLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			engine, release, err := client.NewEngine(c.Context(), req)
			if err != nil {
				return err
			}
			defer func() {
				if err := release(); err != nil {
					colors.Debug("release search sources:", err.Error())
				}
			}()

			query := strings.Join(args, " ")
			results := engine.Search(query)
			colors.Debug(fmt.Sprintf("search %q as %s via %s: %d results",
				query, engine.Identity(), engine.ProviderName(), len(results)))
			if asJSON {
				return printJSON(c.OutOrStdout(), results)
			}
			printResults(c.OutOrStdout(), query, results)
			return nil
		},
	}

	searchCmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	addEngineFlags(searchCmd, &req)
	return searchCmd
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResults renders results as a table with score, category, title and path.
func printResults(w io.Writer, query string, results []search.Result) {
	if len(results) == 0 {
		fmt.Fprintf(w, "No results for %q\n", strings.TrimSpace(query))
		return
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		score := "-"
		if r.Metadata != nil {
			score = strconv.Itoa(r.Metadata.Score)
		}
		rows = append(rows, []string{score, r.Category.String(), r.Title, r.Path})
	}
	fmt.Fprintln(w, newTable("SCORE", "CATEGORY", "TITLE", "PATH").Rows(rows...).Render())
}

// newTable returns a borderless table in the console's house style.
func newTable(headers ...string) *table.Table {
	headerStyle := lipgloss.NewStyle().Bold(true)
	cellStyle := lipgloss.NewStyle().PaddingRight(2)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.PaddingRight(2)
			}
			return cellStyle
		})
}

func init() {
	cmd.RootCmd.AddCommand(NewSearchCmd(defaultClient))
}
