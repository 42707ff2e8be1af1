// Package cmd owns the root command of portal-console. Subcommands live in
// cmd/portal-console and register themselves with RootCmd.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/logging"
	"github.com/smsportal/portal-console/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "portal-console",
	Short: "Search and notifications for the SMS portal, in your terminal.",
	Long:  `Search and notifications for the SMS portal, in your terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			colors.Debug("failed to close log file:", err.Error())
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Setup loads configuration and initializes console output and logging.
func Setup() {
	config.Load()
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))
	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
	}
}

// Execute runs the root command. main prints the returned error.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	defaultHelp := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			defaultHelp(cmd, args)
			return
		}
		printHelpText(cmd.OutOrStdout(), cmd)
	})
}

// commandOrder is the order commands appear in the help text.
var commandOrder = []string{
	"search",
	"pages",
	"palette",
	"toast",
	"directory",
	"version",
}

func printHelpText(w io.Writer, cmd *cobra.Command) {
	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-18s %s", found.Use, found.Short))
	}

	fmt.Fprintf(w, `portal-console v%s

Search and notifications for the SMS portal, in your terminal.

USAGE:
    portal-console [COMMAND] [OPTIONS]

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message
    -v, --version   Show version

ENVIRONMENT:
    PORTAL_CONSOLE_CONFIG_PATH   Config file (default $XDG_CONFIG_HOME/portal-console/config.toml)
    PORTAL_CONSOLE_ENV_FILE      File with PORTAL_CONSOLE_* variables (default ./.env)
    PORTAL_CONSOLE_DEBUG         Print debug output
`, version.String(), strings.Join(cmdLines, "\n"))
}
