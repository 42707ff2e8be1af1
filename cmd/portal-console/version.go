package main

import (
	"fmt"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/version"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

type buildInfo struct{}

func (buildInfo) Version() string {
	return version.String()
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of portal-console.`,
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Fprintf(c.OutOrStdout(), "portal-console version %s\n", client.Version())
			return nil
		},
	}
}

func init() {
	cmd.RootCmd.AddCommand(NewVersionCmd(buildInfo{}))
}
