package main

import (
	"fmt"
	"strconv"

	"github.com/smsportal/portal-console/cmd"
	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/directory"
	"github.com/spf13/cobra"
)

// NewDirectoryCmd creates the directory command group.
func NewDirectoryCmd() *cobra.Command {
	directoryCmd := &cobra.Command{
		Use:   "directory",
		Short: "Manage the contacts directory used by search",
		Args:  cobra.NoArgs,
	}
	directoryCmd.AddCommand(newDirectorySeedCmd(), newDirectoryContactCmd())
	return directoryCmd
}

func newDirectorySeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [DB]",
		Short: "Create a sample directory database",
		Long: `Create or refresh a directory database with sample contacts and groups.

DB defaults to the directory_path config value. Seeding twice is safe.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			path, err := directoryPath("directory seed", args)
			if err != nil {
				return err
			}
			return seedDirectory(c, path)
		},
	}
}

func newDirectoryContactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contact <ID> [DB]",
		Short: "Show one contact from the directory",
		Long: `Show the stored name, phone and email of a contact.

DB defaults to the directory_path config value.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("directory contact: invalid id %q", args[0])
			}
			path, err := directoryPath("directory contact", args[1:])
			if err != nil {
				return err
			}
			return showContact(c, path, id)
		},
	}
}

// directoryPath returns the database named in args, or the configured one.
func directoryPath(command string, args []string) (string, error) {
	path := config.Get("directory_path", "")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return "", fmt.Errorf("%s: no database path given and directory_path is not set", command)
	}
	return path, nil
}

func showContact(c *cobra.Command, path string, id int64) error {
	store, err := openDirectory(path)
	if err != nil {
		return err
	}
	defer store.Close()

	contact, err := store.Contact(c.Context(), id)
	if err != nil {
		return err
	}
	out := c.OutOrStdout()
	fmt.Fprintf(out, "%s\n", contact.Name)
	fmt.Fprintf(out, "  phone: %s\n", valueOrDash(contact.Phone))
	fmt.Fprintf(out, "  email: %s\n", valueOrDash(contact.Email))
	fmt.Fprintf(out, "  path:  %s\n", contact.Entry().Path)
	return nil
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func seedDirectory(c *cobra.Command, path string) error {
	store, err := openDirectory(path)
	if err != nil {
		return err
	}
	defer store.Close()

	contacts, groups := directory.SampleContacts(), directory.SampleGroups()
	if err := store.Seed(c.Context(), contacts, groups); err != nil {
		return err
	}
	colors.Success(fmt.Sprintf("Seeded %d contacts and %d groups into %s", len(contacts), len(groups), path))
	return nil
}

func init() {
	cmd.RootCmd.AddCommand(NewDirectoryCmd())
}
