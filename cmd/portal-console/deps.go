package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/directory"
	"github.com/smsportal/portal-console/internal/identity"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/spf13/cobra"
)

// engineRequest describes the caller and matching strategy for one command.
type engineRequest struct {
	IdentityPath  string
	SuperAdmin    bool
	Provider      string
	DirectoryPath string
}

// engineClient builds search engines for commands. The returned release
// function closes whatever the engine's sources hold open.
type engineClient interface {
	NewEngine(ctx context.Context, req engineRequest) (*search.Engine, func() error, error)
}

// consoleClient is the production engineClient.
type consoleClient struct{}

var defaultClient engineClient = consoleClient{}

// openDirectory opens the directory database. Tests replace it.
var openDirectory = directory.Open

// loadIdentity reads an identity payload from disk. Tests replace it.
var loadIdentity = identity.FromFile

func (consoleClient) NewEngine(ctx context.Context, req engineRequest) (*search.Engine, func() error, error) {
	id, err := resolveIdentity(req)
	if err != nil {
		return nil, nil, err
	}

	provider := search.ProviderByName(req.Provider)
	if provider == nil {
		return nil, nil, fmt.Errorf("unknown search provider %q (want token, substring or regex)", req.Provider)
	}

	opts := append(search.EngineOptionsFromConfig(), search.WithProvider(provider))
	release := func() error { return nil }

	dbPath := req.DirectoryPath
	if dbPath == "" {
		dbPath = config.Get("directory_path", "")
	}
	if dbPath != "" {
		store, err := openDirectory(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open directory: %w", err)
		}
		opts = append(opts, search.WithSources(store))
		release = store.Close
	}

	return search.New(ctx, id, opts...), release, nil
}

var errConflictingIdentity = errors.New("--identity and --super-admin cannot be combined")

// resolveIdentity picks the caller: a payload file, the built-in super
// admin, or anonymous.
func resolveIdentity(req engineRequest) (identity.Identity, error) {
	switch {
	case req.IdentityPath != "" && req.SuperAdmin:
		return identity.Identity{}, errConflictingIdentity
	case req.IdentityPath != "":
		id, err := loadIdentity(req.IdentityPath)
		if err != nil {
			return identity.Identity{}, fmt.Errorf("load identity: %w", err)
		}
		return id, nil
	case req.SuperAdmin:
		return identity.New(1, "root"), nil
	default:
		return identity.Anonymous(), nil
	}
}

// addEngineFlags registers the flags shared by commands that search.
func addEngineFlags(cmd *cobra.Command, req *engineRequest) {
	cmd.Flags().StringVar(&req.IdentityPath, "identity", "", "JSON file with the caller's user payload")
	cmd.Flags().BoolVar(&req.SuperAdmin, "super-admin", false, "Search as a super admin")
	cmd.Flags().StringVar(&req.Provider, "provider", "token", "Matching strategy: token, substring or regex")
	cmd.Flags().StringVar(&req.DirectoryPath, "directory", "", "Directory database adding contacts and groups (default: directory_path config)")
}
