package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/identity"
	"github.com/smsportal/portal-console/internal/logging"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// setupConfig points config and state at a temp dir and reloads config.
func setupConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	config.Load()
	return tmp
}

// captureColors redirects colors output to buffers for the test.
func captureColors(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	colors.SetOutput(stdout, stderr)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return stdout, stderr
}

// execute runs c with args and returns what it wrote to its output.
func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

// fakeEngineClient records requests and builds engines without touching
// disk: --super-admin selects the root identity, anything else a client.
type fakeEngineClient struct {
	requests []engineRequest
	err      error
	released int
}

func (f *fakeEngineClient) NewEngine(ctx context.Context, req engineRequest) (*search.Engine, func() error, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, nil, f.err
	}
	id := identity.New(7, "client")
	if req.SuperAdmin {
		id = identity.New(1, "root")
	}
	provider := search.ProviderByName(req.Provider)
	if provider == nil {
		provider = search.NewTokenProvider()
	}
	engine := search.New(ctx, id, search.WithLogger(logging.Noop()), search.WithProvider(provider))
	return engine, func() error { f.released++; return nil }, nil
}

func (f *fakeEngineClient) lastRequest(t *testing.T) engineRequest {
	t.Helper()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}
