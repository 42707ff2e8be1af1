package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/smsportal/portal-console/internal/colors"
	"github.com/smsportal/portal-console/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchCmdPanicsWhenClientDependencyIsNil(t *testing.T) {
	require.PanicsWithValue(t, "NewSearchCmd: client dependency cannot be nil", func() {
		NewSearchCmd(nil)
	})
}

func TestSearchPrintsTable(t *testing.T) {
	client := &fakeEngineClient{}

	out, err := execute(t, NewSearchCmd(client), "dashboard")

	require.NoError(t, err)
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "Dashboard")
	assert.Contains(t, out, "/dashboard")
	assert.Contains(t, out, "100")
	assert.NotContains(t, out, "/admin/dashboard")
	assert.Equal(t, 1, client.released)
}

func TestSearchJoinsArguments(t *testing.T) {
	out, err := execute(t, NewSearchCmd(&fakeEngineClient{}), "--json", "send", "message")
	require.NoError(t, err)

	var results []search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "Send Message", results[0].Title)
	require.NotNil(t, results[0].Metadata)
	assert.Equal(t, search.ScoreExact, results[0].Metadata.Score)
	assert.True(t, results[0].Metadata.ExactMatch)
}

func TestSearchEmptyQueryJSON(t *testing.T) {
	out, err := execute(t, NewSearchCmd(&fakeEngineClient{}), "--json")
	require.NoError(t, err)

	var results []search.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, search.DefaultEmptyLimit)
	for _, r := range results {
		assert.Nil(t, r.Metadata)
	}
	assert.NotContains(t, out, "metadata")
}

func TestSearchEmptyQueryTableShowsDash(t *testing.T) {
	out, err := execute(t, NewSearchCmd(&fakeEngineClient{}))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, search.DefaultEmptyLimit+1)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "-"))
}

func TestSearchNoResults(t *testing.T) {
	out, err := execute(t, NewSearchCmd(&fakeEngineClient{}), "zebra", "crossing")

	require.NoError(t, err)
	assert.Equal(t, "No results for \"zebra crossing\"\n", out)
}

func TestSearchSuperAdminSeesAdminPages(t *testing.T) {
	out, err := execute(t, NewSearchCmd(&fakeEngineClient{}), "--super-admin", "dashboard")

	require.NoError(t, err)
	assert.Contains(t, out, "/admin/dashboard")
}

func TestSearchFlagsReachClient(t *testing.T) {
	client := &fakeEngineClient{}

	_, err := execute(t, NewSearchCmd(client),
		"--provider", "regex", "--directory", "/tmp/dir.db", "--identity", "me.json", "^dash")
	require.NoError(t, err)

	req := client.lastRequest(t)
	assert.Equal(t, "regex", req.Provider)
	assert.Equal(t, "/tmp/dir.db", req.DirectoryPath)
	assert.Equal(t, "me.json", req.IdentityPath)
	assert.False(t, req.SuperAdmin)
}

func TestSearchDefaultsToTokenProvider(t *testing.T) {
	client := &fakeEngineClient{}

	_, err := execute(t, NewSearchCmd(client), "reports")
	require.NoError(t, err)
	assert.Equal(t, "token", client.lastRequest(t).Provider)
}

func TestSearchClientError(t *testing.T) {
	expectedErr := errors.New("directory is locked")

	_, err := execute(t, NewSearchCmd(&fakeEngineClient{err: expectedErr}), "dashboard")

	assert.ErrorIs(t, err, expectedErr)
}

func TestSearchDebugLineNamesProvider(t *testing.T) {
	_, stderr := captureColors(t)
	colors.SetDebug(true)
	t.Cleanup(func() { colors.SetDebug(false) })

	_, err := execute(t, NewSearchCmd(&fakeEngineClient{}), "reports", "--provider", "substring")

	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `search "reports" as #7 (client) via substring`)
}
