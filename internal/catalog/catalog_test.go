package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageID(t *testing.T) {
	assert.Equal(t, "page-dashboard", PageID("/dashboard"))
	assert.Equal(t, "page-admin-tokens-all", PageID("/admin/tokens/all"))
	assert.Equal(t, "page-root", PageID("/"))
	assert.Equal(t, "page-contacts-groups", PageID("contacts/groups/"))
}

func TestBuildClient(t *testing.T) {
	pages := Build(false)

	require.NotEmpty(t, pages)
	assert.Equal(t, "/dashboard", pages[0].Path)
	for _, p := range pages {
		if strings.HasPrefix(p.Path, "/admin/") {
			assert.True(t, strings.HasPrefix(p.Path, "/admin/tokens"), "client catalog leaked %s", p.Path)
		}
	}
}

func TestBuildSuperAdminAppendsAdminPages(t *testing.T) {
	client := Build(false)
	admin := Build(true)

	require.Greater(t, len(admin), len(client))
	assert.Equal(t, client, admin[:len(client)], "client pages keep their order")

	paths := map[string]bool{}
	for _, p := range admin {
		paths[p.Path] = true
	}
	assert.True(t, paths["/admin/dashboard"])
	assert.True(t, paths["/admin/kyb"])
}

func TestBuildReturnsFreshSlice(t *testing.T) {
	a := Build(false)
	a[0].Title = "changed"

	assert.Equal(t, "Dashboard", Build(false)[0].Title)
}

func TestEntriesAreWellFormed(t *testing.T) {
	seenID := map[string]bool{}
	seenPath := map[string]bool{}
	for _, p := range Build(true) {
		assert.Equal(t, CategoryPage, p.Category)
		assert.NotEmpty(t, p.Title)
		assert.True(t, strings.HasPrefix(p.Path, "/"), p.Path)
		assert.Equal(t, PageID(p.Path), p.ID)
		assert.False(t, seenID[p.ID], "duplicate id %s", p.ID)
		assert.False(t, seenPath[p.Path], "duplicate path %s", p.Path)
		seenID[p.ID] = true
		seenPath[p.Path] = true
	}
}

func TestCategories(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.IsValid())
		assert.NotEmpty(t, c.Label())
	}
	assert.False(t, Category("invoice").IsValid())
	assert.Equal(t, "Invoice", Category("invoice").Label())
}
