package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/smsportal/portal-console/internal/catalog"
	"github.com/smsportal/portal-console/internal/identity"
	"github.com/smsportal/portal-console/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	client     = identity.New(7, "client")
	superAdmin = identity.New(42, "root")
)

func newEngine(id identity.Identity, opts ...EngineOption) *Engine {
	opts = append([]EngineOption{WithLogger(logging.Noop())}, opts...)
	return New(context.Background(), id, opts...)
}

func titles(results []Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Title)
	}
	return out
}

func assertNoAdminLeak(t *testing.T, results []Result) {
	t.Helper()
	for _, r := range results {
		if strings.HasPrefix(r.Path, "/admin/") {
			assert.True(t, strings.HasPrefix(r.Path, "/admin/tokens"), "non-admin saw %s", r.Path)
		}
	}
}

func contactEntries(n int) []catalog.Entry {
	out := make([]catalog.Entry, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, catalog.Entry{
			ID:       fmt.Sprintf("contact-%d", i),
			Title:    fmt.Sprintf("Contact %02d", i),
			Path:     fmt.Sprintf("/contacts/%d", i),
			Category: catalog.CategoryContact,
		})
	}
	return out
}

func TestEmptyQueryListsFirstEntriesUnranked(t *testing.T) {
	e := newEngine(client)

	for _, q := range []string{"", "   ", "\t\n"} {
		results := e.Search(q)
		require.Len(t, results, DefaultEmptyLimit, "query %q", q)
		assert.Equal(t, "Dashboard", results[0].Title)
		for _, r := range results {
			assert.Nil(t, r.Metadata)
		}
	}
}

func TestEmptyQueryRespectsLimit(t *testing.T) {
	e := newEngine(client, WithEmptyLimit(3))

	assert.Equal(t, []string{"Dashboard", "Send Message", "Message History"}, titles(e.Search("")))
}

func TestDashboardForClient(t *testing.T) {
	results := newEngine(client).Search("dashboard")

	require.NotEmpty(t, results)
	assert.Contains(t, strings.ToLower(results[0].Title), "dashboard")
	assert.Equal(t, ScoreExact, results[0].Metadata.Score)
	assert.True(t, results[0].Metadata.ExactMatch)
	assertNoAdminLeak(t, results)
}

func TestDashboardForSuperAdmin(t *testing.T) {
	results := newEngine(superAdmin).Search("Dashboard")

	assert.Equal(t, []string{"Dashboard", "Admin Dashboard"}, titles(results))
	assert.Equal(t, ScoreExact, results[0].Metadata.Score)
	assert.Equal(t, ScoreTitle, results[1].Metadata.Score)
	assert.True(t, results[1].Metadata.TitleMatch)
	assert.False(t, results[1].Metadata.ExactMatch)
}

func TestWordsAreANDed(t *testing.T) {
	e := newEngine(superAdmin)

	results := e.Search("send message")
	require.NotEmpty(t, results)
	for _, r := range results {
		text := strings.ToLower(r.Title + " " + r.Description + " " + r.Path)
		assert.Contains(t, text, "send")
		assert.Contains(t, text, "message")
	}
	assert.Equal(t, "Send Message", results[0].Title)

	assert.Empty(t, e.Search("send zebra"))
}

func TestScoring(t *testing.T) {
	e := newEngine(client)

	results := e.Search("contacts")
	require.Equal(t, []string{"Contacts", "Contact Groups"}, titles(results))
	assert.Equal(t, ScoreExact, results[0].Metadata.Score)
	assert.Equal(t, ScorePartial, results[1].Metadata.Score)
	assert.False(t, results[1].Metadata.TitleMatch)
}

func TestExactPathMatch(t *testing.T) {
	results := newEngine(client).Search("/reports")

	require.Len(t, results, 1)
	assert.Equal(t, "Reports", results[0].Title)
	assert.True(t, results[0].Metadata.ExactMatch)
	assert.Equal(t, ScoreExact, results[0].Metadata.Score)
}

func TestTiesKeepCatalogOrder(t *testing.T) {
	results := newEngine(client).Search("message")

	assert.Equal(t, []string{"Send Message", "Message History", "Message Templates"}, titles(results))
	for _, r := range results {
		assert.Equal(t, ScoreTitle, r.Metadata.Score)
	}
}

func TestHigherScoresFirst(t *testing.T) {
	assert.Equal(t, []string{"Top Up", "Top Up History"}, titles(newEngine(client).Search("top up")))
}

func TestRankingIsMonotonic(t *testing.T) {
	e := newEngine(superAdmin, WithSources(staticSource("contacts", contactEntries(5))))
	for _, q := range []string{"a", "e", "message", "admin", "contact", "top", "s"} {
		results := e.Search(q)
		for i := 0; i+1 < len(results); i++ {
			assert.GreaterOrEqual(t, results[i].Metadata.Score, results[i+1].Metadata.Score, "query %q", q)
		}
	}
}

func TestResultCap(t *testing.T) {
	e := newEngine(superAdmin, WithSources(staticSource("contacts", contactEntries(30))))

	assert.Len(t, e.Search("contact"), DefaultMaxResults)
	assert.LessOrEqual(t, len(e.Search("e")), DefaultMaxResults)
	assert.LessOrEqual(t, len(e.Search("")), DefaultEmptyLimit)

	capped := newEngine(superAdmin, WithMaxResults(2))
	assert.Len(t, capped.Search("e"), 2)
}

func TestClientNeverSeesAdminPages(t *testing.T) {
	e := newEngine(client)
	for _, q := range []string{"", "client", "admin", "review", "management", "tokens", "settings"} {
		assertNoAdminLeak(t, e.Search(q))
	}
	assertNoAdminLeak(t, e.AllPages())
}

func TestTokensCarveOut(t *testing.T) {
	results := newEngine(client).Search("tokens")

	require.NotEmpty(t, results)
	assert.Equal(t, "/admin/tokens", results[0].Path)
}

func TestAnonymousIsRestricted(t *testing.T) {
	e := newEngine(identity.Anonymous())

	assert.False(t, e.IsSuperAdmin())
	assertNoAdminLeak(t, e.AllPages())
}

func TestAllPagesForSuperAdmin(t *testing.T) {
	e := newEngine(superAdmin, WithSources(staticSource("contacts", contactEntries(2))))

	paths := map[string]bool{}
	for _, r := range e.AllPages() {
		assert.Equal(t, catalog.CategoryPage, r.Category)
		assert.Nil(t, r.Metadata)
		paths[r.Path] = true
	}
	assert.True(t, paths["/admin/dashboard"])
	assert.Len(t, e.AllPages(), len(catalog.Build(true)))
}

func TestSourcesAreFilteredForClients(t *testing.T) {
	src := staticSource("directory", []catalog.Entry{
		{ID: "client-5", Title: "Acme Client", Path: "/admin/clients/5", Category: catalog.CategoryClient},
		{ID: "token-9", Title: "Acme Token", Path: "/admin/tokens/9", Category: catalog.CategoryPage},
		{ID: "group-1", Title: "Acme Group", Path: "/contacts/groups/1", Category: catalog.CategoryGroup},
	})

	clientResults := newEngine(client, WithSources(src)).Search("acme")
	assert.Equal(t, []string{"Acme Token", "Acme Group"}, titles(clientResults))

	adminResults := newEngine(superAdmin, WithSources(src)).Search("acme")
	assert.Equal(t, []string{"Acme Client", "Acme Token", "Acme Group"}, titles(adminResults))
}

func TestFailingSourceIsSkipped(t *testing.T) {
	broken := new(MockSource)
	broken.On("Name").Return("broken")
	broken.On("Entries", mock.Anything).Return(nil, errors.New("database is locked"))
	working := new(MockSource)
	working.On("Name").Return("working")
	working.On("Entries", mock.Anything).Return(contactEntries(1), nil)

	e := newEngine(client, WithSources(broken, working))

	assert.Equal(t, []string{"Contact 01"}, titles(e.Search("contact 01")))
	broken.AssertExpectations(t)
	working.AssertExpectations(t)
}

func TestSourcesKeepDeclarationOrder(t *testing.T) {
	var sources []Source
	var want []string
	for i := 1; i <= 8; i++ {
		title := fmt.Sprintf("Broadcast list %d", i)
		want = append(want, title)
		sources = append(sources, staticSource(title, []catalog.Entry{{
			ID:       fmt.Sprintf("group-%d", i),
			Title:    title,
			Path:     fmt.Sprintf("/contacts/groups/%d", i),
			Category: catalog.CategoryGroup,
		}}))
	}

	e := newEngine(client, WithSources(sources...))

	assert.Equal(t, want, titles(e.Search("broadcast")))
}

func TestForIdentityRebuildsCatalog(t *testing.T) {
	e := newEngine(client, WithMaxResults(5))
	admin := e.ForIdentity(context.Background(), superAdmin)

	assert.True(t, admin.IsSuperAdmin())
	assert.Equal(t, superAdmin, admin.Identity())
	assert.Greater(t, len(admin.AllPages()), len(e.AllPages()))
	assert.LessOrEqual(t, len(admin.Search("e")), 5)
}

func TestWithProvider(t *testing.T) {
	e := newEngine(client, WithProvider(NewSubstringProvider()))

	assert.Equal(t, "substring", e.ProviderName())
	assert.Empty(t, e.Search("message send"))
	assert.NotEmpty(t, e.Search("send message"))

	re := newEngine(client, WithProvider(NewRegexProvider()))
	assert.Equal(t, []string{"Dashboard"}, titles(re.Search(`^dash`)))
}

func TestSearchIsIndependentPerCall(t *testing.T) {
	e := newEngine(client)

	first := e.Search("dashboard")
	first[0].Title = "mutated"
	first[0].Metadata.Score = 1

	second := e.Search("dashboard")
	assert.Equal(t, "Dashboard", second[0].Title)
	assert.Equal(t, ScoreExact, second[0].Metadata.Score)
}

type staticSourceImpl struct {
	name    string
	entries []catalog.Entry
}

func (s staticSourceImpl) Name() string { return s.name }
func (s staticSourceImpl) Entries(context.Context) ([]catalog.Entry, error) {
	return s.entries, nil
}

func staticSource(name string, entries []catalog.Entry) Source {
	return staticSourceImpl{name: name, entries: entries}
}
