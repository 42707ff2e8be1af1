package search

import (
	"context"
	"sort"
	"strings"

	"github.com/smsportal/portal-console/internal/catalog"
	"github.com/smsportal/portal-console/internal/config"
	"github.com/smsportal/portal-console/internal/identity"
	"github.com/smsportal/portal-console/internal/logging"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultMaxResults caps ranked results for a non-empty query.
	DefaultMaxResults = 20
	// DefaultEmptyLimit caps the unranked listing for an empty query.
	DefaultEmptyLimit = 10
)

// Relevance scores.
const (
	ScoreExact   = 100
	ScoreTitle   = 80
	ScorePartial = 50
)

const (
	adminPrefix  = "/admin/"
	tokensPrefix = "/admin/tokens"
)

// Metadata is the ranking output attached to a scored result.
type Metadata struct {
	Score      int  `json:"score"`
	ExactMatch bool `json:"exactMatch"`
	TitleMatch bool `json:"titleMatch"`
}

// Result is one search hit, built fresh for every query.
type Result struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Path        string           `json:"path"`
	Category    catalog.Category `json:"category"`
	Icon        string           `json:"icon,omitempty"`
	Metadata    *Metadata        `json:"metadata,omitempty"`
}

// Source contributes extra entries (contacts, groups, ...) to the catalog.
type Source interface {
	Name() string
	Entries(ctx context.Context) ([]catalog.Entry, error)
}

// Engine holds the privilege-filtered catalog for one caller. It is
// read-only after construction and safe for concurrent use.
type Engine struct {
	identity   identity.Identity
	superAdmin bool
	entries    []catalog.Entry
	settings   engineSettings
}

type engineSettings struct {
	provider   Provider
	maxResults int
	emptyLimit int
	sources    []Source
	logger     logging.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineSettings)

// WithProvider replaces the token matcher.
func WithProvider(p Provider) EngineOption {
	return func(s *engineSettings) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithMaxResults sets the ranked result cap. Values < 1 are ignored.
func WithMaxResults(n int) EngineOption {
	return func(s *engineSettings) {
		if n >= 1 {
			s.maxResults = n
		}
	}
}

// WithEmptyLimit sets how many entries an empty query lists. Values < 1 are ignored.
func WithEmptyLimit(n int) EngineOption {
	return func(s *engineSettings) {
		if n >= 1 {
			s.emptyLimit = n
		}
	}
}

// WithSources appends entries from extra sources after the pages.
func WithSources(sources ...Source) EngineOption {
	return func(s *engineSettings) {
		s.sources = append(s.sources, sources...)
	}
}

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) EngineOption {
	return func(s *engineSettings) {
		if l != nil {
			s.logger = l
		}
	}
}

// EngineOptionsFromConfig reads search_max_results and search_empty_limit.
func EngineOptionsFromConfig() []EngineOption {
	return []EngineOption{
		WithMaxResults(config.GetInt("search_max_results", DefaultMaxResults)),
		WithEmptyLimit(config.GetInt("search_empty_limit", DefaultEmptyLimit)),
	}
}

// New builds an engine for the caller. Source failures are logged and the
// failing source is skipped; construction itself never fails.
func New(ctx context.Context, id identity.Identity, opts ...EngineOption) *Engine {
	settings := engineSettings{
		provider:   NewTokenProvider(),
		maxResults: DefaultMaxResults,
		emptyLimit: DefaultEmptyLimit,
	}
	for _, opt := range opts {
		opt(&settings)
	}
	if settings.logger == nil {
		settings.logger = logging.With("component", "search")
	}
	return build(ctx, id, settings)
}

// ForIdentity returns an engine with the same options for another caller.
func (e *Engine) ForIdentity(ctx context.Context, id identity.Identity) *Engine {
	return build(ctx, id, e.settings)
}

func build(ctx context.Context, id identity.Identity, settings engineSettings) *Engine {
	superAdmin := id.IsSuperAdmin()
	candidates := catalog.Build(superAdmin)
	for _, entries := range loadSources(ctx, settings.sources, settings.logger) {
		candidates = append(candidates, entries...)
	}

	entries := make([]catalog.Entry, 0, len(candidates))
	for _, entry := range candidates {
		if allowed(entry.Path, superAdmin) {
			entries = append(entries, entry)
		}
	}
	return &Engine{
		identity:   id,
		superAdmin: superAdmin,
		entries:    entries,
		settings:   settings,
	}
}

// maxSourceLoads bounds how many sources are read at once.
const maxSourceLoads = 4

// loadSources reads every source concurrently. The result is indexed like
// sources; a failing source leaves its slot empty.
func loadSources(ctx context.Context, sources []Source, logger logging.Logger) [][]catalog.Entry {
	loaded := make([][]catalog.Entry, len(sources))
	var g errgroup.Group
	g.SetLimit(maxSourceLoads)
	for i, src := range sources {
		g.Go(func() error {
			entries, err := src.Entries(ctx)
			if err != nil {
				logger.Warn("search source failed", "source", src.Name(), "error", err)
				return nil
			}
			logger.Debug("search source loaded", "source", src.Name(), "entries", len(entries))
			loaded[i] = entries
			return nil
		})
	}
	_ = g.Wait()
	return loaded
}

// allowed hides admin destinations from callers who are not super admins,
// except the token pages nested under the admin prefix.
func allowed(path string, superAdmin bool) bool {
	if superAdmin {
		return true
	}
	return !strings.HasPrefix(path, adminPrefix) || strings.HasPrefix(path, tokensPrefix)
}

// Identity returns the caller the engine was built for.
func (e *Engine) Identity() identity.Identity {
	return e.identity
}

// IsSuperAdmin reports whether admin destinations are visible.
func (e *Engine) IsSuperAdmin() bool {
	return e.superAdmin
}

// ProviderName returns the name of the matcher in use.
func (e *Engine) ProviderName() string {
	return e.settings.provider.Name()
}

// AllPages returns every page the caller may open, in catalog order,
// without ranking metadata.
func (e *Engine) AllPages() []Result {
	out := make([]Result, 0, len(e.entries))
	for _, entry := range e.entries {
		if entry.Category == catalog.CategoryPage {
			out = append(out, toResult(entry, nil))
		}
	}
	return out
}

// Search returns the entries matching query, most relevant first.
//
// The query is trimmed and lowercased. A blank query lists the first
// entries of the catalog unranked. Otherwise every query word must occur
// in the entry's title, description or path; exact title or path matches
// score 100, title substring matches 80, anything else 50. Equal scores
// keep catalog order.
func (e *Engine) Search(query string) []Result {
	trimmed := strings.TrimSpace(query)
	q := strings.ToLower(trimmed)
	if q == "" {
		n := min(e.settings.emptyLimit, len(e.entries))
		out := make([]Result, 0, n)
		for _, entry := range e.entries[:n] {
			out = append(out, toResult(entry, nil))
		}
		return out
	}

	var out []Result
	for _, entry := range e.entries {
		if !e.settings.provider.Match(entry, trimmed) {
			continue
		}
		out = append(out, toResult(entry, score(entry, q)))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Metadata.Score > out[j].Metadata.Score
	})
	if len(out) > e.settings.maxResults {
		out = out[:e.settings.maxResults]
	}
	e.settings.logger.Debug("search", "provider", e.ProviderName(), "query_len", len(q), "results", len(out))
	return out
}

// score ranks a matching entry against the normalized query.
func score(entry catalog.Entry, q string) *Metadata {
	title := strings.ToLower(entry.Title)
	m := &Metadata{
		ExactMatch: title == q || strings.ToLower(entry.Path) == q,
		TitleMatch: strings.Contains(title, q),
	}
	switch {
	case m.ExactMatch:
		m.Score = ScoreExact
	case m.TitleMatch:
		m.Score = ScoreTitle
	default:
		m.Score = ScorePartial
	}
	return m
}

func toResult(entry catalog.Entry, meta *Metadata) Result {
	return Result{
		ID:          entry.ID,
		Title:       entry.Title,
		Description: entry.Description,
		Path:        entry.Path,
		Category:    entry.Category,
		Icon:        entry.Icon,
		Metadata:    meta,
	}
}
