package search

import (
	"strings"

	"github.com/smsportal/portal-console/internal/catalog"
)

// SubstringProvider matches when the whole query, spaces included, is a
// substring of the searched text.
type SubstringProvider struct {
	opts Options
}

// NewSubstringProvider creates a new substring search provider.
func NewSubstringProvider(opts ...Option) Provider {
	return &SubstringProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if the entry text contains query.
func (p *SubstringProvider) Match(entry catalog.Entry, query string) bool {
	if query == "" {
		return true
	}
	if p.opts.CaseInsensitive {
		query = strings.ToLower(query)
	}
	return strings.Contains(haystack(entry, p.opts), query)
}

// Name returns the provider name.
func (p *SubstringProvider) Name() string {
	return "substring"
}
