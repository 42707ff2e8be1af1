package search

import (
	"strings"

	"github.com/smsportal/portal-console/internal/catalog"
)

// TokenProvider splits the query on whitespace and requires every token
// to appear in the searched text (AND logic).
type TokenProvider struct {
	opts Options
}

// NewTokenProvider creates a new token search provider.
func NewTokenProvider(opts ...Option) Provider {
	return &TokenProvider{
		opts: applyOptions(opts),
	}
}

// Match returns true if every token of query is a substring of the entry text.
// A blank query matches everything.
func (p *TokenProvider) Match(entry catalog.Entry, query string) bool {
	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return true
	}
	text := haystack(entry, p.opts)
	for _, token := range tokens {
		if p.opts.CaseInsensitive {
			token = strings.ToLower(token)
		}
		if !strings.Contains(text, token) {
			return false
		}
	}
	return true
}

// Name returns the provider name.
func (p *TokenProvider) Name() string {
	return "token"
}
