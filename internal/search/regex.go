package search

import (
	"regexp"
	"sync"

	"github.com/smsportal/portal-console/internal/catalog"
)

// maxCachedPatterns bounds the compiled pattern cache. Interactive use
// compiles one pattern per keystroke, so the cache is cleared when full.
const maxCachedPatterns = 64

// RegexProvider treats the query as a regular expression over the searched text.
type RegexProvider struct {
	opts    Options
	cache   map[string]*regexp.Regexp
	cacheMu sync.RWMutex
}

// NewRegexProvider creates a new regex search provider.
func NewRegexProvider(opts ...Option) Provider {
	return &RegexProvider{
		opts:  applyOptions(opts),
		cache: make(map[string]*regexp.Regexp),
	}
}

// Match returns true if the pattern matches the entry text. An invalid
// pattern matches nothing.
func (p *RegexProvider) Match(entry catalog.Entry, query string) bool {
	if query == "" {
		return true
	}
	re, err := p.getRegex(query)
	if err != nil {
		return false
	}
	return re.MatchString(haystack(entry, p.opts))
}

// getRegex returns a compiled regex for the given pattern, using cache.
func (p *RegexProvider) getRegex(pattern string) (*regexp.Regexp, error) {
	p.cacheMu.RLock()
	re, ok := p.cache[pattern]
	p.cacheMu.RUnlock()
	if ok {
		return re, nil
	}

	expr := pattern
	if p.opts.CaseInsensitive {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	p.cacheMu.Lock()
	if len(p.cache) >= maxCachedPatterns {
		clear(p.cache)
	}
	p.cache[pattern] = re
	p.cacheMu.Unlock()
	return re, nil
}

// cached returns the number of compiled patterns held.
func (p *RegexProvider) cached() int {
	p.cacheMu.RLock()
	defer p.cacheMu.RUnlock()
	return len(p.cache)
}

// Name returns the provider name.
func (p *RegexProvider) Name() string {
	return "regex"
}

// ProviderByName returns the provider registered under name, or nil.
func ProviderByName(name string, opts ...Option) Provider {
	switch name {
	case "token", "":
		return NewTokenProvider(opts...)
	case "substring":
		return NewSubstringProvider(opts...)
	case "regex":
		return NewRegexProvider(opts...)
	default:
		return nil
	}
}
