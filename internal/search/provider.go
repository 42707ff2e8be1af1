// Package search answers free-text queries against the catalog of
// navigable destinations and ranks the matches.
//
// Matching strategies (token, substring, regex) share the Provider
// interface; the Engine applies authorization, scoring and result caps on
// top of whichever provider it is given.
package search

import (
	"strings"

	"github.com/smsportal/portal-console/internal/catalog"
)

// Provider decides whether an entry matches a query.
type Provider interface {
	// Match returns true if the entry matches the search query.
	Match(entry catalog.Entry, query string) bool

	// Name returns the provider name for identification and debugging.
	Name() string
}

// Field names accepted by WithFields.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPath        = "path"
)

// Options holds configuration options for creating search providers.
type Options struct {
	CaseInsensitive bool     // If true, searches ignore case sensitivity
	Fields          []string // Fields joined into the searched text
}

// DefaultOptions returns the default search options: case-insensitive
// over title, description and path.
func DefaultOptions() Options {
	return Options{
		CaseInsensitive: true,
		Fields:          []string{FieldTitle, FieldDescription, FieldPath},
	}
}

// Option is a function that modifies search options.
type Option func(*Options)

// WithCaseInsensitive sets case-insensitive search.
func WithCaseInsensitive(enabled bool) Option {
	return func(o *Options) {
		o.CaseInsensitive = enabled
	}
}

// WithFields sets the fields to search in.
func WithFields(fields []string) Option {
	return func(o *Options) {
		o.Fields = fields
	}
}

// applyOptions applies the given options to the options struct.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// haystack joins the configured fields of entry with single spaces, in
// the order they were configured.
func haystack(entry catalog.Entry, opts Options) string {
	parts := make([]string, 0, len(opts.Fields))
	for _, field := range opts.Fields {
		switch field {
		case FieldTitle:
			parts = append(parts, entry.Title)
		case FieldDescription:
			parts = append(parts, entry.Description)
		case FieldPath:
			parts = append(parts, entry.Path)
		}
	}
	text := strings.Join(parts, " ")
	if opts.CaseInsensitive {
		text = strings.ToLower(text)
	}
	return text
}
