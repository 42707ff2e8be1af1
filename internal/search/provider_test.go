package search

import (
	"fmt"
	"testing"

	"github.com/smsportal/portal-console/internal/catalog"
	"github.com/stretchr/testify/assert"
)

var sendPage = catalog.Entry{
	ID:          "page-messaging-send",
	Title:       "Send Message",
	Description: "Compose and send a single or bulk SMS",
	Path:        "/messaging/send",
	Category:    catalog.CategoryPage,
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.True(t, opts.CaseInsensitive)
	assert.Equal(t, []string{FieldTitle, FieldDescription, FieldPath}, opts.Fields)
}

func TestOptions(t *testing.T) {
	opts := DefaultOptions()
	WithCaseInsensitive(false)(&opts)
	WithFields([]string{FieldPath})(&opts)

	assert.False(t, opts.CaseInsensitive)
	assert.Equal(t, []string{FieldPath}, opts.Fields)
}

func TestHaystack(t *testing.T) {
	assert.Equal(t, "send message compose and send a single or bulk sms /messaging/send", haystack(sendPage, DefaultOptions()))
	assert.Equal(t, "Send Message /messaging/send", haystack(sendPage, Options{Fields: []string{FieldTitle, FieldPath}}))
}

func TestTokenProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		query    string
		expected bool
	}{
		{"empty query matches all", NewTokenProvider(), "", true},
		{"whitespace query matches all", NewTokenProvider(), "   ", true},
		{"single word in title", NewTokenProvider(), "send", true},
		{"all words present", NewTokenProvider(), "send message", true},
		{"words across fields", NewTokenProvider(), "bulk messaging", true},
		{"one word missing", NewTokenProvider(), "send invoice", false},
		{"case insensitive", NewTokenProvider(), "SEND SMS", true},
		{"case sensitive miss", NewTokenProvider(WithCaseInsensitive(false)), "compose", false},
		{"restricted fields", NewTokenProvider(WithFields([]string{FieldPath})), "compose", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.provider.Match(sendPage, tt.query))
		})
	}
	assert.Equal(t, "token", NewTokenProvider().Name())
}

func TestSubstringProvider(t *testing.T) {
	p := NewSubstringProvider()

	assert.True(t, p.Match(sendPage, ""))
	assert.True(t, p.Match(sendPage, "send message"))
	assert.False(t, p.Match(sendPage, "message send"), "word order matters")
	assert.Equal(t, "substring", p.Name())
}

func TestRegexProvider(t *testing.T) {
	p := NewRegexProvider()

	assert.True(t, p.Match(sendPage, ""))
	assert.True(t, p.Match(sendPage, `^send\s+message`))
	assert.True(t, p.Match(sendPage, `/messaging/(send|history)$`))
	assert.False(t, p.Match(sendPage, `^message`))
	assert.False(t, p.Match(sendPage, `([`), "invalid pattern matches nothing")
	assert.Equal(t, "regex", p.Name())
}

func TestRegexProviderCacheIsBounded(t *testing.T) {
	p := NewRegexProvider().(*RegexProvider)

	for i := range maxCachedPatterns * 3 {
		p.Match(sendPage, fmt.Sprintf("send.{0,%d}", i))
		assert.LessOrEqual(t, p.cached(), maxCachedPatterns)
	}
	assert.Positive(t, p.cached())
	assert.True(t, p.Match(sendPage, `^send`), "matching still works after the cache is cleared")
}

func TestProviderByName(t *testing.T) {
	assert.Equal(t, "token", ProviderByName("").Name())
	assert.Equal(t, "token", ProviderByName("token").Name())
	assert.Equal(t, "substring", ProviderByName("substring").Name())
	assert.Equal(t, "regex", ProviderByName("regex").Name())
	assert.Nil(t, ProviderByName("fuzzy"))
}
