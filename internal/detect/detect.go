// Package detect holds the text-detection capabilities the analyzers depend
// on. They are passed in explicitly so tests can substitute deterministic
// stubs for the lexicon-backed implementations.
package detect

import (
	"regexp"

	"github.com/forPelevin/gomoji"
	"mvdan.cc/xurls/v2"
)

// URLDetector finds URL-like substrings in a message body.
type URLDetector interface {
	FindURLs(text string) []string
}

// EmojiDetector classifies a single rune as an emoji glyph.
type EmojiDetector interface {
	IsEmoji(r rune) bool
}

// XURLs detects URLs with the relaxed xurls pattern, which also catches the
// bare domains chat users actually type.
type XURLs struct {
	re *regexp.Regexp
}

func NewXURLs() *XURLs {
	return &XURLs{re: xurls.Relaxed()}
}

func (x *XURLs) FindURLs(text string) []string {
	return x.re.FindAllString(text, -1)
}

// Gomoji classifies runes against the gomoji emoji table.
type Gomoji struct{}

func (Gomoji) IsEmoji(r rune) bool {
	return gomoji.ContainsEmoji(string(r))
}
