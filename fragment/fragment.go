/*
Package fragment parses URL fragment identifiers of the form

	[lang:]selector:className

into a Descriptor. The fragment acts as an ad-hoc mini-configuration string
for article pages: it names a set of elements (by CSS selector) and a class
to put on them, with an optional language prefix for the document.

Parsing is pure: no DOM access, no global state. Applying a Descriptor to a
document is the concern of the root package.

Recognition of language prefixes is an optional capability, switched on with
option Languages. Without it, a leading token is never consumed as a
language, even if it looks like one.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fragment

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anim.fragment'.
func tracer() tracing.Trace {
	return tracing.Select("anim.fragment")
}

// DefaultFallback is the language written when the language capability is
// enabled but the fragment carries no recognized prefix.
const DefaultFallback = "ru"

// Descriptor is the parsed form of a fragment identifier. A zero field
// means the fragment did not carry the corresponding part.
type Descriptor struct {
	Language  string // document language to set, empty = leave untouched
	Selector  string // CSS selector naming the elements to mutate
	ClassName string // class token to add to each match
}

// IsZero is true for descriptors parsed from an absent fragment.
// Applying a zero descriptor has no effect whatsoever.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Target returns the selector/class pair of a descriptor. ok will only be
// true if both are present; a fragment with fewer than two usable tokens
// names no target and must not cause a DOM mutation.
func (d Descriptor) Target() (selector, class string, ok bool) {
	if d.Selector == "" || d.ClassName == "" {
		return "", "", false
	}
	return d.Selector, d.ClassName, true
}

// Option configures a call to Parse.
type Option func(*config)

type config struct {
	languages []string
	fallback  string
}

// Languages enables the language-prefix capability: a first token equal to
// one of the given codes is consumed and put into Descriptor.Language.
// A non-empty fragment without a recognized prefix gets the fallback
// language instead, without consuming a token.
func Languages(langs ...string) Option {
	return func(cfg *config) {
		cfg.languages = langs
	}
}

// Fallback sets the language used when the language capability is enabled
// but no recognized prefix is present. Default is DefaultFallback.
func Fallback(lang string) Option {
	return func(cfg *config) {
		cfg.fallback = lang
	}
}

// Parse splits a fragment identifier into a Descriptor. A single leading
// '#' is stripped, so callers may pass either the bare fragment or a
// location-hash style string.
//
// An empty fragment yields the zero Descriptor. Tokens after the class
// name are ignored.
func Parse(raw string, opts ...Option) Descriptor {
	cfg := config{fallback: DefaultFallback}
	for _, opt := range opts {
		opt(&cfg)
	}
	raw = strings.TrimPrefix(raw, "#")
	if raw == "" {
		return Descriptor{}
	}
	tokens := strings.Split(raw, ":")
	var d Descriptor
	if len(cfg.languages) > 0 {
		if isLanguage(tokens[0], cfg.languages) {
			d.Language = tokens[0]
			tokens = tokens[1:]
		} else {
			d.Language = cfg.fallback
		}
	}
	if len(tokens) > 0 {
		d.Selector = tokens[0]
	}
	if len(tokens) > 1 {
		d.ClassName = tokens[1]
	}
	tracer().Debugf("fragment %q parsed to %v", raw, d)
	return d
}

func isLanguage(token string, langs []string) bool {
	for _, l := range langs {
		if token == l {
			return true
		}
	}
	return false
}
