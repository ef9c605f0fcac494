/*
Package anim triggers CSS demo animations from URL fragment identifiers.

Article pages demonstrating GPU compositing carry elements whose
animations are started by adding a class; which elements and which class
is encoded in the URL fragment:

	#[lang:]selector:className

Apply runs the whole procedure: parse the fragment (package fragment,
pure), optionally set the document language, and add the class to every
element matching the selector. The DOM side is injected as a small
capability interface (Mutator), with package dom providing the canonical
implementation on top of golang.org/x/net/html parse trees.

An absent or incomplete fragment is a silent no-op. Class addition has
set semantics, so applying the same fragment twice leaves the class
present exactly once per element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package anim

import (
	"github.com/npillmayer/anim/dom"
	"github.com/npillmayer/anim/fragment"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anim.trigger'.
func tracer() tracing.Trace {
	return tracing.Select("anim.trigger")
}

// Mutator is the DOM-mutation capability a trigger needs. It decouples
// the linear apply procedure from a concrete document implementation;
// *dom.Document satisfies it.
type Mutator interface {
	// SetLanguage writes the document's root language attribute.
	SetLanguage(lang string)
	// AddClass adds a class token to every element matching a CSS
	// selector and returns the number of matched elements. Adding must be
	// idempotent per element.
	AddClass(selector, class string) (int, error)
}

var _ Mutator = &dom.Document{}

// Result reports what Apply did to a document.
type Result struct {
	Language string // language attribute written, empty for none
	Selector string // selector used for the class mutation, empty for none
	Class    string // class token added
	Matches  int    // number of elements the class was added to
}

// Apply parses a fragment identifier and applies it to m: set the
// document language if the descriptor carries one, then add the class to
// all elements matching the selector.
//
// An empty fragment returns the zero Result and touches nothing. A
// fragment with fewer than two usable tokens performs no DOM mutation
// (the language attribute may still be written when the language
// capability is configured). Selector errors are returned unchanged from
// the selector engine.
func Apply(m Mutator, raw string, opts ...fragment.Option) (Result, error) {
	d := fragment.Parse(raw, opts...)
	if d.IsZero() {
		tracer().Debugf("empty fragment, nothing to do")
		return Result{}, nil
	}
	result := Result{Language: d.Language}
	if d.Language != "" {
		m.SetLanguage(d.Language)
	}
	selector, class, ok := d.Target()
	if !ok {
		tracer().Debugf("fragment %q names no selector/class pair, no mutation", raw)
		return result, nil
	}
	result.Selector, result.Class = selector, class
	n, err := m.AddClass(selector, class)
	if err != nil {
		return result, err
	}
	result.Matches = n
	tracer().Infof("added class %q to %d element(s) matching %q", class, n, selector)
	return result, nil
}

// ApplyToDocument is Apply for the canonical DOM implementation.
func ApplyToDocument(doc *dom.Document, raw string, opts ...fragment.Option) (Result, error) {
	return Apply(doc, raw, opts...)
}
