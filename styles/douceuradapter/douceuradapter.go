/*
Package douceuradapter is a concrete implementation of interface
styles.StyleSheet, backed by the douceur CSS parser.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/anim/dom"
	"github.com/npillmayer/anim/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface styles.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS source text into a stylesheet.
func Parse(source string) (*CSSStyles, error) {
	sheet, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	return &CSSStyles{*css}
}

// Empty checks if this stylesheet contains any rules.
//
// Interface styles.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface styles.StyleSheet
func (sheet *CSSStyles) AppendRules(other styles.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface styles.StyleSheet
func (sheet *CSSStyles) Rules() []styles.Rule {
	rules := make([]styles.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ styles.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface styles.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule, e.g. "transition".
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property value for a given key within this rule,
// e.g. "transform 2s".
func (r Rule) Value(key string) styles.Property {
	for _, d := range r.Declarations {
		if d.Property == key {
			return styles.Property(d.Value)
		}
	}
	return styles.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

var _ styles.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> of a document and
// searches for embedded <style>s. It returns the content of the
// style-elements as stylesheets. Style elements with unparsable content
// are skipped.
func ExtractStyleElements(doc *dom.Document) []*CSSStyles {
	var sheets []*CSSStyles
	root := doc.Root().HTMLNode()
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		if section := findElement(a, root); section != nil {
			sheets = append(sheets, extractStyles(section)...)
		}
	}
	return sheets
}

func extractStyles(h *html.Node) []*CSSStyles {
	var sheets []*CSSStyles
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		sheet, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			continue
		}
		sheets = append(sheets, Wrap(sheet))
	}
	return sheets
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
