package dom

import (
	"errors"
	"io"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocument is returned when a Document is constructed from a nil or
// element-less parse tree.
var ErrNoDocument = errors.New("no document root element")

// Document wraps an HTML parse tree. The tree is mutated in place; a
// Document holds no state of its own besides node references.
type Document struct {
	docNode *html.Node // node the queries start at, usually of type html.DocumentNode
	root    *html.Node // the <html> element
}

// FromHTML reads and parses HTML content and wraps the resulting tree
// into a Document.
func FromHTML(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromNode(h)
}

// FromNode wraps an already parsed tree. n will usually be a node of type
// html.DocumentNode, as returned by html.Parse, but wrapping a subtree
// rooted at an element works, too.
func FromNode(n *html.Node) (*Document, error) {
	if n == nil {
		return nil, ErrNoDocument
	}
	root := findElement(n, atom.Html)
	if root == nil {
		if n.Type != html.ElementNode {
			return nil, ErrNoDocument
		}
		root = n
	}
	return &Document{docNode: n, root: root}, nil
}

// Root returns the document's root element, i.e. <html> for complete
// documents.
func (doc *Document) Root() *Element {
	return &Element{node: doc.root}
}

// HTMLNode returns the underlying parse-tree node of the document.
func (doc *Document) HTMLNode() *html.Node {
	return doc.docNode
}

// Language reads the language attribute of the document's root element.
func (doc *Document) Language() string {
	return doc.Root().Attr("lang")
}

// SetLanguage writes the language attribute of the document's root
// element.
func (doc *Document) SetLanguage(lang string) {
	doc.Root().SetAttr("lang", lang)
}

// QuerySelectorAll returns all elements matching a CSS selector, in
// document order. An invalid selector reports the compile error of the
// selector engine, untranslated.
func (doc *Document) QuerySelectorAll(selector string) (NodeList, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return NodeList{}, err
	}
	matches := sel.MatchAll(doc.docNode)
	elements := make([]*Element, len(matches))
	for i, m := range matches {
		elements[i] = &Element{node: m}
	}
	tracer().Debugf("selector %q matched %d element(s)", selector, len(elements))
	return NodeList{elements: elements}, nil
}

// QuerySelector returns the first element matching a CSS selector, or nil
// for no match.
func (doc *Document) QuerySelector(selector string) (*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	m := sel.MatchFirst(doc.docNode)
	if m == nil {
		return nil, nil
	}
	return &Element{node: m}, nil
}

// AddClass adds a class token to every element matching selector and
// returns the number of matched elements. Adding is idempotent per
// element (class-set semantics).
func (doc *Document) AddClass(selector, class string) (int, error) {
	list, err := doc.QuerySelectorAll(selector)
	if err != nil {
		return 0, err
	}
	for _, e := range list.Elements() {
		e.ClassList().Add(class)
	}
	return list.Length(), nil
}

// findElement searches the subtree under h for the first element with the
// given tag.
func findElement(h *html.Node, a atom.Atom) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(ch, a); r != nil {
			return r
		}
	}
	return nil
}
