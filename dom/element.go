package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element wraps an element node of an HTML parse tree.
type Element struct {
	node *html.Node
}

// AsElement wraps an HTML parse-tree node. It returns nil if n is not an
// element node.
func AsElement(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// HTMLNode returns the underlying parse-tree node of an element.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// NodeName returns the tag name of an element, e.g. "div".
func (e *Element) NodeName() string {
	return e.node.Data
}

// Attr returns the value of an attribute, or "" if it is not set.
func (e *Element) Attr(key string) string {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr checks for the existence of an attribute.
func (e *Element) HasAttr(key string) bool {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute, overwriting a present value.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// Children returns the element children of e, in document order.
// Text nodes and comments are not included.
func (e *Element) Children() []*Element {
	var children []*Element
	for ch := e.node.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, &Element{node: ch})
		}
	}
	return children
}

// ClassList returns a live view onto the element's class attribute.
func (e *Element) ClassList() *ClassList {
	return &ClassList{owner: e}
}

// ClassList reads and writes the class attribute of an element with set
// semantics: a class token is present at most once, and adding a present
// token is a no-op. Token order of first appearance is preserved on
// writes.
type ClassList struct {
	owner *Element
}

// Values returns the class tokens of the owning element, de-duplicated,
// in order of first appearance.
func (cl *ClassList) Values() []string {
	var classes []string
	for _, f := range strings.Fields(cl.owner.Attr("class")) {
		if !containsToken(classes, f) {
			classes = append(classes, f)
		}
	}
	return classes
}

// Length returns the number of distinct class tokens.
func (cl *ClassList) Length() int {
	return len(cl.Values())
}

// Has checks if a class token is present.
func (cl *ClassList) Has(class string) bool {
	return containsToken(cl.Values(), class)
}

// Add puts a class token onto the element. Adding an empty or already
// present token changes nothing.
func (cl *ClassList) Add(class string) {
	if class == "" || cl.Has(class) {
		return
	}
	cl.write(append(cl.Values(), class))
}

// Remove drops a class token from the element, if present.
func (cl *ClassList) Remove(class string) {
	if !cl.Has(class) {
		return
	}
	classes := cl.Values()
	kept := classes[:0]
	for _, c := range classes {
		if c != class {
			kept = append(kept, c)
		}
	}
	cl.write(kept)
}

func (cl *ClassList) write(classes []string) {
	cl.owner.SetAttr("class", strings.Join(classes, " "))
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
