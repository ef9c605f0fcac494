package dom

import "strings"

// NodeList is an ordered list of elements, usually the result of a
// selector query.
type NodeList struct {
	elements []*Element
}

// Length returns the number of elements in the list.
func (l NodeList) Length() int {
	return len(l.elements)
}

// Item returns the element at position i, or nil for an out-of-range
// index.
func (l NodeList) Item(i int) *Element {
	if i < 0 || i >= len(l.elements) {
		return nil
	}
	return l.elements[i]
}

// Elements returns the elements of the list as a slice.
func (l NodeList) Elements() []*Element {
	return l.elements
}

func (l NodeList) String() string {
	names := make([]string, len(l.elements))
	for i, e := range l.elements {
		names[i] = e.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}
