/*
Package domdbg implements helpers to debug a DOM tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"io"
	"strings"

	"github.com/npillmayer/anim/dom"
	"github.com/xlab/treeprint"
)

// String renders the DOM tree under doc as an indented text tree.
// Element labels carry id, classes and language attribute, which is
// usually all one needs to see when debugging a fragment trigger.
func String(doc *dom.Document) string {
	tree := treeprint.New()
	root := doc.Root()
	branch := tree.AddBranch(label(root))
	descend(root, branch)
	return tree.String()
}

// Print writes the text rendering of the DOM tree under doc to w.
func Print(doc *dom.Document, w io.Writer) error {
	_, err := io.WriteString(w, String(doc))
	return err
}

func descend(e *dom.Element, branch treeprint.Tree) {
	for _, ch := range e.Children() {
		if len(ch.Children()) == 0 {
			branch.AddNode(label(ch))
			continue
		}
		descend(ch, branch.AddBranch(label(ch)))
	}
}

func label(e *dom.Element) string {
	l := e.NodeName()
	if id := e.Attr("id"); id != "" {
		l += "#" + id
	}
	if classes := strings.Fields(e.Attr("class")); len(classes) > 0 {
		l += "." + strings.Join(classes, ".")
	}
	if lang := e.Attr("lang"); lang != "" {
		l += " [lang=" + lang + "]"
	}
	return l
}
