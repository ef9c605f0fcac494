/*
Package dom wraps HTML parse trees (golang.org/x/net/html) with a thin
W3C-flavored API: documents, elements, selector queries and class-list
mutation.

The package is deliberately small. It does not style, lay out or render
anything; it provides just enough of a DOM for a fragment trigger to find
elements by CSS selector and toggle classes on them. Selector matching is
delegated to cascadia
(https://godoc.org/github.com/andybalholm/cascadia).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anim.dom'.
func tracer() tracing.Trace {
	return tracing.Select("anim.dom")
}
