/*
Package styles provides access to the stylesheets of a document and an
inspection index for CSS-driven animations.

Stylesheet access goes through a small interface pair (StyleSheet, Rule),
decoupling consumers from a concrete CSS parser; the canonical
implementation is backed by douceur (see sub-package douceuradapter).
A fragment trigger toggles classes whose rules carry transitions or
keyframe animations; type AnimationIndex tells which classes those are and
what they animate.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package styles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'anim.styles'.
func tracer() tracing.Trace {
	return tracing.Select("anim.styles")
}
