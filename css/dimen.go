/*
Package css provides an option type for CSS dimension values.

Demo animations move elements by fixed distances (transform/translate);
package styles uses DimenT to expose those distances without committing
clients to a unit. DimenT values are matched, not unwrapped.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// pxUnit is the CSS reference pixel, 3/4 of a DTP point.
const pxUnit = dimen.PT * 3 / 4

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

// Auto creates the CSS dimension keyword value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates the CSS dimension keyword value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates the CSS dimension keyword value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// IsNone is true for the zero value of DimenT, i.e. no dimension set.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// ParseDimen parses a CSS dimension value from a declaration, e.g. `400px`,
// `12pt`, `75%`, `auto`. Unparsable input yields the zero (none) value;
// callers match on the result rather than checking errors.
func ParseDimen(v string) DimenT {
	v = strings.ToLower(strings.TrimSpace(v))
	switch v {
	case "":
		return DimenT{}
	case "auto":
		return Auto()
	case "inherit":
		return Inherit()
	case "initial":
		return Initial()
	}
	switch {
	case strings.HasSuffix(v, "%"):
		n, err := strconv.Atoi(strings.TrimSuffix(v, "%"))
		if err != nil {
			return DimenT{}
		}
		return Percentage(percent.FromInt(n))
	case strings.HasSuffix(v, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
		if err != nil {
			return DimenT{}
		}
		return JustDimen(dimen.DU(f * float64(pxUnit)))
	case strings.HasSuffix(v, "pt"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "pt"), 64)
		if err != nil {
			return DimenT{}
		}
		return JustDimen(dimen.DU(f * float64(dimen.PT)))
	}
	return DimenT{}
}

// --- Matching --------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

// IsKind matches if d is of the same kind as the matched dimension,
// disregarding the numeric value.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		if (m.dimen.flags&relativeMask > 0) != (d.flags&relativeMask > 0) {
			return nil
		}
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches a fixed dimension and moves its value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension and moves its value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns is the set of result values for an expression match on a
// DimenT, one per kind.
type DimenPatterns[T any] struct {
	None    T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression match on a DimenT.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	if m.dimen.flags == dimenNone {
		return patterns.None
	}
	return patterns.Default
}

// With moves the numeric value of the dimension into du, for use within a
// pattern expression.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const is a convenience helper to produce a pattern result after With.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
