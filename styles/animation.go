package styles

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/anim/css"
)

// Animation describes what adding a single class will animate, collected
// from the declarations of a class-selector rule.
type Animation struct {
	Class      string        // class token the rule selects on, without the leading dot
	Transition string        // transitioned property, e.g. "transform"
	Keyframes  string        // animation-name for keyframe animations
	Duration   time.Duration // transition- or animation-duration
	Transform  Property      // raw transform declaration, if any
}

// WillAnimate is true if applying the class starts a transition or a
// keyframe animation, as opposed to an instant style change.
func (a Animation) WillAnimate() bool {
	return a.Transition != "" || a.Keyframes != ""
}

// TransformDistance extracts the first dimension argument of the
// transform declaration, e.g. 400px out of "translateX(400px)". Rules
// without a transform, and transform functions without a dimension
// argument, yield the none-dimension.
func (a Animation) TransformDistance() css.DimenT {
	v := a.Transform.String()
	open := strings.IndexByte(v, '(')
	if open < 0 {
		return css.DimenT{}
	}
	arg := v[open+1:]
	if stop := strings.IndexAny(arg, ",)"); stop >= 0 {
		arg = arg[:stop]
	}
	return css.ParseDimen(strings.TrimSpace(arg))
}

// AnimationIndex maps class names to the animation their rule attaches.
type AnimationIndex map[string]Animation

// Animations scans stylesheets for single-class selector rules (".fade",
// ".anim-left") carrying transition, animation or transform declarations
// and indexes them by class name. Rules with any other selector shape are
// skipped: a fragment trigger toggles single classes only. Later sheets
// and rules overwrite declarations of earlier ones, mirroring document
// order semantics.
func Animations(sheets ...StyleSheet) AnimationIndex {
	index := make(AnimationIndex)
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			class, ok := classSelector(rule.Selector())
			if !ok {
				continue
			}
			anim, found := collectAnimation(class, rule)
			if !found {
				continue
			}
			if prev, exists := index[class]; exists {
				anim = merge(prev, anim)
			}
			tracer().Debugf("class %q animates: %+v", class, anim)
			index[class] = anim
		}
	}
	return index
}

// WillAnimate reports whether adding class to an element will start a
// transition or keyframe animation.
func (ix AnimationIndex) WillAnimate(class string) bool {
	a, ok := ix[class]
	return ok && a.WillAnimate()
}

// Lookup returns the indexed animation for a class name.
func (ix AnimationIndex) Lookup(class string) (Animation, bool) {
	a, ok := ix[class]
	return a, ok
}

// classSelector recognizes selectors consisting of exactly one class,
// e.g. ".anim-left". Compound and combined selectors do not qualify.
func classSelector(sel string) (string, bool) {
	sel = strings.TrimSpace(sel)
	if !strings.HasPrefix(sel, ".") {
		return "", false
	}
	class := sel[1:]
	if class == "" || strings.ContainsAny(class, " \t.>+~:[,#") {
		return "", false
	}
	return class, true
}

func collectAnimation(class string, rule Rule) (Animation, bool) {
	anim := Animation{Class: class}
	found := false
	for _, key := range rule.Properties() {
		val := rule.Value(key)
		switch key {
		case "transition":
			prop, dur := splitTimed(val)
			anim.Transition = prop
			if dur > 0 {
				anim.Duration = dur
			}
			found = true
		case "transition-property":
			anim.Transition = strings.TrimSpace(val.String())
			found = true
		case "animation":
			name, dur := splitTimed(val)
			anim.Keyframes = name
			if dur > 0 {
				anim.Duration = dur
			}
			found = true
		case "animation-name":
			anim.Keyframes = strings.TrimSpace(val.String())
			found = true
		case "transition-duration", "animation-duration":
			if dur, ok := ParseTime(val); ok {
				anim.Duration = dur
			}
			found = true
		case "transform":
			anim.Transform = val
			found = true
		}
	}
	return anim, found
}

// merge overlays the non-zero declarations of b onto a.
func merge(a, b Animation) Animation {
	if b.Transition != "" {
		a.Transition = b.Transition
	}
	if b.Keyframes != "" {
		a.Keyframes = b.Keyframes
	}
	if b.Duration != 0 {
		a.Duration = b.Duration
	}
	if !b.Transform.IsEmpty() {
		a.Transform = b.Transform
	}
	return a
}

// splitTimed splits a shorthand declaration value like "transform 2s
// ease-in" into the first non-time token and the first time value.
func splitTimed(p Property) (string, time.Duration) {
	var name string
	var dur time.Duration
	for _, field := range strings.Fields(p.String()) {
		if d, ok := ParseTime(Property(field)); ok {
			if dur == 0 {
				dur = d
			}
		} else if name == "" {
			name = field
		}
	}
	return name, dur
}

// ParseTime parses a CSS <time> value: "2s", ".5s", "300ms". Go's
// duration syntax is close but not identical (CSS allows a bare leading
// dot and disallows unit-less zero composition), so parsing is done here.
func ParseTime(p Property) (time.Duration, bool) {
	s := strings.TrimSpace(p.String())
	var unit time.Duration
	switch {
	case strings.HasSuffix(s, "ms"):
		unit, s = time.Millisecond, strings.TrimSuffix(s, "ms")
	case strings.HasSuffix(s, "s"):
		unit, s = time.Second, strings.TrimSuffix(s, "s")
	default:
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return time.Duration(f * float64(unit)), true
}
