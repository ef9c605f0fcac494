package styles

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

// fakeSheet is a minimal in-memory StyleSheet for testing the index.
type fakeSheet []fakeRule

type fakeRule struct {
	selector string
	decls    []KeyValue
}

func (s fakeSheet) Empty() bool            { return len(s) == 0 }
func (s fakeSheet) AppendRules(StyleSheet) {}
func (s fakeSheet) Rules() []Rule {
	rules := make([]Rule, len(s))
	for i, r := range s {
		rules[i] = r
	}
	return rules
}

func (r fakeRule) Selector() string { return r.selector }
func (r fakeRule) Properties() []string {
	keys := make([]string, len(r.decls))
	for i, d := range r.decls {
		keys[i] = d.Key
	}
	return keys
}
func (r fakeRule) Value(key string) Property {
	for _, d := range r.decls {
		if d.Key == key {
			return d.Value
		}
	}
	return NullStyle
}
func (r fakeRule) IsImportant(string) bool { return false }

func demoSheet() fakeSheet {
	return fakeSheet{
		{".anim-left", []KeyValue{
			{"transition", "transform 2s ease-in"},
			{"transform", "translateX(400px)"},
		}},
		{".fade", []KeyValue{
			{"animation", "fadeout 300ms"},
		}},
		{".plain", []KeyValue{
			{"color", "red"},
		}},
		{"div.b", []KeyValue{ // compound selector, not indexable
			{"transition", "opacity 1s"},
		}},
	}
}

func TestAnimationsIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.styles")
	defer teardown()
	//
	ix := Animations(demoSheet())
	if len(ix) != 2 {
		t.Fatalf("expected 2 indexed classes, have %d: %v", len(ix), ix)
	}
	left, ok := ix.Lookup("anim-left")
	if !ok {
		t.Fatal("expected anim-left to be indexed, isn't")
	}
	if left.Transition != "transform" || left.Duration != 2*time.Second {
		t.Errorf("expected transition transform/2s, have %q/%s", left.Transition, left.Duration)
	}
	fade, _ := ix.Lookup("fade")
	if fade.Keyframes != "fadeout" || fade.Duration != 300*time.Millisecond {
		t.Errorf("expected keyframes fadeout/300ms, have %q/%s", fade.Keyframes, fade.Duration)
	}
	if ix.WillAnimate("plain") {
		t.Error("expected class without transition/animation not to animate, does")
	}
	if !ix.WillAnimate("anim-left") || !ix.WillAnimate("fade") {
		t.Error("expected anim-left and fade to animate, don't")
	}
}

func TestAnimationsMergeAcrossSheets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.styles")
	defer teardown()
	//
	base := fakeSheet{{".anim-left", []KeyValue{{"transition", "transform 2s"}}}}
	override := fakeSheet{{".anim-left", []KeyValue{{"transition-duration", "4s"}}}}
	ix := Animations(base, override)
	left, _ := ix.Lookup("anim-left")
	if left.Transition != "transform" || left.Duration != 4*time.Second {
		t.Errorf("expected later sheet to override duration, have %q/%s",
			left.Transition, left.Duration)
	}
}

func TestTransformDistance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.styles")
	defer teardown()
	//
	a := Animation{Transform: "translateX(400px)"}
	var du dimen.DU
	switch m := a.TransformDistance().Match(); m {
	case m.Just(&du):
		t.Logf("distance = %s", du)
	default:
		t.Errorf("expected a fixed translate distance, have %#v", a.TransformDistance())
	}
	b := Animation{Transform: "translate(50%, 0)"}
	if b.TransformDistance().Match().Percentage(nil) == nil {
		t.Error("expected a percentage translate distance, haven't")
	}
	c := Animation{}
	if !c.TransformDistance().IsNone() {
		t.Error("expected no distance without a transform, have one")
	}
	d := Animation{Transform: "rotate(45deg)"}
	if !d.TransformDistance().IsNone() {
		t.Error("expected unsupported unit to yield none, doesn't")
	}
}

func TestClassSelector(t *testing.T) {
	tests := []struct {
		sel   string
		class string
		ok    bool
	}{
		{".a", "a", true},
		{" .anim-left ", "anim-left", true},
		{"div", "", false},
		{".a .b", "", false},
		{".a:hover", "", false},
		{".a, .b", "", false},
		{".", "", false},
	}
	for _, tc := range tests {
		class, ok := classSelector(tc.sel)
		if class != tc.class || ok != tc.ok {
			t.Errorf("classSelector(%q) = (%q, %v), expected (%q, %v)",
				tc.sel, class, ok, tc.class, tc.ok)
		}
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in string
		d  time.Duration
		ok bool
	}{
		{"2s", 2 * time.Second, true},
		{".5s", 500 * time.Millisecond, true},
		{"300ms", 300 * time.Millisecond, true},
		{"0s", 0, true},
		{"fast", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		d, ok := ParseTime(Property(tc.in))
		if d != tc.d || ok != tc.ok {
			t.Errorf("ParseTime(%q) = (%s, %v), expected (%s, %v)", tc.in, d, ok, tc.d, tc.ok)
		}
	}
}
