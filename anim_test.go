package anim_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/anim"
	"github.com/npillmayer/anim/dom"
	"github.com/npillmayer/anim/fragment"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

// recorder is a Mutator that records the calls it receives.
type recorder struct {
	lang     string
	langSet  bool
	selector string
	class    string
	added    int
	err      error
}

func (r *recorder) SetLanguage(lang string) {
	r.lang = lang
	r.langSet = true
}

func (r *recorder) AddClass(selector, class string) (int, error) {
	r.selector, r.class = selector, class
	if r.err != nil {
		return 0, r.err
	}
	r.added++
	return 1, nil
}

func TestApplyEmptyFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	rec := &recorder{}
	result, err := anim.Apply(rec, "", fragment.Languages("ru", "en"))
	require.NoError(t, err)
	if result != (anim.Result{}) {
		t.Errorf("expected zero result for empty fragment, have %v", result)
	}
	if rec.langSet || rec.added > 0 {
		t.Error("expected no side effects for empty fragment, have some")
	}
}

func TestApplySelectorOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	rec := &recorder{}
	result, err := anim.Apply(rec, ".a")
	require.NoError(t, err)
	if rec.added > 0 || result.Matches != 0 {
		t.Error("expected no mutation for a fragment without class token, have one")
	}
	if rec.langSet {
		t.Error("expected no language write without capability, have one")
	}
}

func TestApplyRecordsCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	rec := &recorder{}
	result, err := anim.Apply(rec, "en:.a:anim-left", fragment.Languages("ru", "en"))
	require.NoError(t, err)
	require.Equal(t, "en", rec.lang)
	require.Equal(t, ".a", rec.selector)
	require.Equal(t, "anim-left", rec.class)
	require.Equal(t, 1, result.Matches)
}

func TestApplyPropagatesSelectorError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	boom := errors.New("boom")
	rec := &recorder{err: boom}
	_, err := anim.Apply(rec, ".a:anim-left")
	if !errors.Is(err, boom) {
		t.Errorf("expected selector error to propagate unchanged, have %v", err)
	}
}

// --- end to end against the canonical DOM ----------------------------------

const pageHTML = `<html><head></head><body>
<div class="a">one</div>
<div class="a">two</div>
<div class="b">three</div>
</body></html>`

func parsePage(t *testing.T) *dom.Document {
	doc, err := dom.FromHTML(strings.NewReader(pageHTML))
	require.NoError(t, err)
	return doc
}

func TestApplyToDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	doc := parsePage(t)
	result, err := anim.ApplyToDocument(doc, "en:.a:anim-left", fragment.Languages("ru", "en"))
	require.NoError(t, err)
	require.Equal(t, "en", doc.Language())
	require.Equal(t, 2, result.Matches)
	list, err := doc.QuerySelectorAll(".a")
	require.NoError(t, err)
	for _, e := range list.Elements() {
		if !e.ClassList().Has("anim-left") {
			t.Errorf("expected element %v to have class anim-left, hasn't", e)
		}
	}
	three, err := doc.QuerySelector(".b")
	require.NoError(t, err)
	if three.ClassList().Has("anim-left") {
		t.Error("expected non-matching element to be untouched, isn't")
	}
}

func TestApplyToDocumentRussian(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	doc := parsePage(t)
	_, err := anim.ApplyToDocument(doc, "ru:.b:anim-translate", fragment.Languages("ru", "en"))
	require.NoError(t, err)
	require.Equal(t, "ru", doc.Language())
	three, err := doc.QuerySelector(".b")
	require.NoError(t, err)
	require.True(t, three.ClassList().Has("anim-translate"))
}

func TestApplyWithoutLanguageCapability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	doc := parsePage(t)
	_, err := anim.ApplyToDocument(doc, ".a:anim-left")
	require.NoError(t, err)
	if doc.Language() != "" {
		t.Errorf("expected document language to stay unset, is %q", doc.Language())
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	doc := parsePage(t)
	for i := 0; i < 2; i++ {
		_, err := anim.ApplyToDocument(doc, ".a:anim-left")
		require.NoError(t, err)
	}
	list, err := doc.QuerySelectorAll(".a")
	require.NoError(t, err)
	for _, e := range list.Elements() {
		if got := e.Attr("class"); got != "a anim-left" {
			t.Errorf("expected class attribute 'a anim-left' after double apply, is %q", got)
		}
	}
}

func TestApplyInvalidSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "anim.trigger")
	defer teardown()
	//
	doc := parsePage(t)
	_, err := anim.ApplyToDocument(doc, "!!!:anim-left")
	if err == nil {
		t.Error("expected invalid selector to report an error, doesn't")
	}
}
