package parsley

import (
	"reflect"
	"testing"
)

func TestIntern(t *testing.T) {
	w := New()
	if id := w.Intern("dog"); id != 0 {
		t.Fatalf("Expected 0 for first word, got %v", id)
	}
	if id := w.Intern("cat"); id != 1 {
		t.Fatalf("Expected 1 for second word, got %v", id)
	}
	if id := w.Intern("dog"); id != 0 {
		t.Fatalf("Expected stable 0 for repeated word, got %v", id)
	}
	if len(w.words) != 2 {
		t.Fatalf("Expected 2 words, got %v", w.words)
	}
}

func TestParsePageTranslationsSkipped(t *testing.T) {
	p := &Page{
		Title: "dog/translations",
		Text:  "==English==\n\n===Noun===\n# a canine\n",
	}
	r := ParsePage(p)
	if len(r.Entries) != 0 || len(r.Relations) != 0 {
		t.Fatalf("Expected empty result for translations subpage, got %#v", r)
	}
}

func TestParsePageEntries(t *testing.T) {
	p := &Page{
		Title: "dogs",
		Text:  dogsText,
	}
	r := ParsePage(p)
	expected := []POSEntry{
		{Category: "noun", Headword: "dogs"},
		{Category: "verb", Headword: "dogs"},
	}
	if !reflect.DeepEqual(r.Entries, expected) {
		t.Fatalf("Expected %#v, got %#v", expected, r.Entries)
	}
	if len(r.Relations) != 1 || r.Relations[0].Target != "dog" {
		t.Fatalf("Expected one plural relation to dog, got %#v", r.Relations)
	}
}

func TestParsePageAlternativeFormsSection(t *testing.T) {
	text := `==English==

===Alternative forms===
* {{alter|en|color}}

===Noun===
# a hue
`
	r := ParsePage(&Page{Title: "colour", Text: text})
	expected := []Relation{{Source: "colour", Kind: AltFormOf, Target: "color"}}
	if !reflect.DeepEqual(r.Relations, expected) {
		t.Fatalf("Expected %#v, got %#v", expected, r.Relations)
	}
	if len(r.Entries) != 1 || r.Entries[0].Category != "noun" {
		t.Fatalf("Expected one noun entry, got %#v", r.Entries)
	}
}

func TestParsePagePerPageDedup(t *testing.T) {
	text := `==English==

===Etymology 1===

====Noun====
# a first sense

===Etymology 2===

====Noun====
# a second sense
`
	r := ParsePage(&Page{Title: "bow", Text: text})
	if len(r.Entries) != 1 {
		t.Fatalf("Expected a single noun entry for repeated sections, got %#v", r.Entries)
	}
}

func TestFoldSuppressedDropped(t *testing.T) {
	w := New()
	w.Fold(&PageResult{
		Title:   "colour",
		Entries: []POSEntry{{Category: "noun", Headword: "colour"}},
		Relations: []Relation{
			{Source: "colour", Kind: AltFormOf, Target: "color", Suppressed: true},
		},
	})
	o := w.Finalize()
	if !reflect.DeepEqual(o.Words, []string{"colour"}) {
		t.Fatalf("Expected suppressed target to stay uninterned, got %v", o.Words)
	}
	if len(o.Rel.AltForms) != 0 {
		t.Fatalf("Expected no clusters, got %v", o.Rel.AltForms)
	}
}

func TestFoldIdempotentInterning(t *testing.T) {
	// The same page folded twice contributes POS entries twice but
	// interns each word once.
	r := ParsePage(&Page{Title: "dogs", Text: dogsText})
	w := New()
	w.Fold(r)
	w.Fold(r)
	o := w.Finalize()
	if !reflect.DeepEqual(o.Words, []string{"dogs", "dog"}) {
		t.Fatalf("Expected two words, got %v", o.Words)
	}
	if !reflect.DeepEqual(o.POS.Noun, []int{0}) {
		t.Fatalf("Expected noun list [0], got %v", o.POS.Noun)
	}
	if !reflect.DeepEqual(o.Rel.PluralOf, [][2]int{{0, 1}}) {
		t.Fatalf("Expected a single collapsed edge, got %v", o.Rel.PluralOf)
	}
}

func TestFinalizeEmpty(t *testing.T) {
	o := New().Finalize()
	if o.Source != Source || o.License != License {
		t.Fatalf("Expected source and license set, got %#v", o)
	}
	if o.Words == nil || len(o.Words) != 0 {
		t.Fatalf("Expected empty word table, got %#v", o.Words)
	}
	if o.POS.Noun == nil || o.Rel.PluralOf == nil || o.Rel.AltForms == nil {
		t.Fatalf("Expected empty, non-nil lists, got %#v", o)
	}
}

func TestFinalizeWordUniqueness(t *testing.T) {
	w := New()
	for _, title := range []string{"gray", "grey", "gray"} {
		w.Fold(&PageResult{
			Title:   title,
			Entries: []POSEntry{{Category: "adjective", Headword: title}},
			Relations: []Relation{
				{Source: title, Kind: AltFormOf, Target: "gray"},
			},
		})
	}
	o := w.Finalize()
	seen := map[string]bool{}
	for _, word := range o.Words {
		if seen[word] {
			t.Fatalf("Duplicate word %q in %v", word, o.Words)
		}
		seen[word] = true
	}
}
