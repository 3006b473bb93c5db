package parsley

import "strings"

// A POSEntry records that a headword occurred under a part-of-speech
// heading.
type POSEntry struct {
	Category string
	Headword string
}

// A PageResult is everything one page contributes to the index. It is
// computed without touching shared state, so pages can be parsed in
// parallel; folding the results is sequential.
type PageResult struct {
	Title     string
	Entries   []POSEntry
	Relations []Relation
}

// ParsePage extracts a single page's contribution. It is a pure
// function of the page; the same page always yields the same result.
//
// Sections are walked in document order. Recognized part-of-speech
// sections contribute an entry and their definition-line relations;
// every other section is still scanned for alternative-form
// templates, which mostly live under "Alternative forms" headings.
func ParsePage(p *Page) *PageResult {
	rv := &PageResult{Title: p.Title}
	if strings.HasSuffix(p.Title, "/translations") {
		return rv
	}

	seen := map[POSEntry]bool{}
	for _, s := range englishSections(p.Text) {
		if !posHeadings[s.Title] {
			rv.Relations = append(rv.Relations, ExtractSectionRelations(p.Title, s.Body)...)
			continue
		}
		block := definitionBlock(p.Title, s.Body)
		e := POSEntry{Category: s.Title, Headword: block.Headword}
		if !seen[e] {
			seen[e] = true
			rv.Entries = append(rv.Entries, e)
		}
		rv.Relations = append(rv.Relations, ExtractRelations(s.Title, block)...)
	}
	return rv
}

// A Wiktionary accumulates page results into the global word table,
// the per-POS index lists and the relation graph. It is the only
// place word indices are assigned; exactly one goroutine may fold
// into it.
type Wiktionary struct {
	words []string
	ids   map[string]int

	pos map[string]*posList

	plurals  *edgeSet
	altForms *unionFind
}

type posList struct {
	seen map[int]bool
	ids  []int
}

// New creates an empty Wiktionary accumulator.
func New() *Wiktionary {
	return &Wiktionary{
		ids:      map[string]int{},
		pos:      map[string]*posList{},
		plurals:  newEdgeSet(),
		altForms: newUnionFind(),
	}
}

// Intern returns the stable index for a word, assigning the next free
// index on first sight.
func (w *Wiktionary) Intern(word string) int {
	if id, ok := w.ids[word]; ok {
		return id
	}
	id := len(w.words)
	w.words = append(w.words, word)
	w.ids[word] = id
	return id
}

// Fold merges one page's result into the global state. Calling order
// defines word numbering, so callers must fold results in page-stream
// order regardless of which worker produced them.
func (w *Wiktionary) Fold(r *PageResult) {
	if r == nil {
		return
	}
	for _, e := range r.Entries {
		w.addPOS(e.Category, w.Intern(e.Headword))
	}
	for _, rel := range r.Relations {
		if rel.Suppressed {
			continue
		}
		src := w.Intern(rel.Source)
		dst := w.Intern(rel.Target)
		switch rel.Kind {
		case PluralOf:
			w.plurals.add(src, dst)
		case AltFormOf:
			w.altForms.union(src, dst)
		}
	}
}

// addPOS appends a word to a category list unless that (category,
// word) pair has been recorded before.
func (w *Wiktionary) addPOS(category string, id int) {
	l := w.pos[category]
	if l == nil {
		l = &posList{seen: map[int]bool{}}
		w.pos[category] = l
	}
	if l.seen[id] {
		return
	}
	l.seen[id] = true
	l.ids = append(l.ids, id)
}
