package parsley

import "sort"

// Source and license of every produced index.
const (
	Source  = "https://en.wiktionary.org"
	License = "https://creativecommons.org/licenses/by-sa/3.0/"
)

// POSIndex holds the word indices of each recognized part of speech.
// The key set is fixed; empty categories are emitted as empty lists.
type POSIndex struct {
	Noun         []int `json:"noun"`
	Verb         []int `json:"verb"`
	Adjective    []int `json:"adjective"`
	ProperNoun   []int `json:"proper noun"`
	Adverb       []int `json:"adverb"`
	Interjection []int `json:"interjection"`
	Pronoun      []int `json:"pronoun"`
	Preposition  []int `json:"preposition"`
	Conjuction   []int `json:"conjuction"`
	Determiner   []int `json:"determiner"`
	Particle     []int `json:"particle"`
	Article      []int `json:"article"`
}

// RelIndex holds the relation structures over word indices.
type RelIndex struct {
	PluralOf [][2]int `json:"plural_of"`
	AltForms [][]int  `json:"alt_forms"`
}

// Output is the final index: the shape that gets serialized to JSON.
// All integers are zero-based positions in Words.
type Output struct {
	Source  string   `json:"source"`
	License string   `json:"license"`
	Words   []string `json:"words"`
	POS     POSIndex `json:"pos"`
	Rel     RelIndex `json:"rel"`
}

// Finalize freezes the accumulated state into the output model. The
// accumulator stays usable; folding more pages and finalizing again is
// allowed.
func (w *Wiktionary) Finalize() *Output {
	rv := &Output{
		Source:  Source,
		License: License,
		Words:   make([]string, len(w.words)),
		POS: POSIndex{
			Noun:         w.posIDs("noun"),
			Verb:         w.posIDs("verb"),
			Adjective:    w.posIDs("adjective"),
			ProperNoun:   w.posIDs("proper noun"),
			Adverb:       w.posIDs("adverb"),
			Interjection: w.posIDs("interjection"),
			Pronoun:      w.posIDs("pronoun"),
			Preposition:  w.posIDs("preposition"),
			Conjuction:   w.posIDs("conjuction"),
			Determiner:   w.posIDs("determiner"),
			Particle:     w.posIDs("particle"),
			Article:      w.posIDs("article"),
		},
		Rel: RelIndex{
			PluralOf: make([][2]int, len(w.plurals.edges)),
			AltForms: w.altForms.clusters(),
		},
	}
	copy(rv.Words, w.words)
	copy(rv.Rel.PluralOf, w.plurals.edges)
	if rv.Rel.AltForms == nil {
		rv.Rel.AltForms = [][]int{}
	}
	return rv
}

func (w *Wiktionary) posIDs(category string) []int {
	l := w.pos[category]
	if l == nil {
		return []int{}
	}
	rv := make([]int, len(l.ids))
	copy(rv, l.ids)
	return rv
}

// A WordEntry is the per-word view of the index used by the database
// loaders: every index resolved back to its spelling.
type WordEntry struct {
	Word     string   `json:"word"`
	POS      []string `json:"pos,omitempty"`
	PluralOf []string `json:"plural_of,omitempty"`
	Plurals  []string `json:"plurals,omitempty"`
	AltForms []string `json:"alt_forms,omitempty"`
}

// Entries inverts the index into one entry per word, in word-index
// order.
func (o *Output) Entries() []WordEntry {
	rv := make([]WordEntry, len(o.Words))
	for i, word := range o.Words {
		rv[i].Word = word
	}

	for _, c := range []struct {
		tag string
		ids []int
	}{
		{"noun", o.POS.Noun},
		{"verb", o.POS.Verb},
		{"adjective", o.POS.Adjective},
		{"proper noun", o.POS.ProperNoun},
		{"adverb", o.POS.Adverb},
		{"interjection", o.POS.Interjection},
		{"pronoun", o.POS.Pronoun},
		{"preposition", o.POS.Preposition},
		{"conjuction", o.POS.Conjuction},
		{"determiner", o.POS.Determiner},
		{"particle", o.POS.Particle},
		{"article", o.POS.Article},
	} {
		for _, id := range c.ids {
			rv[id].POS = append(rv[id].POS, c.tag)
		}
	}

	for _, e := range o.Rel.PluralOf {
		plural, singular := e[0], e[1]
		rv[plural].PluralOf = append(rv[plural].PluralOf, o.Words[singular])
		rv[singular].Plurals = append(rv[singular].Plurals, o.Words[plural])
	}

	for _, cluster := range o.Rel.AltForms {
		for _, id := range cluster {
			for _, other := range cluster {
				if other != id {
					rv[id].AltForms = append(rv[id].AltForms, o.Words[other])
				}
			}
			sort.Strings(rv[id].AltForms)
		}
	}
	return rv
}
