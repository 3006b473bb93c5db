package parsley

import "strings"

// RelationKind tags the two relation families derived from
// definition-line templates.
type RelationKind int

const (
	PluralOf RelationKind = iota
	AltFormOf
)

func (k RelationKind) String() string {
	if k == PluralOf {
		return "plural_of"
	}
	return "alt_forms"
}

// A Relation is a page-local source→target tuple. Suppressed tuples
// come from definition lines marked obsolete or rare; they survive
// extraction but are dropped before graph construction.
type Relation struct {
	Source     string
	Kind       RelationKind
	Target     string
	Suppressed bool
}

// Templates whose first positional argument names the language and
// whose second names the target word.
var relationTemplates = map[string]RelationKind{
	"plural of":               PluralOf,
	"alternative form of":     AltFormOf,
	"alternative spelling of": AltFormOf,
	"standard form of":        AltFormOf,
	"standard spelling of":    AltFormOf,
	"alt form":                AltFormOf,
	"altform":                 AltFormOf,
	"alt sp":                  AltFormOf,
	"alt spelling":            AltFormOf,
	"stand sp":                AltFormOf,
}

// Bare qualifier tags that mark a definition as out of current use.
var suppressTags = map[string]bool{
	"obsolete": true,
	"rare":     true,
	"archaic":  true,
	"dated":    true,
}

// Label templates whose arguments may carry the same qualifiers, e.g.
// {{lb|en|obsolete}}.
var labelTemplates = map[string]bool{
	"lb":         true,
	"lbl":        true,
	"label":      true,
	"context":    true,
	"cx":         true,
	"term-label": true,
	"tlb":        true,
}

// ExtractRelations interprets the definition lines of one block.
// The "plural of" family is honored in noun sections only; every
// relation template requires its language argument to be "en".
func ExtractRelations(category string, block DefinitionBlock) []Relation {
	var rv []Relation
	for _, line := range block.Lines {
		rv = append(rv, extractLine(category, block.Headword, line)...)
	}
	return rv
}

// ExtractSectionRelations scans every line of a section that is not a
// recognized part of speech. Alternative-form templates occur there
// too, most often as {{alter}} bullets under an "Alternative forms"
// heading. The "plural of" family stays confined to noun sections.
func ExtractSectionRelations(headword, body string) []Relation {
	var rv []Relation
	for _, line := range strings.Split(body, "\n") {
		rv = append(rv, extractLine("", headword, line)...)
	}
	return rv
}

func extractLine(category, headword, line string) []Relation {
	var rv []Relation
	suppressed := false
	for _, t := range FindTemplates(line) {
		if suppressesLine(&t) {
			suppressed = true
			continue
		}
		rv = append(rv, lineRelations(category, headword, &t, suppressed)...)
	}
	return rv
}

func lineRelations(category, headword string, t *Template, suppressed bool) []Relation {
	if t.Name == "alter" {
		return alterRelations(headword, t, suppressed)
	}
	kind, ok := relationTemplates[t.Name]
	if !ok {
		return nil
	}
	if kind == PluralOf && category != "noun" {
		return nil
	}
	if t.Arg(0) != "en" {
		return nil
	}
	target := t.Arg(1)
	if target == "" {
		return nil
	}
	return []Relation{{
		Source:     headword,
		Kind:       kind,
		Target:     target,
		Suppressed: suppressed,
	}}
}

// alterRelations handles {{alter|en|form1|form2|...}}, which lists
// alternative forms until the first empty argument.
func alterRelations(headword string, t *Template, suppressed bool) []Relation {
	if t.Arg(0) != "en" {
		return nil
	}
	var rv []Relation
	for _, target := range t.Args[1:] {
		if target == "" {
			break
		}
		rv = append(rv, Relation{
			Source:     headword,
			Kind:       AltFormOf,
			Target:     target,
			Suppressed: suppressed,
		})
	}
	return rv
}

// suppressesLine reports whether a template marks the rest of its line
// as obsolete or rare.
func suppressesLine(t *Template) bool {
	if suppressTags[t.Name] {
		return true
	}
	if !labelTemplates[t.Name] {
		return false
	}
	for _, arg := range t.Args {
		if suppressTags[arg] {
			return true
		}
	}
	return false
}
