package parsley

import (
	"regexp"
	"strings"
)

var englishRE, headingRE, headwordRE *regexp.Regexp

func init() {
	englishRE = regexp.MustCompile(`(?ism)(?:^== *english *== *\n)(.*?)(?:^={1,2}[^=]|\z)`)
	headingRE = regexp.MustCompile(`(?m)^=+ *([^=\n]+?)( [0-9]+)? *=+ *\n?`)
	headwordRE = regexp.MustCompile(`'''([^'\n]+)'''`)
}

// The parts of speech collected into the index. Headings are matched
// against this set exactly; note the historical "conjuction" spelling,
// which is also the output key.
var posHeadings = map[string]bool{
	"noun":         true,
	"verb":         true,
	"adjective":    true,
	"proper noun":  true,
	"adverb":       true,
	"interjection": true,
	"pronoun":      true,
	"preposition":  true,
	"conjuction":   true,
	"determiner":   true,
	"particle":     true,
	"article":      true,
}

// A DefinitionBlock groups one part-of-speech section's headword with
// its numbered definition lines.
type DefinitionBlock struct {
	Headword string
	Lines    []string
}

// A Section is one heading-delimited span of the English block. The
// title is lowercased with any etymology counter stripped; the span
// before the first heading has an empty title.
type Section struct {
	Title string
	Body  string
}

// englishSections splits the English block into its sections, in
// document order. Pages without an English block yield nothing.
func englishSections(text string) []Section {
	english, ok := englishSection(text)
	if !ok {
		return nil
	}

	matches := headingRE.FindAllStringSubmatchIndex(english, -1)
	var rv []Section
	pre := english
	if len(matches) > 0 {
		pre = english[:matches[0][0]]
	}
	if strings.TrimSpace(pre) != "" {
		rv = append(rv, Section{Body: pre})
	}
	for n, m := range matches {
		end := len(english)
		if n+1 < len(matches) {
			end = matches[n+1][0]
		}
		rv = append(rv, Section{
			Title: strings.ToLower(english[m[2]:m[3]]),
			Body:  english[m[1]:end],
		})
	}
	return rv
}

// englishSection returns the English-language span of a page body, if
// any. The span runs from the == English == heading to the next
// language-level heading or the end of the page.
func englishSection(text string) (string, bool) {
	m := englishRE.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseSections extracts the recognized part-of-speech sections of a
// page. A page without an English block, or without recognized
// headings, yields an empty map; that is not an error.
//
// Heading titles are lowercased before matching (Proper Noun and
// Proper noun both occur in the dump) and trailing etymology counters
// ("Noun 2") are dropped.
func ParseSections(p *Page) map[string][]DefinitionBlock {
	sections := englishSections(p.Text)
	if sections == nil {
		return nil
	}

	rv := map[string][]DefinitionBlock{}
	for _, s := range sections {
		if posHeadings[s.Title] {
			rv[s.Title] = append(rv[s.Title], definitionBlock(p.Title, s.Body))
		}
	}
	return rv
}

// definitionBlock splits a section body into the headword and its
// definition lines. The headword defaults to the page title; a bolded
// term on a line ahead of the definitions overrides it.
func definitionBlock(title, body string) DefinitionBlock {
	block := DefinitionBlock{Headword: title}
	sawDef := false
	for _, line := range strings.Split(body, "\n") {
		if isDefinitionLine(line) {
			block.Lines = append(block.Lines, line)
			sawDef = true
			continue
		}
		if sawDef || strings.HasPrefix(line, "#") {
			continue
		}
		if m := headwordRE.FindStringSubmatch(line); m != nil {
			word := strings.TrimSpace(m[1])
			if word != "" {
				block.Headword = word
			}
		}
	}
	return block
}

// isDefinitionLine reports whether a line is a numbered definition.
// Quotations (#*), example sentences (#:) and their nested variants
// are not definitions.
func isDefinitionLine(line string) bool {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i == 0 {
		return false
	}
	return i == len(line) || (line[i] != ':' && line[i] != '*')
}
