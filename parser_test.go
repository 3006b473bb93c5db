package parsley

import (
	"fmt"
	"io"
	"strings"
	"testing"
)

const dumpHeader = `<mediawiki xml:lang="en">
  <siteinfo>
    <sitename>Wiktionary</sitename>
    <base>https://en.wiktionary.org/wiki/Wiktionary:Main_Page</base>
    <generator>MediaWiki 1.41.0</generator>
    <case>case-sensitive</case>
    <namespaces>
      <namespace key="0" case="case-sensitive"/>
      <namespace key="1" case="first-letter">Talk</namespace>
    </namespaces>
  </siteinfo>
`

type testPage struct {
	title    string
	ns       int
	redirect string
	text     string
}

func dumpXML(pages ...testPage) string {
	var b strings.Builder
	b.WriteString(dumpHeader)
	for _, p := range pages {
		b.WriteString("  <page>\n")
		fmt.Fprintf(&b, "    <title>%s</title>\n    <ns>%d</ns>\n", p.title, p.ns)
		if p.redirect != "" {
			fmt.Fprintf(&b, "    <redirect title=%q/>\n", p.redirect)
		}
		fmt.Fprintf(&b, "    <revision>\n      <text>%s</text>\n    </revision>\n", p.text)
		b.WriteString("  </page>\n")
	}
	b.WriteString("</mediawiki>\n")
	return b.String()
}

func TestParserSiteInfo(t *testing.T) {
	p, err := NewParser(strings.NewReader(dumpXML()))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}
	if got := p.SiteInfo().SiteName; got != "Wiktionary" {
		t.Fatalf("Expected Wiktionary, got %q", got)
	}
}

func TestParserFiltersNonArticles(t *testing.T) {
	dump := dumpXML(
		testPage{title: "dog", text: "==English=="},
		testPage{title: "Talk:dog", ns: 1, text: "chatter"},
		testPage{title: "doggo", redirect: "dog", text: "#REDIRECT [[dog]]"},
		testPage{title: "Category:Animals", ns: 14, text: ""},
		testPage{title: "cat", text: "==English=="},
	)

	p, err := NewParser(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}

	var titles []string
	for {
		page, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Error reading page: %v", err)
		}
		titles = append(titles, page.Title)
	}
	if len(titles) != 2 || titles[0] != "dog" || titles[1] != "cat" {
		t.Fatalf("Expected [dog cat], got %v", titles)
	}
}

func TestParserTruncatedDump(t *testing.T) {
	dump := dumpXML(testPage{title: "dog", text: "==English=="})
	dump = dump[:len(dump)-30]

	p, err := NewParser(strings.NewReader(dump))
	if err != nil {
		t.Fatalf("Error setting up parser: %v", err)
	}

	var lastErr error
	for lastErr == nil {
		_, lastErr = p.Next()
	}
	if lastErr == io.EOF {
		t.Fatalf("Expected a structural error for truncated input, got io.EOF")
	}
}

func TestParserGarbage(t *testing.T) {
	if _, err := NewParser(strings.NewReader("")); err == nil {
		t.Fatalf("Expected an error on empty input")
	}
}
