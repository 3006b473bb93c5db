package parsley

import (
	"encoding/xml"
	"io"
)

// The toplevel site info describing basic dump properties.
type SiteInfo struct {
	SiteName   string `xml:"sitename"`
	Base       string `xml:"base"`
	Generator  string `xml:"generator"`
	Case       string `xml:"case"`
	Namespaces []struct {
		Key   string `xml:"key,attr"`
		Case  string `xml:"case,attr"`
		Value string `xml:",chardata"`
	} `xml:"namespaces>namespace"`
}

// A redirect target, present only on redirect pages.
type Redirect struct {
	Title string `xml:"title,attr"`
}

// A wiki page: one dictionary entry candidate from the dump.
//
// Only the current revision's wikitext is kept; edit metadata is
// dropped at decode time.
type Page struct {
	Title    string   `xml:"title"`
	Ns       int      `xml:"ns"`
	ID       uint64   `xml:"id"`
	Redirect Redirect `xml:"redirect"`
	Text     string   `xml:"revision>text"`
}

// That which emits wiki pages.
type Parser interface {
	// Next returns the next article page, or io.EOF when the dump is
	// exhausted. Any other error means the dump structure is broken
	// and the whole run must be abandoned.
	Next() (*Page, error)

	// SiteInfo returns the toplevel site info of the dump.
	SiteInfo() SiteInfo
}

type singleStreamParser struct {
	siteInfo SiteInfo
	x        *xml.Decoder
}

// NewParser gets a wiktionary dump parser reading from the given
// reader.
func NewParser(r io.Reader) (Parser, error) {
	d := xml.NewDecoder(r)
	_, err := d.Token()
	if err != nil {
		return nil, err
	}

	si := SiteInfo{}
	err = d.Decode(&si)
	if err != nil {
		return nil, err
	}

	return &singleStreamParser{
		siteInfo: si,
		x:        d,
	}, nil
}

func (p *singleStreamParser) Next() (*Page, error) {
	for {
		rv := new(Page)
		err := p.x.Decode(rv)
		if err != nil {
			return nil, err
		}
		if wantPage(rv) {
			return rv, nil
		}
	}
}

func (p *singleStreamParser) SiteInfo() SiteInfo {
	return p.siteInfo
}

// wantPage reports whether a decoded page is a main-namespace article.
// Talk pages, categories, templates and redirects carry no dictionary
// content.
func wantPage(p *Page) bool {
	return p.Ns == 0 && p.Redirect.Title == ""
}
