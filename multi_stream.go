package parsley

import (
	"compress/bzip2"
	"encoding/xml"
	"io"
	"log"
	"os"
	"sync"
)

type indexChunk struct {
	offset int64
	count  int
}

// A multiStreamParser decodes a multistream dump in parallel: each
// worker seeks to a bzip2 stream boundary from the index and decodes
// that stream's pages independently.
//
// Pages arrive in per-stream order but streams interleave, so runs
// over a multistream dump are fast rather than reproducible; the
// single-stream parser is the deterministic baseline.
type multiStreamParser struct {
	siteInfo SiteInfo

	workerch chan indexChunk
	entries  chan *Page
}

func multiStreamIndexWorker(indexfn string, p *multiStreamParser) {
	defer close(p.workerch)

	r, err := os.Open(indexfn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", indexfn, err)
	}
	defer r.Close()

	bz := bzip2.NewReader(r)

	isr, err := NewIndexSummaryReader(bz)
	if err != nil {
		log.Fatalf("Error creating index summary: %v", err)
	}
	for {
		offset, count, err := isr.Next()
		p.workerch <- indexChunk{offset, count}
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading index: %v", err)
		}
	}
}

func multiStreamWorker(datafn string, wg *sync.WaitGroup, p *multiStreamParser) {
	defer wg.Done()

	r, err := os.Open(datafn)
	if err != nil {
		log.Fatalf("Error opening %v: %v", datafn, err)
	}
	defer r.Close()

	for chunk := range p.workerch {
		_, err := r.Seek(chunk.offset, 0)
		if err != nil {
			log.Fatalf("Error seeking to stream offset %v: %v", chunk.offset, err)
		}
		bz := bzip2.NewReader(r)
		d := xml.NewDecoder(bz)

		for i := 0; i < chunk.count && err != io.EOF; i++ {
			page := new(Page)
			err = d.Decode(page)
			if err == nil && wantPage(page) {
				p.entries <- page
			}
		}
	}
}

// NewIndexedParser gets a parallel parser over a multistream dump and
// its index file, both bzip2 compressed.
func NewIndexedParser(indexfn, datafn string, numWorkers int) (Parser, error) {
	r, err := os.Open(datafn)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	bz := bzip2.NewReader(r)

	d := xml.NewDecoder(bz)
	_, err = d.Token()
	if err != nil {
		return nil, err
	}

	si := SiteInfo{}
	err = d.Decode(&si)
	if err != nil {
		return nil, err
	}

	rv := &multiStreamParser{
		siteInfo: si,
		workerch: make(chan indexChunk, queueDepth),
		entries:  make(chan *Page, queueDepth),
	}

	wg := sync.WaitGroup{}
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go multiStreamWorker(datafn, &wg, rv)
	}

	go multiStreamIndexWorker(indexfn, rv)

	go func() {
		wg.Wait()
		close(rv.entries)
	}()

	return rv, nil
}

func (p *multiStreamParser) Next() (*Page, error) {
	rv, ok := <-p.entries
	if !ok {
		return nil, io.EOF
	}
	return rv, nil
}

func (p *multiStreamParser) SiteInfo() SiteInfo {
	return p.siteInfo
}
