package parsley

import (
	"io"
	"log"
	"sync"
)

// Channel depth for in-flight pages, bounding peak memory.
const queueDepth = 1000

type job struct {
	page   *Page
	result chan *PageResult
}

// Run reads every page from a parser, extracts page results on a pool
// of workers and folds them into the accumulator.
//
// Results are folded strictly in page-stream order, not completion
// order, so the output is identical for any worker count. Run returns
// nil on a clean end of stream and the structural error otherwise; on
// error, in-flight pages are drained before returning and the
// accumulator must be considered incomplete.
func Run(p Parser, w *Wiktionary, workers int) error {
	return RunFunc(p, w, workers, nil)
}

// RunFunc is Run with an observer invoked for every page handed to the
// workers, from the reader goroutine. Tools use it for progress
// reporting.
func RunFunc(p Parser, w *Wiktionary, workers int, observe func(*Page)) error {
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan job, queueDepth)
	pending := make(chan chan *PageResult, queueDepth)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				j.result <- parsePageSafe(j.page)
			}
		}()
	}

	var readErr error
	go func() {
		defer close(pending)
		defer close(jobs)
		for {
			page, err := p.Next()
			if err == io.EOF {
				return
			}
			if err != nil {
				readErr = err
				return
			}
			if observe != nil {
				observe(page)
			}
			result := make(chan *PageResult, 1)
			pending <- result
			jobs <- job{page: page, result: result}
		}
	}()

	for result := range pending {
		w.Fold(<-result)
	}
	wg.Wait()
	return readErr
}

// parsePageSafe contains a panic from a single page's extraction: the
// page contributes nothing and its siblings are unaffected.
func parsePageSafe(p *Page) (rv *PageResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Error parsing %q, skipping page: %v", p.Title, r)
			rv = &PageResult{Title: p.Title}
		}
	}()
	return ParsePage(p)
}
