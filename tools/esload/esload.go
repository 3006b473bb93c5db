// Load a parsed wiktionary index into ElasticSearch.
package main

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"github.com/andrei-dubovik/wiktionary-parsley"
	"github.com/dustin/go-elasticsearch"
	"github.com/dustin/go-humanize"
)

var wg = sync.WaitGroup{}

func entryHandler(u string, ch <-chan parsley.WordEntry) {
	counter := 0
	es := elasticsearch.ElasticSearch{URL: u}
	bulkLoader := es.Bulk()

	for e := range ch {
		counter++
		if counter > 1000 {
			bulkLoader.SendBatch()
			counter = 0
		}
		ui := elasticsearch.UpdateInstruction{
			Id:    e.Word,
			Index: "wiktionary",
			Type:  "word",
			Body: map[string]interface{}{
				"word":      e.Word,
				"pos":       e.POS,
				"plural_of": e.PluralOf,
				"plurals":   e.Plurals,
				"alt_forms": e.AltForms,
			},
		}
		bulkLoader.Update(&ui)
		wg.Done()
	}
	bulkLoader.Quit()
}

func readIndex(filename string) *parsley.Output {
	f, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Error opening %v: %v", filename, err)
	}
	defer f.Close()

	rv := &parsley.Output{}
	if err := json.NewDecoder(f).Decode(rv); err != nil {
		log.Fatalf("Error decoding index %v: %v", filename, err)
	}
	return rv
}

func main() {
	indexfn, esurl := os.Args[1], os.Args[2]

	entries := readIndex(indexfn).Entries()

	ch := make(chan parsley.WordEntry, 1000)

	for i := 0; i < 4; i++ {
		go entryHandler(esurl, ch)
	}

	start := time.Now()
	for _, e := range entries {
		wg.Add(1)
		ch <- e
	}
	wg.Wait()
	close(ch)
	log.Printf("Loaded %s words in %v",
		humanize.Comma(int64(len(entries))), time.Since(start))
}
