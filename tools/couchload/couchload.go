// Load a parsed wiktionary index into CouchDB, one document per word.
package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/andrei-dubovik/wiktionary-parsley"
	"github.com/dustin/go-couch"
	"github.com/dustin/go-humanize"
	"github.com/dustin/httputil"
)

var wg sync.WaitGroup

type wordDoc struct {
	ID  string `json:"_id"`
	Rev string `json:"_rev,omitempty"`
	parsley.WordEntry
}

func escapeWord(in string) string {
	return strings.Replace(strings.Replace(in, "/", "%2f", -1),
		"+", "%2b", -1)
}

func resolveConflict(db *couch.Database, doc *wordDoc) {
	var prev wordDoc
	err := db.Retrieve(doc.ID, &prev)
	if err != nil {
		log.Printf("Error retrieving existing %v: %v", doc.Word, err)
		return
	}
	if prev.Rev == "" {
		log.Printf("Got no rev from %v", doc.Word)
		return
	}
	_, err = db.EditWith(doc, doc.ID, prev.Rev)
	if err != nil {
		log.Printf("Error updating %v: %v", doc.Word, err)
	}
}

func doEntry(db *couch.Database, e parsley.WordEntry) {
	defer wg.Done()
	doc := wordDoc{ID: escapeWord(e.Word), WordEntry: e}

	_, _, err := db.Insert(&doc)
	switch {
	case err == nil:
		// yay
	case httputil.IsHTTPStatus(err, 409):
		resolveConflict(db, &doc)
	default:
		log.Printf("Error inserting %v: %v", e.Word, err)
	}
}

func entryHandler(db couch.Database, ch <-chan parsley.WordEntry) {
	for e := range ch {
		doEntry(&db, e)
	}
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
	dburl, indexfn := os.Args[1], os.Args[2]

	db, err := couch.Connect(dburl)
	if err != nil {
		log.Fatalf("Error connecting to couchdb: %v", err)
	}

	entries := readIndex(indexfn).Entries()

	ch := make(chan parsley.WordEntry, 1000)

	for i := 0; i < 20; i++ {
		go entryHandler(db, ch)
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
