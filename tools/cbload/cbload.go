// Load a parsed wiktionary index into Couchbase.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/andrei-dubovik/wiktionary-parsley"
	"github.com/couchbase/go-couchbase"
	"github.com/dustin/go-humanize"
)

var numWorkers = flag.Int("numWorkers", 8, "Number of store workers")

var wg sync.WaitGroup

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage:\n  %s [opts] index.json\n",
		os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func entryHandler(db *couchbase.Bucket, ch <-chan parsley.WordEntry) {
	defer wg.Done()
	for e := range ch {
		if err := db.Set(e.Word, 0, e); err != nil {
			log.Printf("Error setting %v: %v", e.Word, err)
		}
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
	couchbaseServer := flag.String("couchbase", "http://localhost:8091/",
		"Couchbase URL")
	couchbaseBucket := flag.String("bucket", "default", "Couchbase bucket")
	procs := flag.Int("cpus", runtime.NumCPU(), "Number of CPUS to use")
	flag.Parse()

	runtime.GOMAXPROCS(*procs)

	if flag.NArg() != 1 {
		usage()
	}

	db, err := couchbase.GetBucket(*couchbaseServer,
		"default", *couchbaseBucket)
	if err != nil {
		log.Fatalf("Error connecting to couchbase: %v", err)
	}

	entries := readIndex(flag.Arg(0)).Entries()

	ch := make(chan parsley.WordEntry, 1000)

	for i := 0; i < *numWorkers; i++ {
		wg.Add(1)
		go entryHandler(db, ch)
	}

	start := time.Now()
	for _, e := range entries {
		ch <- e
	}
	close(ch)
	wg.Wait()
	log.Printf("Loaded %s words in %v",
		humanize.Comma(int64(len(entries))), time.Since(start))
}
