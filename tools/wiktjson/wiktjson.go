// Convert a wiktionary dump into the JSON word index.
package main

import (
	"compress/bzip2"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/andrei-dubovik/wiktionary-parsley"
	"github.com/dustin/go-humanize"
)

var numWorkers int
var outPath string

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage:\n  %s [opts] dump.xml[.bz2]\n  %s [opts] index.txt.bz2 dump-multistream.xml.bz2\n",
		os.Args[0], os.Args[0])
	fmt.Fprintf(os.Stderr, "\nA dump filename of - reads the XML from stdin.\n")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
	os.Exit(1)
}

func process(p parsley.Parser) *parsley.Output {
	log.Printf("Got site info:  %+v", p.SiteInfo())

	w := parsley.New()

	pages := int64(0)
	start := time.Now()
	prev := start
	reportfreq := int64(1000)
	err := parsley.RunFunc(p, w, numWorkers, func(*parsley.Page) {
		pages++
		if pages%reportfreq == 0 {
			now := time.Now()
			d := now.Sub(prev)
			log.Printf("Processed %s pages total (%.2f/s)",
				humanize.Comma(pages), float64(reportfreq)/d.Seconds())
			prev = now
		}
	})
	if err != nil {
		log.Fatalf("Dump structure error, aborting without output: %v", err)
	}

	d := time.Since(start)
	log.Printf("Finished %s pages in %v (%.2f p/s)",
		humanize.Comma(pages), d, float64(pages)/d.Seconds())

	return w.Finalize()
}

func singleStream(filename string) *parsley.Output {
	var r io.Reader
	if filename == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(filename)
		if err != nil {
			log.Fatalf("Error opening file: %v", err)
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(filename, ".bz2") {
			r = bzip2.NewReader(f)
		}
	}

	p, err := parsley.NewParser(r)
	if err != nil {
		log.Fatalf("Error setting up new page parser:  %v", err)
	}
	return process(p)
}

func multiStream(idx, data string) *parsley.Output {
	p, err := parsley.NewIndexedParser(idx, data, runtime.GOMAXPROCS(0))
	if err != nil {
		log.Fatalf("Error initializing multistream parser: %v", err)
	}
	return process(p)
}

func emit(o *parsley.Output) {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			log.Fatalf("Error creating %v: %v", outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := json.NewEncoder(out).Encode(o); err != nil {
		log.Fatalf("Error writing index: %v", err)
	}
}

func main() {
	var cpus int
	flag.IntVar(&numWorkers, "workers", 8, "Number of parsing workers")
	flag.IntVar(&cpus, "cpus", runtime.GOMAXPROCS(0), "Number of CPUS to utilize")
	flag.StringVar(&outPath, "o", "", "Output file (default stdout)")
	flag.Parse()

	runtime.GOMAXPROCS(cpus)

	switch flag.NArg() {
	case 1:
		emit(singleStream(flag.Arg(0)))
	case 2:
		emit(multiStream(flag.Arg(0), flag.Arg(1)))
	default:
		usage()
	}
}
