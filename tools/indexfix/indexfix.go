// Reprint a multistream dump index with unwrapped 64-bit offsets.
package main

import (
	"compress/bzip2"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andrei-dubovik/wiktionary-parsley"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  %s index.bz2\n", os.Args[0])
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		usage()
	}

	r, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Error opening %v: %v", os.Args[1], err)
	}
	defer r.Close()

	bz := bzip2.NewReader(r)

	ir := parsley.NewIndexReader(bz)
	for {
		e, err := ir.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Error reading index:  %v", err)
		}

		fmt.Println(e.String())
	}
}
