// Load a parsed wiktionary index into MongoDB.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/andrei-dubovik/wiktionary-parsley"
	"github.com/dustin/go-humanize"
	"gopkg.in/mgo.v2"
)

var file = flag.String("file", "", "The JSON index file.")
var dburl = flag.String("dburl", "localhost", "The dburl(s). I.e. localhost.")
var verbose = flag.Bool("v", false, "Verbose logging?")
var collection = flag.String("collection", "words", "The collection to store words in.")
var dbname = flag.String("dbname", "wikt", "The database name to use.")

// Word spellings are unique by construction; the index makes reloads
// idempotent.
var wordIndex = mgo.Index{
	Key:        []string{"word"},
	Unique:     true,
	DropDups:   true,
	Background: true,
	Sparse:     true,
}

type wordDoc struct {
	Word     string   `bson:"word"`
	POS      []string `bson:"pos,omitempty"`
	PluralOf []string `bson:"pluralof,omitempty"`
	Plurals  []string `bson:"plurals,omitempty"`
	AltForms []string `bson:"altforms,omitempty"`
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

func loadEntries(db *mgo.Database, entries []parsley.WordEntry) {
	c := db.C(*collection)
	start := time.Now()
	for _, e := range entries {
		doc := wordDoc{
			Word:     e.Word,
			POS:      e.POS,
			PluralOf: e.PluralOf,
			Plurals:  e.Plurals,
			AltForms: e.AltForms,
		}
		err := c.Insert(&doc)
		if err != nil {
			if mgo.IsDup(err) {
				if *verbose {
					log.Printf("Duplicate key error inserting %s", e.Word)
				}
			} else {
				log.Printf("Error inserting %s: %s", e.Word, err)
			}
		}
	}
	log.Printf("Loaded %s words in %v",
		humanize.Comma(int64(len(entries))), time.Since(start))
}

func main() {
	flag.Parse()
	if *file == "" {
		log.Fatal("You must supply a JSON index file.")
	}
	session, err := mgo.Dial(*dburl)
	if err != nil {
		panic(err)
	}

	err = session.DB(*dbname).C(*collection).EnsureIndex(wordIndex)
	if err != nil {
		log.Fatal("Error creating word index", err)
	}

	loadEntries(session.DB(*dbname), readIndex(*file).Entries())
}
