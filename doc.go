// Package parsley converts English Wiktionary XML dumps into a compact
// JSON word index.
//
// The dumps are available from the wikimedia group here:
//    http://dumps.wikimedia.org/enwiktionary/
//
// A single streaming pass over the dump produces a deduplicated word
// table, per part-of-speech index lists, and two relation structures
// derived from definition-line templates: "plural of" edges and
// "alternative form" clusters.
//
// See the programs under tools/ for how the pieces fit together.
package parsley
