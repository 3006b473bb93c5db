package parsley

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadIndexRecord is returned for an index line that is not
// offset:id:title.
var ErrBadIndexRecord = errors.New("bad index record")

// An IndexEntry is one line of a multistream dump index: where a
// page's bzip2 stream starts and which page it is.
type IndexEntry struct {
	StreamOffset int64
	PageID       uint64
	PageTitle    string
}

func (e IndexEntry) String() string {
	return fmt.Sprintf("%v:%v:%v", e.StreamOffset, e.PageID, e.PageTitle)
}

// An IndexReader reads a multistream dump index line by line.
//
// Offsets in older indexes wrap at 32 bits; the reader undoes the
// wrap, assuming offsets were meant to be non-decreasing.
type IndexReader struct {
	r          *bufio.Scanner
	base       int64
	prevOffset int64
}

// NewIndexReader gets an index reader over a stream of index lines.
func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewScanner(r)}
}

// Next gets the next entry from the index stream.
func (ir *IndexReader) Next() (IndexEntry, error) {
	if !ir.r.Scan() {
		err := ir.r.Err()
		if err == nil {
			err = io.EOF
		}
		return IndexEntry{}, err
	}
	parts := strings.SplitN(ir.r.Text(), ":", 3)
	if len(parts) != 3 {
		return IndexEntry{}, ErrBadIndexRecord
	}
	rv := IndexEntry{PageTitle: parts[2]}
	offset, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return IndexEntry{}, err
	}
	if offset < ir.prevOffset {
		ir.base += 1 << 32
	}
	rv.StreamOffset = offset + ir.base
	rv.PageID, err = strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return IndexEntry{}, err
	}
	ir.prevOffset = offset

	return rv, nil
}

// An IndexSummaryReader reduces an index to stream offsets and page
// counts, which is all the multistream reader needs to plan its
// decoding work.
type IndexSummaryReader struct {
	index      *IndexReader
	prevOffset int64
	count      int
}

// NewIndexSummaryReader gets a summary reader from the given stream of
// index lines.
func NewIndexSummaryReader(r io.Reader) (*IndexSummaryReader, error) {
	rv := &IndexSummaryReader{index: NewIndexReader(r)}
	first, err := rv.index.Next()
	if err != nil {
		return nil, err
	}
	rv.prevOffset = first.StreamOffset
	rv.count = 1

	return rv, nil
}

// Next gets the next offset and page count.
//
// The last summary is returned together with io.EOF.
func (isr *IndexSummaryReader) Next() (offset int64, count int, err error) {
	for {
		e, err := isr.index.Next()
		if err != nil {
			offset = isr.prevOffset
			count = isr.count
			isr.prevOffset = 0
			isr.count = 0
			return offset, count, err
		}

		if e.StreamOffset != isr.prevOffset {
			offset = isr.prevOffset
			count = isr.count
			isr.prevOffset = e.StreamOffset
			isr.count = 1
			return offset, count, nil
		}
		isr.count++
	}
}
