// Package report ranks counted words by frequency and renders them in their
// original encoding.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Sunday111/Freqs/utf8scan"
	"github.com/Sunday111/Freqs/wordcount"
)

// A Report is the ranked word frequency table of one source buffer.
type Report struct {
	src     []byte
	spans   utf8scan.Spans
	entries []wordcount.Entry
}

// New builds a report over the given entries without touching the caller's
// slice. Entries are ranked by descending count; equal counts fall back to
// lexicographic order on the folded key, which for UTF-8 keys is numeric
// code point order.
func New(src []byte, spans utf8scan.Spans, entries []wordcount.Entry) *Report {
	ranked := append([]wordcount.Entry(nil), entries...)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Key < ranked[j].Key
		}
		return ranked[i].Count > ranked[j].Count
	})
	return &Report{src: src, spans: spans, entries: ranked}
}

// Entries returns the distinct words, most frequent first.
func (r *Report) Entries() []wordcount.Entry {
	return r.entries
}

// Render returns the original encoding of e: the source bytes of its
// canonical occurrence, case and all. The folded key never appears in
// output.
func (r *Report) Render(e wordcount.Entry) []byte {
	return r.spans.Bytes(r.src, e.First.Begin, e.First.End)
}

// Distinct returns the number of distinct words.
func (r *Report) Distinct() int {
	return len(r.entries)
}

// Total returns the number of word occurrences counted.
func (r *Report) Total() int {
	var total int
	for _, e := range r.entries {
		total += e.Count
	}
	return total
}

// CodePoints returns the number of code points decoded from the source.
func (r *Report) CodePoints() int {
	return len(r.spans)
}

// WriteTo writes one line per distinct word, most frequent first: the
// decimal count, a space and the word in its original encoding.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, e := range r.entries {
		n, err := fmt.Fprintf(w, "%d %s\n", e.Count, r.Render(e))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
