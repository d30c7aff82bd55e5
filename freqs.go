// Package freqs counts word frequencies in UTF-8 text. Words are maximal
// runs of alphabetic code points, compared case insensitively over a fixed
// set of cased alphabets; every other code point separates words.
package freqs

import (
	"github.com/Sunday111/Freqs/alphabet"
	"github.com/Sunday111/Freqs/errors"
	"github.com/Sunday111/Freqs/report"
	"github.com/Sunday111/Freqs/segment"
	"github.com/Sunday111/Freqs/utf8scan"
	"github.com/Sunday111/Freqs/wordcount"
)

// Count decodes src, folds every code point to lower case, and counts the
// occurrences of each distinct word. The returned report ranks words by
// descending count, ties broken lexicographically on the folded form, and
// renders each word with the source bytes of its first occurrence.
//
// Decoding is the only step that can fail: the error wraps a
// utf8scan.DecodeError and no report is produced.
func Count(src []byte, t alphabet.Table) (*report.Report, error) {
	letters, spans, err := utf8scan.Decode(src)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding input")
	}

	folded := t.FoldAll(letters)

	counts := wordcount.NewCounts(folded)
	for _, w := range segment.Words(folded, t) {
		counts.Hit(w)
	}

	return report.New(src, spans, counts.Entries()), nil
}
