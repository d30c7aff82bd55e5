// Package segment splits a code point sequence into words: maximal runs of
// alphabetic code points.
package segment

import "github.com/Sunday111/Freqs/alphabet"

// A Word is a range of code point indexes, End exclusive.
type Word struct {
	Begin int
	End   int
}

// Words scans letters left to right and returns the maximal runs of code
// points alphabetic under t, in order. Runs open on the first alphabetic
// code point and close on the next separator or the end of the input, so a
// word is never empty and no two words touch.
//
// Words classifies the code points it is given as they are; the counting
// pipeline folds before segmenting, which pushes the ASCII range between
// the Latin case blocks out of the alphabet.
func Words(letters []rune, t alphabet.Table) []Word {
	var words []Word
	begin := -1
	for i, r := range letters {
		if t.Contains(r) {
			if begin == -1 {
				begin = i
			}
		} else if begin != -1 {
			words = append(words, Word{Begin: begin, End: i})
			begin = -1
		}
	}
	if begin != -1 {
		words = append(words, Word{Begin: begin, End: len(letters)})
	}
	return words
}
