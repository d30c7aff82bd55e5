// Package wordcount deduplicates words by their folded code point sequence
// and counts how often each one occurs.
package wordcount

import "github.com/Sunday111/Freqs/segment"

// An Entry is one distinct word.
type Entry struct {
	// Key is the folded code point sequence of the word, UTF-8 encoded.
	// Two occurrences are the same word exactly when their keys are equal.
	Key string
	// First is the range of the first occurrence ever registered. It stays
	// the canonical occurrence for rendering no matter how many more arrive.
	First segment.Word
	Count int
}

// Counts registers word occurrences over one folded code point sequence.
// Entries are never deleted; they live as long as the counting run.
type Counts struct {
	folded  []rune
	index   map[string]int // key to position in entries
	entries []Entry
}

// NewCounts returns an empty registry over folded. Word ranges passed to
// Hit index into that sequence.
func NewCounts(folded []rune) *Counts {
	return &Counts{
		folded: folded,
		index:  make(map[string]int),
	}
}

// Hit registers one occurrence of the word w. The first occurrence of a key
// creates its entry, repeats only increment the count.
func (cs *Counts) Hit(w segment.Word) {
	key := string(cs.folded[w.Begin:w.End])
	if i, ok := cs.index[key]; ok {
		cs.entries[i].Count++
		return
	}
	cs.index[key] = len(cs.entries)
	cs.entries = append(cs.entries, Entry{Key: key, First: w, Count: 1})
}

// Entries returns the distinct words in registration order.
func (cs *Counts) Entries() []Entry {
	return cs.entries
}

// Distinct returns the number of distinct words registered.
func (cs *Counts) Distinct() int {
	return len(cs.entries)
}

// Total returns the number of occurrences registered across all entries.
func (cs *Counts) Total() int {
	var total int
	for _, e := range cs.entries {
		total += e.Count
	}
	return total
}
