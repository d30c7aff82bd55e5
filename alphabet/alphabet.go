// Package alphabet classifies code points against a fixed set of cased
// alphabets and folds upper case letters to lower case.
package alphabet

import "github.com/Sunday111/Freqs/errors"

// An Alphabet describes one cased alphabet as three code point thresholds:
// a block of upper case letters starting at UpperBegin, immediately followed
// by the lower case block [LowerBegin, LowerEnd). LowerEnd is exclusive.
type Alphabet struct {
	UpperBegin rune
	LowerBegin rune
	LowerEnd   rune
}

// Table is a list of alphabets ordered by ascending UpperBegin. Contains
// relies on that order to stop at the first alphabet starting beyond the
// code point, so tables must be built with NewTable or validated by hand.
type Table []Alphabet

// NewTable builds a Table from the given alphabets, validating the shape of
// each entry and the ordering of the whole table.
func NewTable(alphabets ...Alphabet) (Table, error) {
	t := Table(alphabets)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks that every entry satisfies UpperBegin <= LowerBegin <=
// LowerEnd and that entries are sorted by ascending UpperBegin.
func (t Table) Validate() error {
	for i, a := range t {
		if a.UpperBegin > a.LowerBegin || a.LowerBegin > a.LowerEnd {
			return errors.Errorf("alphabet %d: thresholds out of order (%d, %d, %d)",
				i, a.UpperBegin, a.LowerBegin, a.LowerEnd)
		}
		if i > 0 && t[i-1].UpperBegin >= a.UpperBegin {
			return errors.Errorf("alphabet %d: table not sorted by UpperBegin", i)
		}
	}
	return nil
}

// Default returns the table the freqs tool runs with: basic Latin and basic
// Cyrillic. LowerEnd is exclusive, so the Latin block stops short of 'z' and
// the Cyrillic block excludes 'ё'.
func Default() Table {
	return Table{
		// Latin
		{UpperBegin: 'A', LowerBegin: 'a', LowerEnd: 'z'},
		// Cyrillic
		{UpperBegin: 'А', LowerBegin: 'а', LowerEnd: 'я' + 1},
	}
}

// Contains reports whether r is a letter of one of the table's alphabets.
// On unfolded input the span between the Latin upper and lower case blocks
// also admits ASCII '[' through '`'; Fold shifts those past the block end,
// so a folded sequence never classifies them as letters.
func (t Table) Contains(r rune) bool {
	for _, a := range t {
		if r < a.UpperBegin {
			return false
		}
		if r < a.LowerEnd {
			return true
		}
	}
	return false
}

// Fold maps an upper case letter to its lower case form by shifting it into
// the alphabet's lower block. Code points outside every upper case block
// come back unchanged, so folding an already folded code point is a no-op.
func (t Table) Fold(r rune) rune {
	for _, a := range t {
		if r >= a.UpperBegin && r < a.LowerBegin {
			return r + (a.LowerBegin - a.UpperBegin)
		}
	}
	return r
}

// FoldAll folds every code point of letters into a new slice. The input is
// left untouched.
func (t Table) FoldAll(letters []rune) []rune {
	folded := make([]rune, len(letters))
	for i, r := range letters {
		folded[i] = t.Fold(r)
	}
	return folded
}
