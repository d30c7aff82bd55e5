// Package utf8scan decodes UTF-8 byte buffers into code points while keeping
// track of the source bytes each code point was decoded from.
package utf8scan

import "fmt"

// A DecodeError reports a malformed byte sequence.
type DecodeError struct {
	Offset  int // byte position where decoding failed
	Message string
}

// Error returns a string representation of the error
func (e DecodeError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

// Decode interprets buf as UTF-8 encoded text. It returns the code points in
// order and, parallel to them, the spans of source bytes they were decoded
// from; the spans tile buf exactly. On a malformed sequence Decode gives up
// and returns a DecodeError with no partial result.
//
// The decoder is looser than RFC 3629: the lead byte scan admits overlong
// encodings, surrogate values and five byte sequences. It rejects lead bytes
// that carry no length bit (0xBC..0xBF and 0xFC..0xFF), continuation bytes
// without the 10xxxxxx pattern, and sequences truncated by the end of the
// buffer.
func Decode(buf []byte) ([]rune, Spans, error) {
	var letters []rune
	var spans Spans
	for offset := 0; offset < len(buf); {
		letter, size, err := decodeLetter(buf, offset)
		if err != nil {
			return nil, nil, err
		}
		letters = append(letters, letter)
		spans = append(spans, Span{Offset: offset, Len: size})
		offset += size
	}
	return letters, spans, nil
}

// decodeLetter decodes the code point whose lead byte sits at buf[offset].
func decodeLetter(buf []byte, offset int) (rune, int, error) {
	letter, size, ok := interpretLead(buf[offset])
	if !ok {
		return 0, 0, DecodeError{offset, fmt.Sprintf("illegal lead byte %#x", buf[offset])}
	}
	for i := 1; i < size; i++ {
		if offset+i >= len(buf) {
			return 0, 0, DecodeError{len(buf), "truncated code point"}
		}
		b := buf[offset+i]
		if b&0xC0 != 0x80 {
			return 0, 0, DecodeError{offset + i, fmt.Sprintf("illegal continuation byte %#x", b)}
		}
		letter = letter<<6 | rune(b&0x3F)
	}
	return letter, size, nil
}

// interpretLead reads the total byte count and the initial value bits out of
// a lead byte. A clear high bit means a single byte code point with the byte
// as its value. Otherwise the position of the first zero bit, scanning from
// bit 5 down to bit 2, fixes the count at 7-bit and the value bits are the
// bits below it. Lead bytes with bits 5 through 2 all set encode no count
// and are rejected.
func interpretLead(b byte) (rune, int, bool) {
	if b&0x80 == 0 {
		return rune(b), 1, true
	}
	for bit := 5; bit > 1; bit-- {
		if b&(1<<bit) == 0 {
			return rune(b & (0xFF >> (8 - bit))), 7 - bit, true
		}
	}
	return 0, 0, false
}
