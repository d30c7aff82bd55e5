package utf8scan

// A Span locates the encoded form of one code point in the source buffer.
type Span struct {
	Offset int
	Len    int
}

// End returns the offset one past the last byte of the span.
func (s Span) End() int {
	return s.Offset + s.Len
}

// Spans is the byte span table produced by Decode, one entry per code point.
// It is read only after decoding and exists so that text can be re-emitted
// in its original encoding without re-decoding the buffer.
type Spans []Span

// Bytes returns the source bytes of the code points [begin, end). Spans
// produced by Decode tile the buffer, so the result is one contiguous slice
// of src and no copy is made.
func (ss Spans) Bytes(src []byte, begin, end int) []byte {
	if begin == end {
		return nil
	}
	return src[ss[begin].Offset:ss[end-1].End()]
}
