package titlecase

import "unicode/utf8"

// A Runes iterates over the runes of a single case mapping. It holds at
// most three runes and supports extraction from both ends. The zero value
// is an exhausted iterator. Runes is a value type: copies iterate
// independently of each other.
type Runes struct {
	runes      [3]rune
	head, tail int8
}

// newRunes strips the zero sentinel slots from a table mapping. The stored
// runes are never zero: a NUL input rune produces an empty iterator.
func newRunes(title [3]rune) Runes {
	var rs Runes
	for _, r := range title {
		if r == 0 {
			break
		}
		rs.runes[rs.tail] = r
		rs.tail++
	}
	return rs
}

// Len returns the number of runes remaining.
func (rs Runes) Len() int {
	return int(rs.tail - rs.head)
}

// Next removes and returns the first remaining rune. It returns ok == false
// once the iterator is exhausted.
func (rs *Runes) Next() (r rune, ok bool) {
	if rs.head == rs.tail {
		return 0, false
	}
	r = rs.runes[rs.head]
	rs.head++
	return r, true
}

// NextBack removes and returns the last remaining rune. It returns
// ok == false once the iterator is exhausted.
func (rs *Runes) NextBack() (r rune, ok bool) {
	if rs.head == rs.tail {
		return 0, false
	}
	rs.tail--
	return rs.runes[rs.tail], true
}

// String returns the remaining runes UTF-8 encoded, without consuming them.
func (rs Runes) String() string {
	var buf [3 * utf8.UTFMax]byte
	n := 0
	for i := rs.head; i < rs.tail; i++ {
		n += utf8.EncodeRune(buf[n:], rs.runes[i])
	}
	return string(buf[:n])
}
