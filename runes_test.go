package titlecase

import "testing"

func collect(rs Runes) []rune {
	var out []rune
	for {
		r, ok := rs.Next()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func collectBack(rs Runes) []rune {
	var out []rune
	for {
		r, ok := rs.NextBack()
		if !ok {
			return out
		}
		out = append(out, r)
	}
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type RunesTest struct {
	in  [3]rune
	out []rune
	str string
}

var runesTests = []RunesTest{
	{[3]rune{0, 0, 0}, nil, ""},
	{[3]rune{'A', 0, 0}, []rune{'A'}, "A"},
	{[3]rune{'ʼ', 'N', 0}, []rune{'ʼ', 'N'}, "ʼN"},
	{[3]rune{'F', 'f', 'l'}, []rune{'F', 'f', 'l'}, "Ffl"},
}

func TestRunes(t *testing.T) {
	for _, test := range runesTests {
		rs := newRunes(test.in)
		if got := rs.Len(); got != len(test.out) {
			t.Errorf("newRunes(%q).Len() = %d; want: %d", test.in, got, len(test.out))
		}
		if got := rs.String(); got != test.str {
			t.Errorf("newRunes(%q).String() = %q; want: %q", test.in, got, test.str)
		}
		if got := collect(rs); !equalRunes(got, test.out) {
			t.Errorf("collect(newRunes(%q)) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestRunesBack(t *testing.T) {
	for _, test := range runesTests {
		want := make([]rune, len(test.out))
		for i, r := range test.out {
			want[len(want)-1-i] = r
		}
		if got := collectBack(newRunes(test.in)); !equalRunes(got, want) {
			t.Errorf("collectBack(newRunes(%q)) = %q; want: %q", test.in, got, want)
		}
	}
}

func TestRunesBothEnds(t *testing.T) {
	rs := newRunes([3]rune{'F', 'f', 'l'})
	if r, ok := rs.Next(); !ok || r != 'F' {
		t.Fatalf("Next() = %q, %t; want: 'F', true", r, ok)
	}
	if r, ok := rs.NextBack(); !ok || r != 'l' {
		t.Fatalf("NextBack() = %q, %t; want: 'l', true", r, ok)
	}
	if n := rs.Len(); n != 1 {
		t.Fatalf("Len() = %d; want: 1", n)
	}
	if s := rs.String(); s != "f" {
		t.Fatalf("String() = %q; want: %q", s, "f")
	}
	if r, ok := rs.Next(); !ok || r != 'f' {
		t.Fatalf("Next() = %q, %t; want: 'f', true", r, ok)
	}
	if _, ok := rs.Next(); ok {
		t.Fatal("Next() on an exhausted iterator returned ok")
	}
	if _, ok := rs.NextBack(); ok {
		t.Fatal("NextBack() on an exhausted iterator returned ok")
	}
}

// Copies of a Runes must iterate independently.
func TestRunesCopy(t *testing.T) {
	rs := ToTitleCase('ﬄ')
	cp := rs
	rs.Next()
	rs.Next()
	if got, want := cp.Len(), 3; got != want {
		t.Fatalf("copied iterator Len() = %d; want: %d", got, want)
	}
	if got := collect(cp); !equalRunes(got, []rune{'F', 'f', 'l'}) {
		t.Fatalf("collect(copy) = %q; want: %q", got, "Ffl")
	}
}

func TestRunesZeroValue(t *testing.T) {
	var rs Runes
	if rs.Len() != 0 {
		t.Errorf("zero value Len() = %d; want: 0", rs.Len())
	}
	if _, ok := rs.Next(); ok {
		t.Error("zero value Next() returned ok")
	}
	if s := rs.String(); s != "" {
		t.Errorf("zero value String() = %q; want: %q", s, "")
	}
}

// For every table entry the iterator length must equal the number of
// non-zero mapping slots, and forward then backward iteration must yield
// the same runes in opposite orders.
func TestRunesTableRoundTrip(t *testing.T) {
	for _, e := range _TitleCase {
		n := 0
		for _, r := range e.title {
			if r != 0 {
				n++
			}
		}
		rs := ToTitleCase(e.point)
		if rs.Len() != n {
			t.Fatalf("ToTitleCase(%q).Len() = %d; want: %d", e.point, rs.Len(), n)
		}
		fwd := collect(rs)
		bck := collectBack(ToTitleCase(e.point))
		for i := range fwd {
			if fwd[i] != bck[len(bck)-1-i] {
				t.Fatalf("ToTitleCase(%q): forward %q does not reverse to %q",
					e.point, fwd, bck)
			}
		}
	}
}
