package titlecase

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// The runtime lookup binary searches _TitleCase, so the keys must be
// strictly ascending.
func TestTableSorted(t *testing.T) {
	last := rune(-1)
	for _, e := range _TitleCase {
		if e.point <= last {
			t.Fatalf("table keys not strictly ascending: %U after %U", e.point, last)
		}
		last = e.point
	}
}

// The table stores only runes whose title case differs from themselves;
// a self mapping would make IsTitleCase lie.
func TestTableNoSelfMapping(t *testing.T) {
	for _, e := range _TitleCase {
		if e.title[0] == e.point {
			t.Errorf("%U: self mapping", e.point)
		}
	}
}

// Zero is the trailing slot sentinel: it must never precede a mapped rune,
// and the first slot must always be populated.
func TestTableSentinelShape(t *testing.T) {
	for _, e := range _TitleCase {
		if e.title[0] == 0 {
			t.Errorf("%U: empty mapping", e.point)
		}
		if e.title[1] == 0 && e.title[2] != 0 {
			t.Errorf("%U: zero slot before %U", e.point, e.title[2])
		}
	}
}

func TestTableValidRunes(t *testing.T) {
	for _, e := range _TitleCase {
		if !utf8.ValidRune(e.point) {
			t.Errorf("invalid key %U", e.point)
		}
		for _, r := range e.title {
			if r != 0 && !utf8.ValidRune(r) {
				t.Errorf("%U: invalid mapped rune %U", e.point, r)
			}
		}
	}
}

// IsTitleCase must agree with range table membership of the table keys
// for every rune.
func TestTableMatchesIsTitleCase(t *testing.T) {
	points := make([]rune, len(_TitleCase))
	for i, e := range _TitleCase {
		points[i] = e.point
	}
	tbl := rangetable.New(points...)
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if got, want := IsTitleCase(r), !unicode.Is(tbl, r); got != want {
			t.Fatalf("IsTitleCase(%q) = %t; want: %t", r, got, want)
		}
	}
}

// The first rune of every mapping must itself be in title case form,
// otherwise title casing would not be idempotent.
func TestTableFirstRuneTitleStable(t *testing.T) {
	for _, e := range _TitleCase {
		if !IsTitleCase(e.title[0]) {
			t.Errorf("%U: first mapped rune %U is not title case", e.point, e.title[0])
		}
	}
}
