package titlecase

import (
	"testing"
	"unicode"
)

type RuneMapTest struct {
	in, out rune
}

var toLowerTrAzTests = []RuneMapTest{
	{'I', 'ı'},
	{'İ', 'i'},
	{'i', 'i'},
	{'ı', 'ı'},
	{'A', 'a'},
	{'a', 'a'},
	{'Ǆ', 'ǆ'},
	{'1', '1'},
}

func TestToLowerTrAz(t *testing.T) {
	for _, test := range toLowerTrAzTests {
		if got := ToLowerTrAz(test.in); got != test.out {
			t.Errorf("ToLowerTrAz(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
	// Everything but the two dotted/dotless capitals follows the standard
	// mapping.
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r == 'I' || r == 'İ' {
			continue
		}
		if got, want := ToLowerTrAz(r), unicode.ToLower(r); got != want {
			t.Fatalf("ToLowerTrAz(%q) = %q; want: %q", r, got, want)
		}
	}
}

type UpperTrAzTest struct {
	in  rune
	out string
}

var toUpperTrAzTests = []UpperTrAzTest{
	{'i', "İ"},
	{'ı', "I"},
	{'I', "I"},
	{'İ', "İ"},
	{'a', "A"},
	{'ǆ', "Ǆ"},
	{'1', "1"},
}

func TestToUpperTrAz(t *testing.T) {
	for _, test := range toUpperTrAzTests {
		rs := ToUpperTrAz(test.in)
		if got := rs.String(); got != test.out {
			t.Errorf("ToUpperTrAz(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
	for r := rune(1); r <= unicode.MaxRune; r++ {
		if r == 'i' {
			continue
		}
		rs := ToUpperTrAz(r)
		if rs.Len() != 1 {
			t.Fatalf("ToUpperTrAz(%q).Len() = %d; want: 1", r, rs.Len())
		}
		if got, want := mustNext(t, &rs), unicode.ToUpper(r); got != want {
			t.Fatalf("ToUpperTrAz(%q) = %q; want: %q", r, got, want)
		}
	}
}

func mustNext(t *testing.T, rs *Runes) rune {
	t.Helper()
	r, ok := rs.Next()
	if !ok {
		t.Fatal("Next() on an exhausted iterator")
	}
	return r
}

// Case membership predicates do not vary by locale.
func TestTrAzPredicates(t *testing.T) {
	for _, r := range []rune{'I', 'İ', 'i', 'ı', 'A', 'a', '1', 'Ǆ', 'ǅ', 'ǆ'} {
		if got, want := IsUpperTrAz(r), unicode.IsUpper(r); got != want {
			t.Errorf("IsUpperTrAz(%q) = %t; want: %t", r, got, want)
		}
		if got, want := IsLowerTrAz(r), unicode.IsLower(r); got != want {
			t.Errorf("IsLowerTrAz(%q) = %t; want: %t", r, got, want)
		}
	}
}

func BenchmarkToLowerTrAz(b *testing.B) {
	runes := [4]rune{'I', 'İ', 'a', '界'}
	for i := 0; i < b.N; i++ {
		ToLowerTrAz(runes[i%len(runes)])
	}
}
