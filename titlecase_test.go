package titlecase

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

type TitleCaseTest struct {
	in  rune
	out [3]rune
}

var titleCaseTests = []TitleCaseTest{
	{'A', [3]rune{'A', 0, 0}},
	{'a', [3]rune{'A', 0, 0}},
	{'i', [3]rune{'I', 0, 0}},
	{'Ǆ', [3]rune{'ǅ', 0, 0}},
	{'ǅ', [3]rune{'ǅ', 0, 0}},
	{'ǆ', [3]rune{'ǅ', 0, 0}},
	{'ß', [3]rune{'S', 's', 0}},
	{'ﬄ', [3]rune{'F', 'f', 'l'}},
	{'ŉ', [3]rune{'ʼ', 'N', 0}},
	{'İ', [3]rune{'İ', 0, 0}},
	{'1', [3]rune{'1', 0, 0}},
	{' ', [3]rune{' ', 0, 0}},
	{0, [3]rune{0, 0, 0}},
	{utf8.RuneError, [3]rune{utf8.RuneError, 0, 0}},
	{0x10FFFD, [3]rune{0x10FFFD, 0, 0}}, // unassigned
}

func TestTitleCase(t *testing.T) {
	for _, test := range titleCaseTests {
		if got := TitleCase(test.in); got != test.out {
			t.Errorf("TitleCase(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

func TestTitleCaseTrAz(t *testing.T) {
	if got := TitleCaseTrAz('i'); got != [3]rune{'İ', 0, 0} {
		t.Errorf("TitleCaseTrAz('i') = %q; want: %q", got, [3]rune{'İ', 0, 0})
	}
	// 'i' is the only rune whose title case differs between the tr/az and
	// default locales.
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r == 'i' {
			continue
		}
		if got, want := TitleCaseTrAz(r), TitleCase(r); got != want {
			t.Fatalf("TitleCaseTrAz(%q) = %q; want: %q", r, got, want)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	for r := rune(0); r <= unicode.MaxRune; r++ {
		want := TitleCase(r)[0] == r
		if got := IsTitleCase(r); got != want {
			t.Errorf("IsTitleCase(%q) = %t; want: %t", r, got, want)
		}
	}
}

// Every rune absent from the table must map to itself with zeroed
// trailing slots.
func TestTitleCaseSelf(t *testing.T) {
	for _, r := range []rune{'A', 'Ǆ' - 1, '0', '\n', 0xE000, unicode.MaxRune} {
		if !IsTitleCase(r) {
			continue
		}
		if got, want := TitleCase(r), ([3]rune{r, 0, 0}); got != want {
			t.Errorf("TitleCase(%q) = %q; want: %q", r, got, want)
		}
	}
}

type TitleTest struct {
	in, out string
}

var titleTests = []TitleTest{
	{"", ""},
	{"hello", "Hello"},
	{"Hello", "Hello"},
	{"hELLO", "HELLO"},
	{"ǆungla", "ǅungla"},
	{"ﬄabc", "Fflabc"},
	{"ßen", "Ssen"},
	{"iIiİ", "IIiİ"},
	{"\x00abc", "\x00abc"},
	{"\xffabc", "\xffabc"}, // invalid leading byte passes through
	{"日本語", "日本語"},
}

func TestTitle(t *testing.T) {
	for _, test := range titleTests {
		if got := Title(test.in); got != test.out {
			t.Errorf("Title(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var titleLowerRestTests = []TitleTest{
	{"", ""},
	{"hello", "Hello"},
	{"HELLO", "Hello"},
	{"ﬄabc", "Fflabc"},
	{"ﬄABC", "Fflabc"},
	{"ǄUNGLA", "ǅungla"},
	{"iIiİ", "Iiii"}, // the simple lower case mapping of İ is plain i
	{"日本語", "日本語"},
}

func TestTitleLowerRest(t *testing.T) {
	for _, test := range titleLowerRestTests {
		if got := TitleLowerRest(test.in); got != test.out {
			t.Errorf("TitleLowerRest(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var titleTrAzTests = []TitleTest{
	{"", ""},
	{"istanbul", "İstanbul"},
	{"ırmak", "Irmak"},
	{"hello", "Hello"},
	{"ﬄabc", "Fflabc"},
}

func TestTitleTrAz(t *testing.T) {
	for _, test := range titleTrAzTests {
		if got := TitleTrAz(test.in); got != test.out {
			t.Errorf("TitleTrAz(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

var titleLowerRestTrAzTests = []TitleTest{
	{"", ""},
	{"iIiİ", "İıii"},
	{"istanbul", "İstanbul"},
	{"ISTANBUL", "Istanbul"}, // capital I title cases to itself even in tr/az
	{"ırmak", "Irmak"},
	{"DİYARBAKIR", "Diyarbakır"},
}

func TestTitleLowerRestTrAz(t *testing.T) {
	for _, test := range titleLowerRestTrAzTests {
		if got := TitleLowerRestTrAz(test.in); got != test.out {
			t.Errorf("TitleLowerRestTrAz(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

type StartsTest struct {
	in  string
	out bool
}

var startsTitleCaseTests = []StartsTest{
	{"", false},
	{"Hello", true},
	{"hello", false},
	{"ǅungla", true},
	{"Ǆungla", false},
	{"ǆungla", false},
	{"İstanbul", true},
	{"1abc", true},
	{" abc", true},
}

func TestStartsTitleCase(t *testing.T) {
	for _, test := range startsTitleCaseTests {
		if got := StartsTitleCase(test.in); got != test.out {
			t.Errorf("StartsTitleCase(%q) = %t; want: %t", test.in, got, test.out)
		}
	}
}

var startsTitleCaseLowerRestTests = []StartsTest{
	{"", false},
	{"Hello", true},
	{"HELLO", false},
	{"hello", false},
	{"ǅungla", true},
	{"İİ", false}, // second rune is not lower case
	{"İi", true},
	{"A", true},
	{"Ab1", false},
}

func TestStartsTitleCaseLowerRest(t *testing.T) {
	for _, test := range startsTitleCaseLowerRestTests {
		if got := StartsTitleCaseLowerRest(test.in); got != test.out {
			t.Errorf("StartsTitleCaseLowerRest(%q) = %t; want: %t", test.in, got, test.out)
		}
	}
}

func TestTitleAllocatesOnce(t *testing.T) {
	in := strings.Repeat("ﬄabc", 4)
	allocs := testing.AllocsPerRun(100, func() {
		Title(in)
	})
	if allocs > 1 {
		t.Errorf("Title(%q) allocates %.1f times per call; want: 1", in, allocs)
	}
}

func BenchmarkTitleCase(b *testing.B) {
	runes := [4]rune{'a', 'A', 'ﬄ', '界'}
	for i := 0; i < b.N; i++ {
		TitleCase(runes[i%len(runes)])
	}
}

func BenchmarkIsTitleCase(b *testing.B) {
	runes := [4]rune{'a', 'A', 'ﬄ', '界'}
	for i := 0; i < b.N; i++ {
		IsTitleCase(runes[i%len(runes)])
	}
}

func BenchmarkTitle(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Title("ﬄabc")
	}
}

func BenchmarkTitleLowerRest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TitleLowerRest("ǄUNGLA")
	}
}
