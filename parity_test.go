package titlecase

import (
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Parity with golang.org/x/text/cases on single words. The sample set is
// pinned to runes whose mappings are stable across Unicode versions and
// avoids the two places the packages legitimately differ: x/text applies
// the full lower case mapping to the rest of the word (İ => i followed by
// a combining dot, Greek final sigma) where TitleLowerRest applies the
// simple one.
var parityWords = []string{
	"",
	"hello",
	"HELLO",
	"hELLo",
	"world",
	"ǄUNGLA",
	"ǆungla",
	"ﬄabc",
	"ﬄABC",
	"ßen",
	"ŉandi",
	"ŉANDI",
	"ǌegoš",
}

func TestTitleLowerRestParity(t *testing.T) {
	caser := cases.Title(language.Und)
	for _, word := range parityWords {
		want := caser.String(word)
		if got := TitleLowerRest(word); got != want {
			t.Errorf("TitleLowerRest(%q) = %q; want (x/text): %q", word, got, want)
		}
	}
}

var parityWordsTrAz = []string{
	"",
	"iIiİ",
	"istanbul",
	"ISTANBUL",
	"ırmak",
	"IRMAK",
	"hello",
	"diyarbakır",
}

func TestTitleLowerRestTrAzParity(t *testing.T) {
	for _, tag := range []language.Tag{language.Turkish, language.Azerbaijani} {
		caser := cases.Title(tag)
		for _, word := range parityWordsTrAz {
			want := caser.String(word)
			if got := TitleLowerRestTrAz(word); got != want {
				t.Errorf("TitleLowerRestTrAz(%q) = %q; want (x/text %v): %q",
					word, got, tag, want)
			}
		}
	}
}
