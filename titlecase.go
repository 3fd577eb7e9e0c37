//go:generate go run -tags gen gen.go

package titlecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// titleCaseEntry is one row of the generated _TitleCase table: a code point
// and its title case mapping of up to three runes. Unused trailing slots
// are zero.
type titleCaseEntry struct {
	point rune
	title [3]rune
}

func compareEntry(e titleCaseEntry, r rune) int {
	if e.point < r {
		return -1
	}
	if e.point > r {
		return 1
	}
	return 0
}

// TitleCase returns the title case mapping of r as up to three runes with
// unused trailing slots set to zero. Runes whose title case is themselves,
// which is every rune not present in the mapping table, map to
// [3]rune{r, 0, 0}.
func TitleCase(r rune) [3]rune {
	if i, ok := slices.BinarySearchFunc(_TitleCase[:], r, compareEntry); ok {
		return _TitleCase[i].title
	}
	return [3]rune{r, 0, 0}
}

// TitleCaseTrAz is TitleCase for the Turkish and Azerbaijani locales, where
// 'i' (U+0069) title cases to 'İ' (U+0130). That is the only rune whose
// title case differs between tr/az and the default locale.
func TitleCaseTrAz(r rune) [3]rune {
	if r == 'i' {
		return [3]rune{'İ', 0, 0}
	}
	return TitleCase(r)
}

// IsTitleCase reports whether r is already in title case form, that is,
// whether the title case of r is r itself. Unlike unicode.IsTitle this is
// defined for every rune, not just the titlecase letter category.
func IsTitleCase(r rune) bool {
	_, ok := slices.BinarySearchFunc(_TitleCase[:], r, compareEntry)
	return !ok
}

// ToTitleCase returns an iterator over the runes of the title case mapping
// of r.
func ToTitleCase(r rune) Runes {
	return newRunes(TitleCase(r))
}

// ToTitleCaseTrAz returns an iterator over the runes of the Turkish/
// Azerbaijani title case mapping of r.
func ToTitleCaseTrAz(r rune) Runes {
	return newRunes(TitleCaseTrAz(r))
}

// titleFirst title cases the first rune of s with title and, if lower is
// non-nil, lower cases the remainder with it. An invalid leading byte is
// copied through unchanged.
func titleFirst(s string, title func(rune) [3]rune, lower func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	var b strings.Builder
	b.Grow(len(s))
	if r == utf8.RuneError && size == 1 {
		b.WriteByte(s[0])
	} else if tc := title(r); tc[0] == 0 {
		// Only r == NUL maps to an all-zero array: the table stores no
		// zero runes and a lookup miss echoes r. Preserve the NUL.
		b.WriteRune(r)
	} else {
		for _, t := range tc {
			if t == 0 {
				break
			}
			b.WriteRune(t)
		}
	}
	rest := s[size:]
	if lower == nil {
		b.WriteString(rest)
	} else {
		for _, r := range rest {
			b.WriteRune(lower(r))
		}
	}
	return b.String()
}

// Title returns s with its first rune replaced by its title case mapping.
// The remainder of the string is unchanged.
func Title(s string) string {
	return titleFirst(s, TitleCase, nil)
}

// TitleLowerRest returns s with its first rune replaced by its title case
// mapping and every following rune lower cased with unicode.ToLower.
func TitleLowerRest(s string) string {
	return titleFirst(s, TitleCase, unicode.ToLower)
}

// TitleTrAz is Title using the Turkish/Azerbaijani title case mapping for
// the first rune.
func TitleTrAz(s string) string {
	return titleFirst(s, TitleCaseTrAz, nil)
}

// TitleLowerRestTrAz is TitleLowerRest using the Turkish/Azerbaijani
// mappings: the first rune is title cased with TitleCaseTrAz and the
// remainder lower cased with ToLowerTrAz.
func TitleLowerRestTrAz(s string) string {
	return titleFirst(s, TitleCaseTrAz, ToLowerTrAz)
}

// StartsTitleCase reports whether the first rune of s is in title case
// form. It returns false for the empty string.
func StartsTitleCase(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return IsTitleCase(r)
}

// StartsTitleCaseLowerRest reports whether the first rune of s is in title
// case form and every following rune is lower case. It returns false for
// the empty string.
func StartsTitleCaseLowerRest(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	if !IsTitleCase(r) {
		return false
	}
	for _, r := range s[size:] {
		if !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
