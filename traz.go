package titlecase

import "unicode"

// Turkish and Azerbaijani share the dotted and dotless I case rules:
//
//	I (U+0049) lower cases to ı (U+0131)
//	İ (U+0130) lower cases to i (U+0069)
//	i (U+0069) upper and title cases to İ (U+0130)
//
// Every other rune uses the standard Unicode mappings.

// ToUpperTrAz returns the Turkish/Azerbaijani upper case mapping of r as a
// rune iterator: 'i' is rewritten to 'İ' before the standard upper case
// mapping is applied.
func ToUpperTrAz(r rune) Runes {
	if r == 'i' {
		r = 'İ'
	}
	return newRunes([3]rune{unicode.ToUpper(r), 0, 0})
}

// ToLowerTrAz returns the Turkish/Azerbaijani lower case mapping of r.
//
// It returns a single rune rather than a Runes sequence: no tr or az lower
// case mapping expands to more than one rune in any Unicode version to
// date. That is a property of the UCD data, not of this package — the
// table generator aborts if SpecialCasing.txt ever introduces a multi-rune
// tr/az lower case mapping, at which point this signature must change.
func ToLowerTrAz(r rune) rune {
	switch r {
	case 'I':
		return 'ı'
	case 'İ':
		return 'i'
	}
	return unicode.ToLower(r)
}

// IsUpperTrAz reports whether r is an upper case letter. Case membership
// does not differ between the tr/az and default locales, only case
// mappings do.
func IsUpperTrAz(r rune) bool {
	return unicode.IsUpper(r)
}

// IsLowerTrAz reports whether r is a lower case letter.
func IsLowerTrAz(r rune) bool {
	return unicode.IsLower(r)
}
