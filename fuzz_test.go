// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package titlecase

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// referenceTitle is an independent construction of Title built on the
// Runes iterator instead of the raw table arrays.
func referenceTitle(s string, trAz bool) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return s
	}
	var rs Runes
	if trAz {
		rs = ToTitleCaseTrAz(r)
	} else {
		rs = ToTitleCase(r)
	}
	var b strings.Builder
	b.Grow(len(s))
	if rs.Len() == 0 {
		b.WriteRune(r) // NUL title cases to itself
	} else {
		b.WriteString(rs.String())
	}
	b.WriteString(s[size:])
	return b.String()
}

func FuzzTitle(f *testing.F) {
	seeds := []string{
		"",
		"hello",
		"ﬄabc",
		"iIiİ",
		"ǄUNGLA",
		"ßen",
		"a\x00b",
		"\xff\xfe",
		"日本語",
		string(rune(0x10FFFD)),
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got := Title(s)
		if want := referenceTitle(s, false); got != want {
			t.Errorf("Title(%q) = %q; want: %q", s, got, want)
		}
		if got, want := TitleTrAz(s), referenceTitle(s, true); got != want {
			t.Errorf("TitleTrAz(%q) = %q; want: %q", s, got, want)
		}
		if s != "" && !StartsTitleCase(got) {
			t.Errorf("Title(%q) = %q does not start with a title case rune", s, got)
		}
		if utf8.ValidString(s) && !utf8.ValidString(got) {
			t.Errorf("Title(%q) = %q is not valid UTF-8", s, got)
		}
	})
}

func FuzzTitleLowerRest(f *testing.F) {
	seeds := []string{"", "ﬄABC", "iIiİ", "HELLO", "ǄUNGLA", "\xffABC"}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got := TitleLowerRest(s)
		var want string
		if s != "" {
			_, size := utf8.DecodeRuneInString(s)
			want = referenceTitle(s[:size], false) + strings.ToLower(s[size:])
		}
		if got != want {
			t.Errorf("TitleLowerRest(%q) = %q; want: %q", s, got, want)
		}
	})
}

func FuzzToTitleCase(f *testing.F) {
	for _, r := range []rune{0, 'a', 'A', 'i', 'İ', 'ß', 'ﬄ', 'Ǆ', 0x10FFFD, -1} {
		f.Add(r)
	}
	f.Fuzz(func(t *testing.T, r rune) {
		tc := TitleCase(r)
		if (tc[0] == r) != IsTitleCase(r) {
			t.Errorf("IsTitleCase(%q) = %t disagrees with TitleCase(%q) = %q",
				r, IsTitleCase(r), r, tc)
		}
		rs := ToTitleCase(r)
		n := 0
		for _, m := range tc {
			if m != 0 {
				n++
			}
		}
		if rs.Len() != n {
			t.Errorf("ToTitleCase(%q).Len() = %d; want: %d", r, rs.Len(), n)
		}
		fwd := rs
		bck := rs
		var a, b []rune
		for {
			r, ok := fwd.Next()
			if !ok {
				break
			}
			a = append(a, r)
		}
		for {
			r, ok := bck.NextBack()
			if !ok {
				break
			}
			b = append(b, r)
		}
		if len(a) != len(b) {
			t.Fatalf("forward yielded %d runes, backward %d", len(a), len(b))
		}
		for i := range a {
			if a[i] != b[len(b)-1-i] {
				t.Errorf("ToTitleCase(%q): forward %q does not reverse to %q", r, a, b)
			}
		}
		if r != 'i' {
			if got, want := TitleCaseTrAz(r), tc; got != want {
				t.Errorf("TitleCaseTrAz(%q) = %q; want: %q", r, got, want)
			}
		}
	})
}
