package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Excerpts of the real UCD files, including the record shapes the builder
// must skip: comments, blank lines, conditional SpecialCasing records, and
// UnicodeData rows with empty or self title case mappings.
const specialCasingSample = `# SpecialCasing-14.0.0.txt
# ================================

00DF; 00DF; 0053 0073; 0053 0053; # LATIN SMALL LETTER SHARP S
0130; 0069 0307; 0130; 0130; # LATIN CAPITAL LETTER I WITH DOT ABOVE
0149; 0149; 02BC 004E; 02BC 004E; # LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
FB04; FB04; 0046 0066 006C; 0046 0046 004C; # LATIN SMALL LIGATURE FFL

# Conditional mappings
03A3; 03C2; 03A3; 03A3; Final_Sigma; # GREEK CAPITAL LETTER SIGMA
00CC; 0069 0307 0300; 00CC; 00CC; lt; # LATIN CAPITAL LETTER I WITH GRAVE
0049; 0131; 0049; 0049; tr; # LATIN CAPITAL LETTER I
0307; ; 0307; 0307; tr After_I; # COMBINING DOT ABOVE
0069; 0069; 0069; 0130; tr; # LATIN SMALL LETTER I
`

const unicodeDataSample = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
01C4;LATIN CAPITAL LETTER DZ;Lu;0;L;<compat> 0044 017D;;;;N;LATIN LETTER D Z;;;01C6;01C5
01C5;LATIN CAPITAL LETTER D WITH SMALL LETTER Z;Lt;0;L;<compat> 0044 017E;;;;N;LATIN LETTER CAPITAL D SMALL Z;;01C4;01C6;01C5
01C6;LATIN SMALL LETTER DZ;Ll;0;L;<compat> 0064 017E;;;;N;LATIN LETTER SMALL D Z;;01C4;;01C5
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
`

func TestLoadSpecialCasing(t *testing.T) {
	b := newBuilder()
	require.NoError(t, b.loadSpecialCasing(strings.NewReader(specialCasingSample)))

	want := map[rune]mapping{
		0x00DF: {0x0053, 0x0073, 0},
		0x0149: {0x02BC, 0x004E, 0},
		0xFB04: {0x0046, 0x0066, 0x006C},
	}
	assert.Equal(t, want, b.table)
}

func TestLoadUnicodeData(t *testing.T) {
	b := newBuilder()
	require.NoError(t, b.loadUnicodeData(strings.NewReader(unicodeDataSample)))

	want := map[rune]mapping{
		0x0061: {0x0041, 0, 0},
		0x01C4: {0x01C5, 0, 0},
		0x01C6: {0x01C5, 0, 0},
	}
	assert.Equal(t, want, b.table)
}

// A code point may appear in both files with the same mapping; different
// mappings mean the sources contradict each other and must fail the build.
func TestMergeConflict(t *testing.T) {
	b := newBuilder()
	require.NoError(t, b.loadSpecialCasing(strings.NewReader(
		"0061; 0061; 0041; 0041; # identical to UnicodeData\n")))
	require.NoError(t, b.loadUnicodeData(strings.NewReader(
		"0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041\n")))
	assert.Equal(t, map[rune]mapping{0x0061: {0x0041, 0, 0}}, b.table)

	b = newBuilder()
	require.NoError(t, b.loadSpecialCasing(strings.NewReader(
		"0061; 0061; 0042; 0041; # conflicts with UnicodeData\n")))
	err := b.loadUnicodeData(strings.NewReader(
		"0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting mappings")
	assert.Contains(t, err.Error(), "U+0061")
}

// The guard behind titlecase.ToLowerTrAz: a multi rune tr or az lower
// case mapping must abort the build.
func TestTrAzLowerGuard(t *testing.T) {
	b := newBuilder()
	err := b.loadSpecialCasing(strings.NewReader(
		"0069; 0069 0307; 0069; 0130; tr; # hypothetical multi rune tr lower case\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ToLowerTrAz")

	// The same mapping under a non Turkic condition is fine.
	b = newBuilder()
	require.NoError(t, b.loadSpecialCasing(strings.NewReader(
		"0049; 0069 0307; 0049; 0049; lt More_Above; # Lithuanian\n")))
	assert.Empty(t, b.table)
}

func TestLoadSpecialCasingMalformed(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"too few fields", "00DF; 00DF\n", "fields"},
		{"bad code point", "GGGG; 0047; 0047; 0047; # nonsense\n", "bad code point"},
		{"too many title runes", "0061; 0061; 0041 0042 0043 0044; 0041; # bogus\n", "max is 3"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := newBuilder().loadSpecialCasing(strings.NewReader(test.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadUnicodeDataMalformed(t *testing.T) {
	err := newBuilder().loadUnicodeData(strings.NewReader(
		"XYZ;BROKEN;Ll;0;L;;;;;N;;;0041;;0041\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad code point")
}

func TestEntriesSorted(t *testing.T) {
	b := newBuilder()
	require.NoError(t, b.loadSpecialCasing(strings.NewReader(specialCasingSample)))
	require.NoError(t, b.loadUnicodeData(strings.NewReader(unicodeDataSample)))

	es := b.entries()
	require.NoError(t, validate(es))
	for i := 1; i < len(es); i++ {
		assert.Less(t, es[i-1].point, es[i].point)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		es   []entry
		want string
	}{
		{"valid", []entry{{'a', mapping{'A'}}, {'b', mapping{'B'}}}, ""},
		{"unsorted", []entry{{'b', mapping{'B'}}, {'a', mapping{'A'}}}, "ascending"},
		{"duplicate", []entry{{'a', mapping{'A'}}, {'a', mapping{'B'}}}, "ascending"},
		{"self mapping", []entry{{'a', mapping{'a'}}}, "self mapping"},
		{"empty mapping", []entry{{'a', mapping{}}}, "empty mapping"},
		{"zero slot gap", []entry{{'a', mapping{'A', 0, 'B'}}}, "zero slot"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := validate(test.es)
			if test.want == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.want)
			}
		})
	}
}

func TestWriteTables(t *testing.T) {
	es := []entry{
		{0x0061, mapping{0x0041, 0, 0}},
		{0xFB04, mapping{0x0046, 0x0066, 0x006C}},
	}
	var sb strings.Builder
	require.NoError(t, writeTables(&sb, "14.0.0", es))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "// Copyright"), "missing copyright header")
	assert.Contains(t, out, `// Code generated by "gentables -unicode 14.0.0"; DO NOT EDIT.`)
	assert.Contains(t, out, `const UnicodeVersion = "14.0.0"`)
	assert.Contains(t, out, "var _TitleCase = [2]titleCaseEntry{")
	assert.Contains(t, out, "{0x0061, [3]rune{0x0041, 0, 0}},")
	assert.Contains(t, out, "{0xFB04, [3]rune{0x0046, 0x0066, 0x006C}},")
	assert.Contains(t, out, "// ﬄ => Ffl")
}

func TestMappingString(t *testing.T) {
	assert.Equal(t, "", mapping{}.String())
	assert.Equal(t, "A", mapping{'A'}.String())
	assert.Equal(t, "Ffl", mapping{'F', 'f', 'l'}.String())
}
