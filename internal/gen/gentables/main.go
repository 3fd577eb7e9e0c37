// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the title case lookup table used by titlecase from
// the UCD files SpecialCasing.txt and UnicodeData.txt. It is run via
// `go generate` in the repository root and rewrites tables.go there.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/charlievieth/titlecase/internal/gen/gen"
	"github.com/charlievieth/titlecase/internal/gen/ucd"
	"github.com/charlievieth/titlecase/internal/gen/util"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout)
}

var dryRun = flag.Bool("dry-run", false,
	"write the generated table to stdout instead of tables.go")

// mapping is a title case expansion of up to three runes; unused trailing
// slots are zero.
type mapping [3]rune

// String returns the mapped runes, zero slots excluded.
func (m mapping) String() string {
	var b strings.Builder
	for _, r := range m {
		if r == 0 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

type entry struct {
	point rune
	title mapping
}

// builder accumulates the title case table merged from both UCD sources.
type builder struct {
	table map[rune]mapping
}

func newBuilder() *builder {
	return &builder{table: make(map[rune]mapping)}
}

// add records cp => m. A duplicate with an identical mapping is a no-op
// since a code point may legitimately appear in both source files; a
// duplicate with a different mapping means the sources contradict each
// other and the build must fail rather than silently pick one.
func (b *builder) add(src string, cp rune, m mapping) error {
	if old, ok := b.table[cp]; ok && old != m {
		return fmt.Errorf("%s: conflicting mappings for %U: %q != %q", src, cp, old, m)
	}
	b.table[cp] = m
	return nil
}

// checkTrAzLower enforces the assumption that no Turkish or Azerbaijani
// lower case mapping is multi rune. titlecase.ToLowerTrAz returns a single
// rune on the strength of this; if the UCD ever violates it the build must
// fail loudly so the signature can be fixed, rather than ship a silently
// truncated mapping.
func checkTrAzLower(cond string, cp rune, lower []rune) error {
	for _, c := range strings.Fields(cond) {
		if (c == "tr" || c == "az") && len(lower) > 1 {
			return fmt.Errorf("SpecialCasing.txt: %U: %s lower case mapping %q has "+
				"%d runes; titlecase.ToLowerTrAz assumes at most one",
				cp, c, string(lower), len(lower))
		}
	}
	return nil
}

// loadSpecialCasing records the unconditional title case mappings from
// SpecialCasing.txt. Records are: cp; lower; title; upper; conditions.
// Conditional records are locale or context dependent and excluded from
// the default table, but their lower case fields are run through
// checkTrAzLower before being skipped.
func (b *builder) loadSpecialCasing(r io.Reader) error {
	p := ucd.New(r)
	for p.Next() {
		if p.Fields() < 4 {
			return fmt.Errorf("SpecialCasing.txt:%d: record has %d fields, want at least 4",
				p.Line(), p.Fields())
		}
		cp := p.Rune(0)
		if cond := p.String(4); cond != "" {
			if err := checkTrAzLower(cond, cp, p.Runes(1)); err != nil {
				return err
			}
			continue
		}
		title := p.Runes(2)
		if len(title) > 3 {
			return fmt.Errorf("SpecialCasing.txt:%d: title mapping of %U has %d runes, max is 3",
				p.Line(), cp, len(title))
		}
		if len(title) == 0 || title[0] == cp {
			// A code point absent from the table is its own title case.
			continue
		}
		var m mapping
		copy(m[:], title)
		if err := b.add("SpecialCasing.txt", cp, m); err != nil {
			return err
		}
	}
	return p.Err()
}

// loadUnicodeData records the simple title case mappings from
// UnicodeData.txt: the last field of each record, which the UCD defines to
// default the title case to the upper case mapping. Empty fields and self
// mappings are skipped, which also skips the <..., First>/<..., Last>
// range markers since those carry no case mappings.
func (b *builder) loadUnicodeData(r io.Reader) error {
	p := ucd.New(r)
	for p.Next() {
		if p.Fields() < 2 {
			return fmt.Errorf("UnicodeData.txt:%d: record has %d fields", p.Line(), p.Fields())
		}
		if p.String(p.Fields()-1) == "" {
			continue
		}
		cp := p.Rune(0)
		tc := p.Rune(p.Fields() - 1)
		if tc == cp {
			continue
		}
		if err := b.add("UnicodeData.txt", cp, mapping{tc}); err != nil {
			return err
		}
	}
	return p.Err()
}

// entries returns the merged table sorted by code point.
func (b *builder) entries() []entry {
	points := maps.Keys(b.table)
	slices.Sort(points)
	es := make([]entry, len(points))
	for i, cp := range points {
		es[i] = entry{point: cp, title: b.table[cp]}
	}
	return es
}

// validate checks the invariants the runtime lookup depends on: strictly
// ascending keys, no self or empty mappings, and zero slots only after the
// last mapped rune. Run on every build; a wrong table corrupts all runtime
// behavior.
func validate(es []entry) error {
	for i, e := range es {
		if i > 0 && es[i-1].point >= e.point {
			return fmt.Errorf("table keys not strictly ascending at %U", e.point)
		}
		if e.title[0] == 0 {
			return fmt.Errorf("%U: empty mapping", e.point)
		}
		if e.title[0] == e.point {
			return fmt.Errorf("%U: self mapping", e.point)
		}
		if e.title[1] == 0 && e.title[2] != 0 {
			return fmt.Errorf("%U: zero slot before %U", e.point, e.title[2])
		}
	}
	return nil
}

const header = `// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Code generated by "gentables -unicode %[1]s"; DO NOT EDIT.

package titlecase

// UnicodeVersion is the Unicode edition from which the title case table
// below was generated.
const UnicodeVersion = "%[1]s"

// _TitleCase holds every code point whose title case differs from the code
// point itself, sorted ascending by code point for binary search. Unused
// trailing slots of a mapping are zero.
`

func hexRune(r rune) string {
	if r == 0 {
		return "0"
	}
	return fmt.Sprintf("0x%04X", r)
}

// writeTables emits the generated Go source for the table.
func writeTables(w io.Writer, version string, es []entry) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, header, version)
	fmt.Fprintf(&buf, "var _TitleCase = [%d]titleCaseEntry{\n", len(es))
	lines := make([]string, len(es))
	width := 0
	for i, e := range es {
		lines[i] = fmt.Sprintf("{0x%04X, [3]rune{%s, %s, %s}},",
			e.point, hexRune(e.title[0]), hexRune(e.title[1]), hexRune(e.title[2]))
		if len(lines[i]) > width {
			width = len(lines[i])
		}
	}
	for i, e := range es {
		fmt.Fprintf(&buf, "\t%-*s// %s => %s\n", width+1, lines[i], string(e.point), e.title)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated table: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func realMain() error {
	b := newBuilder()
	for _, src := range []struct {
		name string
		load func(io.Reader) error
	}{
		{"SpecialCasing.txt", b.loadSpecialCasing},
		{"UnicodeData.txt", b.loadUnicodeData},
	} {
		f, err := gen.OpenUCDFile(src.name)
		if err != nil {
			return err
		}
		err = src.load(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	es := b.entries()
	if err := validate(es); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := writeTables(&buf, gen.UnicodeVersion(), es); err != nil {
		return err
	}
	if *dryRun {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	root, err := util.ProjectRoot()
	if err != nil {
		return err
	}
	name := filepath.Join(root, "tables.go")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return err
	}
	log.Printf("wrote %d entries to %s", len(es), name)
	return nil
}

func main() {
	flag.Parse()
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}
