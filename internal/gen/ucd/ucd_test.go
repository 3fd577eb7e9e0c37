package ucd

import (
	"strings"
	"testing"
)

const sample = `# comment only line

0041;LATIN CAPITAL LETTER A;Lu
00DF; 00DF; 0053 0073; 0053 0053; # trailing comment
`

func TestParser(t *testing.T) {
	p := New(strings.NewReader(sample))

	if !p.Next() {
		t.Fatalf("Next() = false; err: %v", p.Err())
	}
	if got := p.Line(); got != 3 {
		t.Errorf("Line() = %d; want: 3", got)
	}
	if got := p.Fields(); got != 3 {
		t.Errorf("Fields() = %d; want: 3", got)
	}
	if got := p.Rune(0); got != 'A' {
		t.Errorf("Rune(0) = %q; want: 'A'", got)
	}
	if got := p.String(1); got != "LATIN CAPITAL LETTER A" {
		t.Errorf("String(1) = %q", got)
	}

	if !p.Next() {
		t.Fatalf("Next() = false; err: %v", p.Err())
	}
	if got := p.Fields(); got != 5 { // trailing ';' yields an empty field
		t.Errorf("Fields() = %d; want: 5", got)
	}
	rs := p.Runes(2)
	if len(rs) != 2 || rs[0] != 0x0053 || rs[1] != 0x0073 {
		t.Errorf("Runes(2) = %q; want: ['S' 's']", rs)
	}
	if got := p.Runes(4); got != nil {
		t.Errorf("Runes(4) = %q; want: nil", got)
	}
	if got := p.String(10); got != "" {
		t.Errorf("String(10) = %q; want: %q", got, "")
	}

	if p.Next() {
		t.Fatal("Next() = true after last row")
	}
	if err := p.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestParserBadRune(t *testing.T) {
	p := New(strings.NewReader("GGGG;BROKEN\n0041;OK\n"))
	if !p.Next() {
		t.Fatalf("Next() = false; err: %v", p.Err())
	}
	p.Rune(0)
	if err := p.Err(); err == nil || !strings.Contains(err.Error(), "bad code point") {
		t.Fatalf("Err() = %v; want bad code point error", err)
	}
	// The parser stays in its error state.
	if p.Next() {
		t.Fatal("Next() = true after parse error")
	}
}

func TestParserRuneTooLarge(t *testing.T) {
	p := New(strings.NewReader("110000;PAST MAX RUNE\n"))
	if !p.Next() {
		t.Fatalf("Next() = false; err: %v", p.Err())
	}
	p.Rune(0)
	if p.Err() == nil {
		t.Fatal("Err() = nil for code point past MaxRune")
	}
}
