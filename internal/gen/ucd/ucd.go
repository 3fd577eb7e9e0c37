// Package ucd parses the semicolon separated row format shared by the
// Unicode Character Database text files. It is a trimmed stand-in for
// golang.org/x/text/internal/ucd, which cannot be imported from outside
// the x/text module.
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// A Parser reads UCD rows from an input stream. Comment text (from '#' to
// end of line) and blank lines are skipped. Fields are trimmed of
// surrounding space.
//
// The first malformed field puts the parser in a permanent error state:
// Next returns false and Err reports the failure.
type Parser struct {
	scanner *bufio.Scanner
	line    int
	fields  []string
	err     error
}

func New(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Next advances to the next row. It returns false at end of input or on
// error; check Err.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	for p.scanner.Scan() {
		p.line++
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.fields = strings.Split(line, ";")
		for i, f := range p.fields {
			p.fields[i] = strings.TrimSpace(f)
		}
		return true
	}
	p.fields = nil
	p.err = p.scanner.Err()
	return false
}

// Err returns the first error encountered while scanning or parsing.
func (p *Parser) Err() error {
	return p.err
}

func (p *Parser) setError(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Line returns the 1-based input line number of the current row.
func (p *Parser) Line() int {
	return p.line
}

// Fields returns the number of fields in the current row.
func (p *Parser) Fields() int {
	return len(p.fields)
}

// String returns field i of the current row, or "" if the row has fewer
// fields.
func (p *Parser) String(i int) string {
	if i < 0 || i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Rune returns field i parsed as a hexadecimal code point.
func (p *Parser) Rune(i int) rune {
	return p.parseRune(p.String(i))
}

// Runes returns field i parsed as a space separated list of hexadecimal
// code points. An empty field yields nil.
func (p *Parser) Runes(i int) []rune {
	s := p.String(i)
	if s == "" {
		return nil
	}
	fields := strings.Fields(s)
	rs := make([]rune, len(fields))
	for i, f := range fields {
		rs[i] = p.parseRune(f)
	}
	return rs
}

func (p *Parser) parseRune(s string) rune {
	u, err := strconv.ParseUint(s, 16, 32)
	if err != nil || u > unicode.MaxRune {
		p.setError(fmt.Errorf("ucd: line %d: bad code point %q", p.line, s))
		return unicode.ReplacementChar
	}
	return rune(u)
}
