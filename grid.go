// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reasons a diagram fails to parse.
var (
	ErrInvalidUTF8     = errors.New("invalid UTF-8 encoding")
	ErrControlChar     = errors.New("unexpected control character")
	ErrInvalidTagValue = errors.New("tag definition is not a JSON object")
)

// ParseError locates why a diagram could not be parsed. Line and Column are
// 1-based; Column counts runes.
type ParseError struct {
	Line   int
	Column int
	Reason error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Reason
}

// Grid is a parsed diagram: a rectangle of characters plus the options
// attached to tags by definitions like `[name]: {"fill":"#f00"}`.
type Grid struct {
	// (0,0) is top left.
	cells   []rune
	size    Point
	options map[string]map[string]interface{}
}

// tagDefinition matches a whole line defining a tag.
var tagDefinition = regexp.MustCompile(`^\s*\[(\w+)\]:\s*(\{.*\})\s*$`)

// Parse reads a diagram. A single trailing line ending is ignored and tabs are
// expanded to the next multiple of tabWidth when tabWidth is positive.
func Parse(content string, tabWidth int) (*Grid, error) {
	g := &Grid{options: map[string]map[string]interface{}{}}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	rows := make([][]rune, len(lines))

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if !utf8.ValidString(line) {
			return nil, &ParseError{Line: i + 1, Column: invalidColumn(line), Reason: ErrInvalidUTF8}
		}
		if m := tagDefinition.FindStringSubmatch(line); m != nil {
			var opts map[string]interface{}
			if err := json.Unmarshal([]byte(m[2]), &opts); err != nil {
				col := utf8.RuneCountInString(line[:strings.Index(line, "{")]) + 1
				return nil, &ParseError{Line: i + 1, Column: col, Reason: fmt.Errorf("%w: %v", ErrInvalidTagValue, err)}
			}
			g.options[m[1]] = opts
			// Definitions are not drawn but keep their row.
			line = ""
		}
		row, err := expandTabs(line, tabWidth)
		if err != nil {
			err.Line = i + 1
			return nil, err
		}
		rows[i] = row
		if len(row) > g.size.X {
			g.size.X = len(row)
		}
	}
	g.size.Y = len(rows)

	g.cells = make([]rune, g.size.X*g.size.Y)
	for y, row := range rows {
		x := copy(g.cells[y*g.size.X:], row)
		for ; x < g.size.X; x++ {
			g.cells[y*g.size.X+x] = ' '
		}
	}
	return g, nil
}

// Size returns the number of columns (X) and rows (Y).
func (g *Grid) Size() Point {
	return g.size
}

// At returns the character at column x, row y.
func (g *Grid) At(x, y int) rune {
	return g.cells[y*g.size.X+x]
}

// Options returns the options defined for tag, or nil.
func (g *Grid) Options(tag string) map[string]interface{} {
	return g.options[tag]
}

// String returns the grid as text, one row per line, padding included.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.size.Y; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(g.cells[y*g.size.X : (y+1)*g.size.X]))
	}
	return b.String()
}

// expandTabs converts one line to runes. The returned error only has Column
// set.
func expandTabs(line string, tabWidth int) ([]rune, *ParseError) {
	out := make([]rune, 0, len(line))
	col := 0
	for _, r := range line {
		col++
		switch {
		case r == '\t':
			if tabWidth <= 0 {
				out = append(out, ' ')
				continue
			}
			for n := tabWidth - len(out)%tabWidth; n > 0; n-- {
				out = append(out, ' ')
			}
		case unicode.IsControl(r):
			return nil, &ParseError{Column: col, Reason: fmt.Errorf("%w %U", ErrControlChar, r)}
		default:
			out = append(out, r)
		}
	}
	return out, nil
}

// invalidColumn returns the 1-based rune column of the first invalid byte.
func invalidColumn(line string) int {
	col := 1
	for i := 0; i < len(line); {
		r, l := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError && l <= 1 {
			return col
		}
		i += l
		col++
	}
	return col
}
