// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"
	"sort"
	"unicode"
)

// A Class describes how a character connects to its neighbors in the grid.
type Class int

const (
	// Text characters never take part in a path.
	Text Class = iota
	// Horizontal connects to the left and to the right.
	Horizontal
	// Vertical connects up and down.
	Vertical
	// Corner connects in any of the four orthogonal directions.
	Corner
	// RoundedCorner is a Corner that the renderer draws with a curve.
	RoundedCorner
	// DiagonalNE connects north-east and south-west, like '/'.
	DiagonalNE
	// DiagonalSE connects south-east and north-west, like '\'.
	DiagonalSE
	// ArrowLeft terminates a horizontal line with a left pointing marker.
	ArrowLeft
	// ArrowRight terminates a horizontal line with a right pointing marker.
	ArrowRight
	// ArrowUp terminates a vertical line with an upward marker.
	ArrowUp
	// ArrowDown terminates a vertical line with a downward marker.
	ArrowDown
	// Tick is a line segment drawn with a strike-through.
	Tick
	// Dot is a line segment drawn with a dot.
	Dot
)

var classNames = map[Class]string{
	Text:          "text",
	Horizontal:    "horizontal",
	Vertical:      "vertical",
	Corner:        "corner",
	RoundedCorner: "rounded-corner",
	DiagonalNE:    "diagonal-ne",
	DiagonalSE:    "diagonal-se",
	ArrowLeft:     "arrow-left",
	ArrowRight:    "arrow-right",
	ArrowUp:       "arrow-up",
	ArrowDown:     "arrow-down",
	Tick:          "tick",
	Dot:           "dot",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ParseClass returns the Class named s, as printed by Class.String.
func ParseClass(s string) (Class, error) {
	for c, name := range classNames {
		if name == s {
			return c, nil
		}
	}
	return Text, fmt.Errorf("unknown character class %q", s)
}

// An Entry binds one character to its connectivity class.
type Entry struct {
	Char  rune
	Class Class
	// Dashed lines are drawn with a dash pattern.
	Dashed bool
}

// Table is a connectivity table: it decides, for every character of a diagram,
// which neighboring cells it may connect to. Characters absent from the table
// are text. A Table is immutable once built.
type Table struct {
	name    string
	entries map[rune]Entry
}

// NewTable builds a Table. Later entries for the same character replace
// earlier ones.
func NewTable(name string, entries []Entry) *Table {
	t := &Table{name: name, entries: make(map[rune]Entry, len(entries))}
	for _, e := range entries {
		if e.Class == Text {
			delete(t.entries, e.Char)
			continue
		}
		t.entries[e.Char] = e
	}
	return t
}

// Name returns the name the table was built with.
func (t *Table) Name() string {
	return t.name
}

// Entries returns all entries, ordered by character.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Char < out[j].Char })
	return out
}

// Class returns the class of r; Text if r has no entry.
func (t *Table) Class(r rune) Class {
	return t.entries[r].Class
}

func (t *Table) isDashed(r rune) bool {
	return t.entries[r].Dashed
}

// The predicates below are the table-driven counterparts of the character
// rules of the ASCIIToSVG grammar.

func (t *Table) isTextStart(r rune) bool {
	return r == '[' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSymbol(r)
}

func (t *Table) isTextCont(r rune) bool {
	return unicode.IsPrint(r)
}

// isPathStart returns true for characters a path may be traced from. Ticks and
// dots only ever sit in the middle of a line.
func (t *Table) isPathStart(r rune) bool {
	switch t.Class(r) {
	case Text, Tick, Dot, ArrowRight, ArrowDown:
		return false
	}
	return true
}

func (t *Table) isCorner(r rune) bool {
	c := t.Class(r)
	return c == Corner || c == RoundedCorner
}

func (t *Table) isRoundedCorner(r rune) bool {
	return t.Class(r) == RoundedCorner
}

func (t *Table) isArrow(r rune) bool {
	switch t.Class(r) {
	case ArrowLeft, ArrowRight, ArrowUp, ArrowDown:
		return true
	}
	return false
}

func (t *Table) isArrowVertical(r rune) bool {
	c := t.Class(r)
	return c == ArrowUp || c == ArrowDown
}

func (t *Table) isDiagonal(r rune) bool {
	c := t.Class(r)
	return c == DiagonalNE || c == DiagonalSE
}

func (t *Table) isTick(r rune) bool {
	return t.Class(r) == Tick
}

func (t *Table) isDot(r rune) bool {
	return t.Class(r) == Dot
}

func (t *Table) canHorizontal(r rune) bool {
	switch t.Class(r) {
	case Horizontal, Corner, RoundedCorner, ArrowLeft, ArrowRight, Tick, Dot:
		return true
	}
	return false
}

func (t *Table) canVertical(r rune) bool {
	switch t.Class(r) {
	case Vertical, Corner, RoundedCorner, ArrowUp, ArrowDown, Tick, Dot:
		return true
	}
	return false
}

// canTurn reports whether two orthogonally adjacent diagonals meet at a
// vertex, as in "/\" or "\/" and their vertical counterparts.
func (t *Table) canTurn(from, to rune) bool {
	return t.isDiagonal(from) && t.isDiagonal(to) && t.Class(from) != t.Class(to)
}

// canDiagonal reports whether a path may step from 'from' to 'to' along
// direction dir, which is one of dirNE, dirSE, dirSW or dirNW. Lines move
// diagonally, corners and straight lines may turn into a diagonal, but two
// corners never connect diagonally.
func (t *Table) canDiagonal(from, to rune, dir int) bool {
	want := DiagonalSE
	if dir == dirNE || dir == dirSW {
		want = DiagonalNE
	}
	fc, tc := t.Class(from), t.Class(to)
	switch {
	case t.isDiagonal(from):
		if fc != want {
			return false
		}
		if t.isDiagonal(to) {
			return tc == want
		}
		return t.isCorner(to) || t.isArrowVertical(to) || t.canHorizontal(to) || t.canVertical(to)
	case fc != Text:
		return tc == want
	}
	return false
}
