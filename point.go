// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import "fmt"

// A RenderHint suggests how the SVG renderer should draw a point.
type RenderHint int

const (
	// None means the point is drawn as part of a plain line.
	None RenderHint = iota
	// HintRoundedCorner is a corner drawn with a curve.
	HintRoundedCorner
	// StartMarker puts a marker-start arrow on the path.
	StartMarker
	// EndMarker puts a marker-end arrow on the path.
	EndMarker
	// HintTick strikes through the path at this point.
	HintTick
	// HintDot draws a dot on the path at this point.
	HintDot
)

// A Point is a cell of the diagram's grid; (0, 0) is the top-left cell.
type Point struct {
	X    int
	Y    int
	Hint RenderHint
}

// String implements fmt.Stringer on Point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// same ignores hints.
func (p Point) same(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

const (
	dirNone = iota
	dirH
	dirV
	dirSE
	dirSW
	dirNW
	dirNE
)

// direction returns the direction of the single step from p1 to p2, or
// dirNone if the points are not adjacent.
func direction(p1, p2 Point) int {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	switch {
	case dy == 0 && (dx == 1 || dx == -1):
		return dirH
	case dx == 0 && (dy == 1 || dy == -1):
		return dirV
	case dx == 1 && dy == 1:
		return dirSE
	case dx == -1 && dy == 1:
		return dirSW
	case dx == -1 && dy == -1:
		return dirNW
	case dx == 1 && dy == -1:
		return dirNE
	}
	return dirNone
}
