// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"
	"regexp"
)

// Object is an open path (line), a closed path (polygon) or text.
type Object interface {
	fmt.Stringer
	// Points returns all the points occupied by this Object. Every object has
	// at least one point and its points are in order and contiguous.
	Points() []Point
	// HasPoint returns true if p lies strictly inside the closed path.
	HasPoint(p Point) bool
	// Corners returns all the corners (change of direction) along the path.
	Corners() []Point
	// IsClosed is true if the object is a closed path.
	IsClosed() bool
	// IsDashed is true if at least one character of the path is dashed.
	IsDashed() bool
	// IsText returns true if the object is text.
	IsText() bool
	// Text returns the characters under Points.
	Text() []rune
	// SetTag associates the object with options defined in the diagram.
	SetTag(string)
	// Tag returns the tag of this object, if any.
	Tag() string
}

type object struct {
	// points are in tracing order.
	points   []Point
	isText   bool
	text     []rune
	corners  []Point
	isClosed bool
	isDashed bool
	tag      string
}

func (o *object) Points() []Point {
	return o.points
}

func (o *object) Corners() []Point {
	return o.corners
}

func (o *object) IsClosed() bool {
	return o.isClosed
}

func (o *object) IsText() bool {
	return o.isText
}

func (o *object) IsDashed() bool {
	return o.isDashed
}

func (o *object) Text() []rune {
	return o.text
}

func (o *object) SetTag(s string) {
	o.tag = s
}

func (o *object) Tag() string {
	return o.tag
}

func (o *object) String() string {
	if o.IsText() {
		return fmt.Sprintf("Text{%s %q}", o.points[0], string(o.text))
	}
	return fmt.Sprintf("Path{%s}", o.points[0])
}

// HasPoint is an even-odd ray casting test against the corners of the
// polygon; see http://alienryderflex.com/polygon/.
func (o *object) HasPoint(p Point) bool {
	if !o.isClosed {
		return false
	}
	in := false
	px, py := float64(p.X), float64(p.Y)
	j := len(o.corners) - 1
	for i := range o.corners {
		ci, cj := o.corners[i], o.corners[j]
		xi, yi := float64(ci.X), float64(ci.Y)
		xj, yj := float64(cj.X), float64(cj.Y)
		if (yi < py && yj >= py || yj < py && yi >= py) && (xi <= px || xj <= px) {
			if xi+(py-yi)/(yj-yi)*(xj-xi) < px {
				in = !in
			}
		}
		j = i
	}
	return in
}

var reference = regexp.MustCompile(`^\[(\w+)\]$`)

// reference returns the tag named by a text object of the form "[name]".
func (o *object) reference() (string, bool) {
	if !o.isText {
		return "", false
	}
	m := reference.FindStringSubmatch(string(o.text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// seal finalizes the object: its text, corners and rendering hints.
func (o *object) seal(s *Scene) {
	t := s.table
	o.text = make([]rune, len(o.points))
	for i, p := range o.points {
		o.text[i] = s.at(p)
	}
	if o.isText {
		o.corners = []Point{o.points[0], o.points[len(o.points)-1]}
		return
	}

	o.corners, o.isClosed = pointsToCorners(o.points)

	last := len(o.points) - 1
	if t.isArrow(o.text[0]) {
		o.points[0].Hint = StartMarker
	}
	if t.isArrow(o.text[last]) {
		o.points[last].Hint = EndMarker
	}
	for i, r := range o.text {
		switch {
		case t.isTick(r):
			o.points[i].Hint = HintTick
		case t.isDot(r):
			o.points[i].Hint = HintDot
		}
		if t.isDashed(r) {
			o.isDashed = true
		}
	}
	for i, c := range o.corners {
		if t.isRoundedCorner(s.at(c)) {
			o.corners[i].Hint = HintRoundedCorner
		}
	}
}

// objects implements a sortable collection of Object interfaces.
type objects []Object

func (o objects) Len() int      { return len(o) }
func (o objects) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

// Less orders paths before text, then top most, then left most.
func (o objects) Less(i, j int) bool {
	l := o[i]
	r := o[j]
	lt := l.IsText()
	rt := r.IsText()
	if lt != rt {
		return rt
	}
	lp := l.Points()[0]
	rp := r.Points()[0]
	if lp.Y != rp.Y {
		return lp.Y < rp.Y
	}
	return lp.X < rp.X
}

// pointsToCorners returns the points at which a path changes direction, and
// whether the path closes back onto its first point.
func pointsToCorners(points []Point) ([]Point, bool) {
	l := len(points)
	// Fewer than 3 points can neither close nor turn.
	if l < 3 {
		return append([]Point(nil), points...), false
	}
	out := []Point{points[0]}

	dir := direction(points[0], points[1])
	if dir == dirNone {
		panic(fmt.Errorf("discontiguous points: %+v", points))
	}
	for i := 2; i < l; i++ {
		d := direction(points[i-1], points[i])
		if d == dirNone {
			panic(fmt.Errorf("discontiguous points: %+v", points))
		}
		if d != dir {
			out = append(out, points[i-1])
			dir = d
		}
	}

	last := points[l-1]
	closing := direction(last, points[0])
	if l >= 4 && closing != dirNone {
		if closing != dir {
			out = append(out, last)
		}
		return out, true
	}
	return append(out, last), false
}
