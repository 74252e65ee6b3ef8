// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"
	"sort"
)

// Scene is the set of objects found in a Grid by following the connections
// allowed by a Table.
type Scene struct {
	grid    *Grid
	table   *Table
	visited []bool
	objects objects
}

// Scene traces all paths and text of the grid using the connectivity rules of
// t. The grid is not modified and may be traced again with another table.
func (g *Grid) Scene(t *Table) *Scene {
	s := &Scene{
		grid:    g,
		table:   t,
		visited: make([]bool, len(g.cells)),
	}
	s.findObjects()
	return s
}

// Objects returns all the objects found, paths first, each group ordered
// top-most then left-most.
func (s *Scene) Objects() []Object {
	return s.objects
}

// Size returns the size of the underlying grid.
func (s *Scene) Size() Point {
	return s.grid.size
}

// Options returns the options defined for tag in the diagram, or nil.
func (s *Scene) Options(tag string) map[string]interface{} {
	return s.grid.Options(tag)
}

// Table returns the table the scene was traced with.
func (s *Scene) Table() *Table {
	return s.table
}

func (s *Scene) findObjects() {
	p := Point{}

	// Paths are traced first from any point not yet visited.
	for y := 0; y < s.grid.size.Y; y++ {
		p.Y = y
		for x := 0; x < s.grid.size.X; x++ {
			p.X = x
			if s.isVisited(p) {
				continue
			}
			if s.table.isPathStart(s.at(p)) {
				// One starting point may yield several objects when lines fork.
				s.visit(p)
				objs := s.scanPath([]Point{p})
				for _, obj := range objs {
					for _, p := range obj.Points() {
						s.visit(p)
					}
				}
				s.objects = append(s.objects, objs...)
			}
		}
	}

	// Text is whatever remains.
	for y := 0; y < s.grid.size.Y; y++ {
		p.Y = y
		for x := 0; x < s.grid.size.X; x++ {
			p.X = x
			if s.isVisited(p) {
				continue
			}
			if s.table.isTextStart(s.at(p)) {
				obj := s.scanText(p)
				if obj == nil {
					continue
				}
				for _, p := range obj.Points() {
					s.visit(p)
				}
				s.objects = append(s.objects, obj)
			}
		}
	}

	sort.Stable(s.objects)
}

// scanPath extends the partial path depth first. It returns one object per
// branch, or nil when the path cannot leave its single starting point. The
// first branch keeps the partial path; later branches start at the fork.
func (s *Scene) scanPath(points []Point) objects {
	cur := points[len(points)-1]
	next := s.next(cur)

	if len(next) == 0 {
		if len(points) == 1 {
			s.unvisit(cur)
			return nil
		}
		o := &object{points: points}
		o.seal(s)
		return objects{o}
	}

	// Paths close vertically back into their starting point. Keep exploring
	// from here in case another line leaves the closing point.
	if len(points) > 3 && cur.X == points[0].X && cur.Y == points[0].Y+1 {
		o := &object{points: points}
		o.seal(s)
		return append(objects{o}, s.scanPath([]Point{cur})...)
	}

	var objs objects
	forked := false
	for _, n := range next {
		if s.isVisited(n) {
			continue
		}
		s.visit(n)
		var p2 []Point
		if forked {
			p2 = []Point{cur, n}
		} else {
			p2 = make([]Point, len(points)+1)
			copy(p2, points)
			p2[len(p2)-1] = n
		}
		forked = true
		objs = append(objs, s.scanPath(p2)...)
	}
	return objs
}

// next returns the unvisited neighbors a path may continue to, in the order
// left, right, up, down, then diagonals.
func (s *Scene) next(pos Point) []Point {
	if !s.isVisited(pos) {
		panic(fmt.Errorf("internal error; not visited %s", pos))
	}
	var out []Point
	t := s.table
	ch := s.at(pos)

	try := func(dx, dy int, ok func(to rune) bool) {
		n := Point{X: pos.X + dx, Y: pos.Y + dy}
		if !s.inside(n) || s.isVisited(n) {
			return
		}
		if ok(s.at(n)) {
			out = append(out, n)
		}
	}

	if t.canHorizontal(ch) {
		try(-1, 0, t.canHorizontal)
		try(1, 0, t.canHorizontal)
	}
	if t.canVertical(ch) {
		try(0, -1, t.canVertical)
		try(0, 1, t.canVertical)
	}
	if t.isDiagonal(ch) {
		turn := func(to rune) bool { return t.canTurn(ch, to) }
		try(-1, 0, turn)
		try(1, 0, turn)
		try(0, -1, turn)
		try(0, 1, turn)
	}
	diag := func(dx, dy, dir int) {
		try(dx, dy, func(to rune) bool { return t.canDiagonal(ch, to, dir) })
	}
	diag(1, -1, dirNE)
	diag(1, 1, dirSE)
	diag(-1, 1, dirSW)
	diag(-1, -1, dirNW)
	return out
}

// scanText extracts a run of text starting at start. Runs stop at a visited
// cell, a non-printable character or three consecutive spaces. A run shaped
// like "[name]" tags the closed path that encloses it.
func (s *Scene) scanText(start Point) Object {
	obj := &object{points: []Point{start}, isText: true}
	whiteSpaceStreak := 0
	cur := start

	for cur.X < s.grid.size.X-1 {
		cur.X++
		if s.isVisited(cur) {
			break
		}
		ch := s.at(cur)
		if !s.table.isTextCont(ch) {
			break
		}
		if ch == ' ' {
			whiteSpaceStreak++
			if whiteSpaceStreak > 2 {
				break
			}
		} else {
			whiteSpaceStreak = 0
		}
		obj.points = append(obj.points, cur)
	}

	for len(obj.points) != 0 && s.at(obj.points[len(obj.points)-1]) == ' ' {
		obj.points = obj.points[:len(obj.points)-1]
	}
	if len(obj.points) == 0 {
		return nil
	}
	obj.seal(s)

	if tag, ok := obj.reference(); ok {
		obj.SetTag(tag)
		if container := s.enclosing(obj.points[0]); container != nil {
			container.SetTag(tag)
		}
	}
	return obj
}

// enclosing returns the smallest closed path containing p, or nil.
func (s *Scene) enclosing(p Point) Object {
	var best Object
	bestArea := 0
	for _, o := range s.objects {
		if !o.IsClosed() || !o.HasPoint(p) {
			continue
		}
		if a := area(o.Corners()); best == nil || a < bestArea {
			best, bestArea = o, a
		}
	}
	return best
}

func (s *Scene) at(p Point) rune {
	return s.grid.cells[p.Y*s.grid.size.X+p.X]
}

func (s *Scene) inside(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.grid.size.X && p.Y < s.grid.size.Y
}

func (s *Scene) isVisited(p Point) bool {
	return s.visited[p.Y*s.grid.size.X+p.X]
}

func (s *Scene) visit(p Point) {
	s.visited[p.Y*s.grid.size.X+p.X] = true
}

func (s *Scene) unvisit(p Point) {
	o := p.Y*s.grid.size.X + p.X
	if !s.visited[o] {
		panic("internal error; unvisiting a free point")
	}
	s.visited[o] = false
}

// area returns twice the absolute area of the polygon.
func area(corners []Point) int {
	a := 0
	j := len(corners) - 1
	for i := range corners {
		a += (corners[j].X + corners[i].X) * (corners[j].Y - corners[i].Y)
		j = i
	}
	if a < 0 {
		return -a
	}
	return a
}
