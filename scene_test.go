// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"strings"
	"testing"

	"github.com/maruel/ut"
)

// testTable mirrors the "default" table of the tables package.
func testTable() *Table {
	return NewTable("test", []Entry{
		{Char: '-', Class: Horizontal},
		{Char: '=', Class: Horizontal, Dashed: true},
		{Char: '|', Class: Vertical},
		{Char: ':', Class: Vertical, Dashed: true},
		{Char: '+', Class: Corner},
		{Char: '.', Class: RoundedCorner},
		{Char: '\'', Class: RoundedCorner},
		{Char: '/', Class: DiagonalNE},
		{Char: '\\', Class: DiagonalSE},
		{Char: '<', Class: ArrowLeft},
		{Char: '>', Class: ArrowRight},
		{Char: '^', Class: ArrowUp},
		{Char: 'v', Class: ArrowDown},
		{Char: 'x', Class: Tick},
		{Char: 'o', Class: Dot},
	})
}

func newScene(t *testing.T, lines []string) *Scene {
	g, err := Parse(strings.Join(lines, "\n")+"\n", 8)
	if err != nil {
		t.Fatal(err)
	}
	return g.Scene(testTable())
}

func TestSceneObjects(t *testing.T) {
	t.Parallel()
	data := []struct {
		input   []string
		strings []string
		texts   []string
		corners [][]Point
		closed  []bool
	}{
		// 0 Small box
		{
			[]string{
				"+-+",
				"| |",
				"+-+",
			},
			[]string{"Path{(0,0)}"},
			[]string{"+-+|+-+|"},
			[][]Point{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}},
			[]bool{true},
		},

		// 1 Tight box
		{
			[]string{
				"++",
				"++",
			},
			[]string{"Path{(0,0)}"},
			[]string{"++++"},
			[][]Point{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
			[]bool{true},
		},

		// 2 Indented box
		{
			[]string{
				"",
				" +-+",
				" | |",
				" +-+",
			},
			[]string{"Path{(1,1)}"},
			[]string{"+-+|+-+|"},
			[][]Point{{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}},
			[]bool{true},
		},

		// 3 Free flow text
		{
			[]string{
				"",
				" foo bar ",
				"b  baz   bee",
			},
			[]string{`Text{(1,1) "foo bar"}`, `Text{(0,2) "b  baz"}`, `Text{(9,2) "bee"}`},
			[]string{"foo bar", "b  baz", "bee"},
			[][]Point{
				{{X: 1, Y: 1}, {X: 7, Y: 1}},
				{{X: 0, Y: 2}, {X: 5, Y: 2}},
				{{X: 9, Y: 2}, {X: 11, Y: 2}},
			},
			[]bool{false, false, false},
		},

		// 4 Text in a box
		{
			[]string{
				"+--+",
				"|Hi|",
				"+--+",
			},
			[]string{"Path{(0,0)}", `Text{(1,1) "Hi"}`},
			[]string{"+--+|+--+|", "Hi"},
			[][]Point{
				{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 0, Y: 2}},
				{{X: 1, Y: 1}, {X: 2, Y: 1}},
			},
			[]bool{true, false},
		},

		// 5 Concave shape
		{
			[]string{
				"    +----+",
				"    |    |",
				"+---+    +----+",
				"|             |",
				"+-------------+",
			},
			[]string{"Path{(4,0)}"},
			[]string{"+----+|+----+|+-------------+|+---+|"},
			[][]Point{{
				{X: 4, Y: 0}, {X: 9, Y: 0}, {X: 9, Y: 2}, {X: 14, Y: 2},
				{X: 14, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 2}, {X: 4, Y: 2},
			}},
			[]bool{true},
		},

		// 6 Inner boxes
		{
			[]string{
				"+-----+",
				"|     |",
				"| +-+ |",
				"| | | |",
				"| +-+ |",
				"|     |",
				"+-----+",
			},
			[]string{"Path{(0,0)}", "Path{(2,2)}"},
			[]string{"+-----+|||||+-----+|||||", "+-+|+-+|"},
			[][]Point{
				{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6}},
				{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}},
			},
			[]bool{true, true},
		},

		// 7 Horizontal arrow
		{
			[]string{"<--->"},
			[]string{"Path{(0,0)}"},
			[]string{"<--->"},
			[][]Point{{{X: 0, Y: 0}, {X: 4, Y: 0}}},
			[]bool{false},
		},

		// 8 Vertical arrow
		{
			[]string{
				"|",
				"v",
			},
			[]string{"Path{(0,0)}"},
			[]string{"|v"},
			[][]Point{{{X: 0, Y: 0}, {X: 0, Y: 1}}},
			[]bool{false},
		},

		// 9 Diagonal between two corners
		{
			[]string{
				"+",
				" \\",
				"  +",
			},
			[]string{"Path{(0,0)}"},
			[]string{"+\\+"},
			[][]Point{{{X: 0, Y: 0}, {X: 2, Y: 2}}},
			[]bool{false},
		},

		// 10 Lone corner is text
		{
			[]string{" + "},
			[]string{`Text{(1,0) "+"}`},
			[]string{"+"},
			[][]Point{{{X: 1, Y: 0}, {X: 1, Y: 0}}},
			[]bool{false},
		},

		// 11 Box with a tail: the tail starts where it leaves the box
		{
			[]string{
				"+--+",
				"|  |",
				"+--+--",
			},
			[]string{"Path{(0,0)}", "Path{(3,2)}"},
			[]string{"+--+|+--+|", "+--"},
			[][]Point{
				{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}, {X: 0, Y: 2}},
				{{X: 3, Y: 2}, {X: 5, Y: 2}},
			},
			[]bool{true, false},
		},

		// 12 Diamond
		{
			[]string{
				" /\\ ",
				"/  \\",
				"\\  /",
				" \\/ ",
			},
			[]string{"Path{(1,0)}"},
			[]string{`/\\//\\/`},
			[][]Point{{
				{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 1}, {X: 3, Y: 2},
				{X: 2, Y: 3}, {X: 1, Y: 3}, {X: 0, Y: 2}, {X: 0, Y: 1},
			}},
			[]bool{true},
		},
	}

	for i, line := range data {
		s := newScene(t, line.input)
		objs := s.Objects()
		var strs, texts []string
		var corners [][]Point
		var closed []bool
		for _, o := range objs {
			strs = append(strs, o.String())
			texts = append(texts, string(o.Text()))
			corners = append(corners, stripHints(o.Corners()))
			closed = append(closed, o.IsClosed())
		}
		ut.AssertEqualIndex(t, i, line.strings, strs)
		ut.AssertEqualIndex(t, i, line.texts, texts)
		ut.AssertEqualIndex(t, i, line.corners, corners)
		ut.AssertEqualIndex(t, i, line.closed, closed)
	}
}

func TestSceneHints(t *testing.T) {
	t.Parallel()
	s := newScene(t, []string{"<-x-o->"})
	objs := s.Objects()
	ut.AssertEqual(t, 1, len(objs))
	var hints []RenderHint
	for _, p := range objs[0].Points() {
		hints = append(hints, p.Hint)
	}
	ut.AssertEqual(t, []RenderHint{StartMarker, None, HintTick, None, HintDot, None, EndMarker}, hints)
	ut.AssertEqual(t, false, objs[0].IsDashed())

	s = newScene(t, []string{
		".==.",
		"|  |",
		"'--'",
	})
	objs = s.Objects()
	ut.AssertEqual(t, 1, len(objs))
	ut.AssertEqual(t, true, objs[0].IsDashed())
	for i, c := range objs[0].Corners() {
		ut.AssertEqualIndex(t, i, HintRoundedCorner, c.Hint)
	}
}

func TestSceneTags(t *testing.T) {
	t.Parallel()
	s := newScene(t, []string{
		".-----.",
		"|[a]  |",
		"'-----'",
		"",
		`[a]: {"fill":"#000000","a2s:label":"abcdefg"}`,
	})
	objs := s.Objects()
	ut.AssertEqual(t, 2, len(objs))
	ut.AssertEqual(t, "a", objs[0].Tag())
	ut.AssertEqual(t, "a", objs[1].Tag())
	ut.AssertEqual(t, "[a]", string(objs[1].Text()))
	ut.AssertEqual(t, "#000000", s.Options("a")["fill"])
	ut.AssertEqual(t, map[string]interface{}(nil), s.Options("b"))
	ut.AssertEqual(t, Point{X: 7, Y: 5}, s.Size())
}

func TestSceneTableChoice(t *testing.T) {
	t.Parallel()
	g, err := Parse("+-+\n| |\n+-+", 8)
	ut.AssertEqual(t, nil, err)

	// Without any entry the same grid is only text.
	s := g.Scene(NewTable("empty", nil))
	var strs []string
	for _, o := range s.Objects() {
		strs = append(strs, o.String())
	}
	ut.AssertEqual(t, []string{`Text{(0,0) "+-+"}`, `Text{(0,1) "| |"}`, `Text{(0,2) "+-+"}`}, strs)
	ut.AssertEqual(t, "empty", s.Table().Name())

	s = g.Scene(testTable())
	ut.AssertEqual(t, 1, len(s.Objects()))
	ut.AssertEqual(t, true, s.Objects()[0].IsClosed())
}

func TestHasPoint(t *testing.T) {
	t.Parallel()
	s := newScene(t, []string{
		"+---+",
		"|   |",
		"+---+",
	})
	box := s.Objects()[0]
	data := []struct {
		p  Point
		in bool
	}{
		{Point{X: 1, Y: 1}, true},
		{Point{X: 3, Y: 1}, true},
		{Point{X: 5, Y: 1}, false},
		{Point{X: 2, Y: 3}, false},
	}
	for i, v := range data {
		ut.AssertEqualIndex(t, i, v.in, box.HasPoint(v.p))
	}

	line := newScene(t, []string{"---"}).Objects()[0]
	ut.AssertEqual(t, false, line.HasPoint(Point{X: 1, Y: 0}))
}

func TestPointsToCorners(t *testing.T) {
	t.Parallel()
	data := []struct {
		in     []Point
		out    []Point
		closed bool
	}{
		{
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
			false,
		},
		{
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
			[]Point{{X: 0, Y: 0}, {X: 2, Y: 0}},
			false,
		},
		{
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			false,
		},
		{
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
			true,
		},
		{
			[]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}},
			[]Point{{X: 0, Y: 0}, {X: 2, Y: 2}},
			false,
		},
	}
	for i, v := range data {
		out, closed := pointsToCorners(v.in)
		ut.AssertEqualIndex(t, i, v.out, out)
		ut.AssertEqualIndex(t, i, v.closed, closed)
	}
}

func stripHints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: p.Y}
	}
	return out
}
