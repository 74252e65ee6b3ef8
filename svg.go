// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Config holds the rendering parameters of an SVG document.
type Config struct {
	// XScale and YScale are the size in pixels of one grid cell.
	XScale int
	YScale int
	// FontFamily and FontSize style all text.
	FontFamily string
	FontSize   int
	// ShowGridlines draws the cell grid underneath the diagram.
	ShowGridlines bool
	// InferRectElements emits plain rectangles as <rect> instead of <path>.
	InferRectElements bool
	// Name is the title of the document.
	Name string
}

const (
	defaultFill  = "#fff"
	strokeColor  = "#000"
	dashPattern  = "5 5"
	optionPrefix = "a2s:"
)

// Render writes the scene as a complete SVG document. The output only depends
// on the scene and the configuration.
func (c *Config) Render(s *Scene) string {
	b := &bytes.Buffer{}
	canvas := svg.New(b)
	size := s.Size()
	canvas.Start(size.X*c.XScale, size.Y*c.YScale)
	canvas.Title(c.Name)
	c.defs(canvas)
	if c.ShowGridlines {
		c.gridlines(canvas, size)
	}

	// Closed paths, then open paths, then text so that text stays on top.
	canvas.Group(`id="closed"`, `stroke="`+strokeColor+`"`, `stroke-width="2"`)
	for i, obj := range s.Objects() {
		if obj.IsClosed() && !obj.IsText() {
			c.closedPath(canvas, s, i, obj)
		}
	}
	canvas.Gend()

	canvas.Group(`id="lines"`, `stroke="`+strokeColor+`"`, `stroke-width="2"`, `fill="none"`)
	for i, obj := range s.Objects() {
		if !obj.IsClosed() && !obj.IsText() {
			c.openPath(canvas, i, obj)
		}
	}
	canvas.Gend()

	canvas.Group(`id="text"`, `stroke="none"`, `xml:space="preserve"`,
		`font-family="`+escape(c.FontFamily)+`"`, fmt.Sprintf(`font-size="%d"`, c.FontSize))
	for i, obj := range s.Objects() {
		if obj.IsText() {
			c.text(canvas, s, i, obj)
		}
	}
	canvas.Gend()

	canvas.End()
	return b.String()
}

func (c *Config) defs(canvas *svg.SVG) {
	w, h := c.XScale-1, c.YScale-1
	canvas.Def()
	canvas.Marker("iPointer", 5, 5, w, h, `viewBox="0 0 10 10"`, `markerUnits="strokeWidth"`, `orient="auto"`)
	canvas.Path("M 10 0 L 10 10 L 0 5 z")
	canvas.MarkerEnd()
	canvas.Marker("Pointer", 5, 5, w, h, `viewBox="0 0 10 10"`, `markerUnits="strokeWidth"`, `orient="auto"`)
	canvas.Path("M 0 0 L 10 5 L 0 10 z")
	canvas.MarkerEnd()
	canvas.DefEnd()
}

func (c *Config) gridlines(canvas *svg.SVG, size Point) {
	w, h := size.X*c.XScale, size.Y*c.YScale
	canvas.Group(`id="grid"`, `stroke="#ddd"`, `stroke-width="1"`)
	for x := 0; x <= size.X; x++ {
		canvas.Line(x*c.XScale, 0, x*c.XScale, h)
	}
	for y := 0; y <= size.Y; y++ {
		canvas.Line(0, y*c.YScale, w, y*c.YScale)
	}
	canvas.Gend()
}

func (c *Config) closedPath(canvas *svg.SVG, s *Scene, i int, obj Object) {
	attrs := []string{fmt.Sprintf(`id="closed%d"`, i)}
	attrs = append(attrs, styleAttrs(s.Options(obj.Tag()))...)
	if obj.IsDashed() {
		attrs = append(attrs, `stroke-dasharray="`+dashPattern+`"`)
	}
	if c.InferRectElements && isRect(obj.Corners()) {
		x0, y0 := c.center(obj.Corners()[0])
		x1, y1 := c.center(obj.Corners()[2])
		canvas.Rect(min(x0, x1), min(y0, y1), abs(x1-x0), abs(y1-y0), attrs...)
		return
	}
	canvas.Path(c.pathData(obj), attrs...)
	c.marks(canvas, obj)
}

func (c *Config) openPath(canvas *svg.SVG, i int, obj Object) {
	attrs := []string{fmt.Sprintf(`id="open%d"`, i)}
	points := obj.Points()
	if points[0].Hint == StartMarker {
		attrs = append(attrs, `marker-start="url(#iPointer)"`)
	}
	if points[len(points)-1].Hint == EndMarker {
		attrs = append(attrs, `marker-end="url(#Pointer)"`)
	}
	if obj.IsDashed() {
		attrs = append(attrs, `stroke-dasharray="`+dashPattern+`"`)
	}
	canvas.Path(c.pathData(obj), attrs...)
	c.marks(canvas, obj)
}

// marks draws ticks and dots along a path.
func (c *Config) marks(canvas *svg.SVG, obj Object) {
	r := min(c.XScale, c.YScale) / 3
	for _, p := range obj.Points() {
		x, y := c.center(p)
		switch p.Hint {
		case HintTick:
			canvas.Line(x-r, y-r, x+r, y+r)
			canvas.Line(x-r, y+r, x+r, y-r)
		case HintDot:
			canvas.Circle(x, y, r, `stroke="none"`, `fill="`+strokeColor+`"`)
		}
	}
}

func (c *Config) text(canvas *svg.SVG, s *Scene, i int, obj Object) {
	start := obj.Points()[0]
	content := string(obj.Text())
	color := "#000"

	if container := s.enclosing(start); container != nil {
		opts := s.Options(container.Tag())
		if fill, ok := opts["fill"].(string); ok {
			if tc, err := textColor(fill); err == nil {
				color = tc
			}
		}
		if obj.Tag() != "" && obj.Tag() == container.Tag() {
			if _, ok := opts[optionPrefix+"delref"]; ok {
				return
			}
			if label, ok := opts[optionPrefix+"label"].(string); ok {
				content = label
			}
		}
	}

	x := start.X * c.XScale
	y := start.Y*c.YScale + c.YScale*3/4
	canvas.Text(x, y, content, fmt.Sprintf(`id="obj%d"`, i), `fill="`+color+`"`)
}

// pathData returns the "d" attribute of a path through the object's corners.
func (c *Config) pathData(obj Object) string {
	corners := obj.Corners()
	closed := obj.IsClosed()
	n := len(corners)
	rounded := func(i int) bool {
		return corners[i].Hint == HintRoundedCorner && (closed || (i > 0 && i < n-1))
	}

	var parts []string
	for i, p := range corners {
		x, y := c.center(p)
		if !rounded(i) {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			parts = append(parts, fmt.Sprintf("%s %d %d", cmd, x, y))
			continue
		}
		inX, inY := c.toward(p, corners[(i+n-1)%n])
		outX, outY := c.toward(p, corners[(i+1)%n])
		if i == 0 {
			// The curve around the first corner closes the path.
			parts = append(parts, fmt.Sprintf("M %d %d", outX, outY))
			continue
		}
		parts = append(parts, fmt.Sprintf("L %d %d Q %d %d %d %d", inX, inY, x, y, outX, outY))
	}
	if closed {
		if rounded(0) {
			p := corners[0]
			x, y := c.center(p)
			inX, inY := c.toward(p, corners[n-1])
			outX, outY := c.toward(p, corners[1])
			parts = append(parts, fmt.Sprintf("L %d %d Q %d %d %d %d", inX, inY, x, y, outX, outY))
		}
		parts = append(parts, "Z")
	}
	return strings.Join(parts, " ")
}

// center returns the pixel coordinates of the middle of the cell.
func (c *Config) center(p Point) (int, int) {
	return p.X*c.XScale + c.XScale/2, p.Y*c.YScale + c.YScale/2
}

// toward moves from the center of p half a cell in the direction of q.
func (c *Config) toward(p, q Point) (int, int) {
	x, y := c.center(p)
	r := min(c.XScale, c.YScale) / 2
	return x + sign(q.X-p.X)*r, y + sign(q.Y-p.Y)*r
}

// isRect returns true for four axis aligned corners without rounding.
func isRect(corners []Point) bool {
	if len(corners) != 4 {
		return false
	}
	for i, p := range corners {
		q := corners[(i+1)%4]
		if p.Hint == HintRoundedCorner || (p.X != q.X && p.Y != q.Y) {
			return false
		}
	}
	return true
}

var attrName = regexp.MustCompile(`^[A-Za-z_][-A-Za-z0-9_.]*$`)

// styleAttrs converts tag options to SVG attributes, ignoring the a2s:
// directives. Keys are sorted so output is stable.
func styleAttrs(opts map[string]interface{}) []string {
	fill := defaultFill
	var keys []string
	for k, v := range opts {
		if strings.HasPrefix(k, optionPrefix) || !attrName.MatchString(k) {
			continue
		}
		if k == "fill" {
			if s, ok := v.(string); ok {
				fill = s
			}
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := []string{`fill="` + escape(fill) + `"`}
	for _, k := range keys {
		out = append(out, fmt.Sprintf(`%s="%s"`, k, escape(fmt.Sprint(opts[k]))))
	}
	return out
}

func escape(s string) string {
	b := &bytes.Buffer{}
	if err := xml.EscapeText(b, []byte(s)); err != nil {
		panic(err)
	}
	return b.String()
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
