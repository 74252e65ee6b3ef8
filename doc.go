// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package a2svg parses ASCII diagrams and renders them as SVG. It supports
// diagrams containing UTF-8 content, custom styling of polygons, line
// segments, and text.
//
// Rendering has three steps. Parse turns text into a Grid: a rectangle of
// characters, one row per line, with tabs expanded and tag definitions such
// as
//
//	[a]: {"fill":"#88d","a2s:label":"Label"}
//
// set aside. Grid.Scene traces the closed paths, open paths and text of the
// grid; which characters connect to which neighbors is decided by a Table,
// so the same grid can be read with different character sets. Config.Render
// writes the Scene as an SVG document.
//
// Example usage:
//
//	table := a2svg.NewTable("plain", []a2svg.Entry{
//	    {Char: '-', Class: a2svg.Horizontal},
//	    {Char: '|', Class: a2svg.Vertical},
//	    {Char: '+', Class: a2svg.Corner},
//	})
//	grid, err := a2svg.Parse(diagram, 8)
//	if err != nil {
//	    return err
//	}
//	cfg := &a2svg.Config{XScale: 8, YScale: 13, FontFamily: "monospace", FontSize: 13, Name: "diagram"}
//	svg := cfg.Render(grid.Scene(table))
//
// Named tables live in the tables subpackage.
package a2svg
