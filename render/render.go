// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package render is the diagram pipeline shared by the command line driver and
// the C boundary: resolve a table, parse the text, trace the scene and write
// SVG. It performs no I/O.
package render

import (
	"github.com/asciitosvg/a2svg"
	"github.com/asciitosvg/a2svg/tables"
)

// Fixed rendering parameters. Only the document name varies per call.
const (
	XScale     = 8
	YScale     = 13
	FontFamily = "monospace"
	FontSize   = 13
	TabWidth   = 8
)

// DefaultConfig returns the rendering configuration for a document called
// name.
func DefaultConfig(name string) *a2svg.Config {
	return &a2svg.Config{
		XScale:            XScale,
		YScale:            YScale,
		FontFamily:        FontFamily,
		FontSize:          FontSize,
		ShowGridlines:     false,
		InferRectElements: false,
		Name:              name,
	}
}

// Render converts content to a complete SVG document titled name, using the
// connectivity table called table. It returns either the whole document or an
// *Error of KindConfig or KindParse.
func Render(table, content, name string) (string, error) {
	t, err := tables.Lookup(table)
	if err != nil {
		return "", ConfigError(table, err)
	}
	g, err := a2svg.Parse(content, TabWidth)
	if err != nil {
		return "", ParseFailure(name, err)
	}
	return DefaultConfig(name).Render(g.Scene(t)), nil
}
