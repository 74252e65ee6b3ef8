// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

import (
	"fmt"
	"strconv"
)

// colorToRGB parses "#rgb" and "#rrggbb" colors.
func colorToRGB(c string) (r, g, b int, err error) {
	if len(c) == 0 || c[0] != '#' {
		return 0, 0, 0, fmt.Errorf("color '%s' can't be parsed", c)
	}
	hex := c[1:]
	switch len(hex) {
	case 3:
		// #abc is shorthand for #aabbcc.
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("color '%s' not of valid length", c)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("color '%s' can't be parsed: %w", c, err)
	}
	return int(v>>16) & 0xff, int(v>>8) & 0xff, int(v) & 0xff, nil
}

// textColor returns a text color readable on top of background c, following
// the brightness and color difference thresholds of
// http://www.w3.org/TR/AERT. Text is black unless that fails both.
func textColor(c string) (string, error) {
	r, g, b, err := colorToRGB(c)
	if err != nil {
		return "#000", err
	}
	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#fff", nil
	}
	return "#000", nil
}
