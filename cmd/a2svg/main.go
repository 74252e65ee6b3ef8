// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// a2svg renders ASCII diagrams to SVG files.
//
//	a2svg TABLE INPUT OUTPUT [TABLE INPUT OUTPUT ...]
package main

import (
	"os"

	"github.com/asciitosvg/a2svg/internal/cli"
	"github.com/asciitosvg/a2svg/render"
)

func main() {
	logger := cli.NewLogger(os.Stderr)
	cmd := cli.NewRootCommand(os.Stdout, logger)
	cmd.SetArgs(os.Args[1:])
	if err := cmd.Execute(); err != nil {
		logger.Fatal("aborting batch", "kind", render.KindOf(err), "err", err)
	}
}
