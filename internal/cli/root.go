// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package cli implements the a2svg command line.
//
// The command takes no flags: every argument is part of a flat list of job
// triples,
//
//	a2svg TABLE INPUT OUTPUT [TABLE INPUT OUTPUT ...]
//
// and each INPUT diagram is rendered with the connectivity table TABLE into
// the SVG file OUTPUT. A progress line is printed on stdout before each job.
// The first failure stops the run.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/asciitosvg/a2svg/internal/batch"
)

// NewRootCommand returns the a2svg command. Progress goes to stdout and debug
// logs to logger.
func NewRootCommand(stdout io.Writer, logger *log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "a2svg TABLE INPUT OUTPUT [TABLE INPUT OUTPUT ...]",
		Short: "Render ASCII diagrams to SVG",
		// Arguments are data, never flags: "--help" is a table name like any
		// other.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &batch.Driver{Progress: stdout, Logger: logger}
			return d.Run(args)
		},
	}
	cmd.SetOut(stdout)
	return cmd
}
