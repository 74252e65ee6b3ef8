// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package batch runs a flat list of (table, input, output) job triples through
// the render pipeline, one job at a time, stopping at the first failure.
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/asciitosvg/a2svg/render"
	"github.com/asciitosvg/a2svg/tables"
)

// ErrNotText is returned, wrapped in a KindIO error, for input files that are
// not valid UTF-8.
var ErrNotText = errors.New("input is not valid UTF-8 text")

// Job is one unit of batch work.
type Job struct {
	Table  string
	Input  string
	Output string
}

// Jobs groups args into triples. One or two trailing arguments that do not
// form a full triple are dropped.
func Jobs(args []string) []Job {
	out := make([]Job, 0, len(args)/3)
	for len(args) >= 3 {
		out = append(out, Job{Table: args[0], Input: args[1], Output: args[2]})
		args = args[3:]
	}
	return out
}

// Driver processes jobs sequentially.
type Driver struct {
	// Progress receives one line per job before it starts; nil discards them.
	Progress io.Writer
	// Logger receives debug details; nil disables them.
	Logger *log.Logger
}

// Run processes every complete triple of args in order. It returns the first
// failure, a *render.Error, without starting any later job.
func (d *Driver) Run(args []string) error {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("run", uuid.NewString())

	jobs := Jobs(args)
	if dropped := len(args) - 3*len(jobs); dropped != 0 {
		logger.Debug("ignoring incomplete trailing job", "args", args[len(args)-dropped:])
	}
	for i, job := range jobs {
		if err := d.process(logger.With("job", i), job); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) process(logger *log.Logger, job Job) error {
	progress := d.Progress
	if progress == nil {
		progress = io.Discard
	}
	if _, err := fmt.Fprintf(progress, "processing %s to %s\n", job.Input, job.Output); err != nil {
		return render.IOError("progress", err)
	}

	// The table is resolved before touching the file system.
	if _, err := tables.Lookup(job.Table); err != nil {
		return render.ConfigError(job.Table, err)
	}

	content, err := os.ReadFile(job.Input)
	if err != nil {
		return render.IOError(job.Input, err)
	}
	if !utf8.Valid(content) {
		return render.IOError(job.Input, ErrNotText)
	}
	logger.Debug("read input", "table", job.Table, "path", job.Input, "bytes", len(content))

	svg, err := render.Render(job.Table, string(content), job.Input)
	if err != nil {
		return err
	}

	if err := writeFile(job.Output, svg); err != nil {
		return render.IOError(job.Output, err)
	}
	logger.Debug("wrote output", "path", job.Output, "bytes", len(svg))
	return nil
}

// writeFile creates or truncates path and writes s. The file is closed before
// returning so the next job never overlaps with this one.
func writeFile(path, s string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
