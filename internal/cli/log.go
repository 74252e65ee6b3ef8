// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// DebugEnv enables debug logging when set to any non-empty value.
const DebugEnv = "A2SVG_DEBUG"

var (
	colorRed  = lipgloss.Color("167")
	colorGray = lipgloss.Color("245")
)

// NewLogger returns a timestamped logger writing to w. It logs at debug level
// when DebugEnv is set and at info level otherwise.
func NewLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if os.Getenv(DebugEnv) != "" {
		level = log.DebugLevel
	}
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "a2svg",
	})
	styles := log.DefaultStyles()
	styles.Levels[log.FatalLevel] = lipgloss.NewStyle().SetString("FATA").Bold(true).Foreground(colorRed)
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBU").Foreground(colorGray)
	l.SetStyles(styles)
	return l
}
