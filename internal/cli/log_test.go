// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package cli

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Setenv(DebugEnv, "")
	var buf bytes.Buffer
	l := NewLogger(&buf)
	assert.Equal(t, log.InfoLevel, l.GetLevel())
	l.Debug("hidden")
	assert.Empty(t, buf.String())

	t.Setenv(DebugEnv, "1")
	l = NewLogger(&buf)
	assert.Equal(t, log.DebugLevel, l.GetLevel())
	l.Debug("shown", "job", 3)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "a2svg")
}
