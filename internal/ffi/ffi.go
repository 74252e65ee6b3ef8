// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// Package ffi adapts the render pipeline to callers on the other side of a C
// calling convention.
//
// All buffers crossing the boundary are NUL terminated. Input buffers belong
// to the caller and are only read during the call. Output buffers are
// allocated with the C allocator and belong to the caller once returned; this
// package never frees them by itself. A host that does not pass them to
// Release (release_string in the shared library), or to free(3), leaks one
// buffer per successful call for the lifetime of the process.
//
// Process aborts the host process on every failure.
// ProcessChecked and ProcessInto never abort and report failures instead.
//
// No state is kept between calls.
package ffi

/*
#include <stdlib.h>
*/
import "C"

import (
	"errors"
	"unicode/utf8"
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/asciitosvg/a2svg/render"
)

// Status is the result code of the non-aborting entry points.
type Status int

const (
	StatusOK Status = iota
	StatusConfig
	StatusEncoding
	StatusParse
	// StatusIO is part of the error taxonomy but never produced here: the
	// boundary does no file I/O.
	StatusIO
	StatusBufferTooSmall
	StatusNullArgument
)

var (
	errNullPointer = errors.New("null pointer")
	errInvalidUTF8 = errors.New("invalid UTF-8")
)

// Abort terminates the host process. It is a variable so tests can observe
// the fatal path in a child process.
var Abort = func() { C.abort() }

// Process renders content with table and returns a newly allocated C string.
// Invalid text, an unknown table or a diagram that fails to parse abort the
// whole process after logging the error on stderr. The result must be passed
// to Release (or free) by the caller; otherwise it is never reclaimed.
func Process(table, content, name unsafe.Pointer) unsafe.Pointer {
	svg, err := process(table, content, name)
	if err != nil {
		fatal(err)
		return nil
	}
	return newCString(svg)
}

// ProcessChecked is Process without the aborts. On failure it returns nil and,
// when errOut is not nil, stores a newly allocated C string describing the
// error in *errOut. Both the result and *errOut must be released by the
// caller.
func ProcessChecked(table, content, name unsafe.Pointer, errOut *unsafe.Pointer) unsafe.Pointer {
	if errOut != nil {
		*errOut = nil
	}
	svg, err := process(table, content, name)
	if err != nil {
		if errOut != nil {
			*errOut = newCString(err.Error())
		}
		return nil
	}
	return newCString(svg)
}

// ProcessInto renders into a buffer owned by the caller. need always receives
// the size required for the document and its NUL terminator, even on
// StatusBufferTooSmall; buf is only written when the whole document fits.
// Nothing is allocated on behalf of the caller.
func ProcessInto(table, content, name, buf unsafe.Pointer, capacity int, need *int) Status {
	if need != nil {
		*need = 0
	}
	svg, err := process(table, content, name)
	if err != nil {
		return statusOf(err)
	}
	size := len(svg) + 1
	if need != nil {
		*need = size
	}
	if buf == nil || capacity < size {
		return StatusBufferTooSmall
	}
	dst := unsafe.Slice((*byte)(buf), size)
	copy(dst, svg)
	dst[size-1] = 0
	return StatusOK
}

// Release frees a buffer returned by Process or ProcessChecked. nil is a
// no-op. Releasing a pointer twice, or one not allocated here, is undefined.
func Release(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

func process(table, content, name unsafe.Pointer) (string, error) {
	t, err := decode("table", table)
	if err != nil {
		return "", err
	}
	c, err := decode("content", content)
	if err != nil {
		return "", err
	}
	n, err := decode("name", name)
	if err != nil {
		return "", err
	}
	return render.Render(t, c, n)
}

// decode copies a NUL terminated foreign buffer into a Go string.
func decode(what string, p unsafe.Pointer) (string, error) {
	if p == nil {
		return "", render.EncodingError(what, errNullPointer)
	}
	s := goString(p)
	if !utf8.ValidString(s) {
		return "", render.EncodingError(what, errInvalidUTF8)
	}
	return s, nil
}

func statusOf(err error) Status {
	switch render.KindOf(err) {
	case render.KindConfig:
		return StatusConfig
	case render.KindParse:
		return StatusParse
	case render.KindIO:
		return StatusIO
	}
	if errors.Is(err, errNullPointer) {
		return StatusNullArgument
	}
	return StatusEncoding
}

func fatal(err error) {
	log.Error("a2svg: unrecoverable error at the C boundary", "kind", render.KindOf(err), "err", err)
	Abort()
}
