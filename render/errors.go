// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package render

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not produced here.
	KindUnknown Kind = iota
	// KindConfig is an unknown table name: an operator mistake, not a data
	// error.
	KindConfig
	// KindIO is a failure to open, read or write a file.
	KindIO
	// KindParse is a diagram the parser rejected.
	KindParse
	// KindEncoding is foreign input that is not valid UTF-8.
	KindEncoding
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindEncoding:
		return "encoding"
	}
	return "unknown"
}

// Error is a pipeline failure. Err is the underlying failure, unchanged.
type Error struct {
	Kind Kind
	// Subject names what failed: a table name, a path or a diagram name.
	Subject string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Subject, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigError reports an unknown table.
func ConfigError(table string, err error) *Error {
	return &Error{Kind: KindConfig, Subject: table, Err: err}
}

// IOError reports a failed file operation on path.
func IOError(path string, err error) *Error {
	return &Error{Kind: KindIO, Subject: path, Err: err}
}

// ParseFailure reports a diagram that could not be parsed.
func ParseFailure(name string, err error) *Error {
	return &Error{Kind: KindParse, Subject: name, Err: err}
}

// EncodingError reports foreign input that is not valid text.
func EncodingError(what string, err error) *Error {
	return &Error{Kind: KindEncoding, Subject: what, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
