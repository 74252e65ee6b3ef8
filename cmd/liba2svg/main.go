// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

// liba2svg is the C shared library build of the renderer:
//
//	go build -buildmode=c-shared -o liba2svg.so ./cmd/liba2svg
//
// which also writes liba2svg.h. Every returned buffer is allocated with
// malloc(3) and owned by the caller: release it with release_string or free(3).
// Buffers that are never released are never reclaimed.
package main

/*
#include <stddef.h>
*/
import "C"

import (
	"unsafe"

	"github.com/asciitosvg/a2svg/internal/ffi"
)

// process_string renders content with the named table. Invalid UTF-8, an
// unknown table or a malformed diagram abort the process.
//
//export process_string
func process_string(table, content, name *C.char) *C.char {
	return (*C.char)(ffi.Process(unsafe.Pointer(table), unsafe.Pointer(content), unsafe.Pointer(name)))
}

// release_string frees a buffer returned by this library. NULL is ignored.
//
//export release_string
func release_string(s *C.char) {
	ffi.Release(unsafe.Pointer(s))
}

// process_string_checked never aborts. On failure it returns NULL and, if err
// is not NULL, stores a message in *err that must be released too.
//
//export process_string_checked
func process_string_checked(table, content, name *C.char, err **C.char) *C.char {
	var msg unsafe.Pointer
	out := ffi.ProcessChecked(unsafe.Pointer(table), unsafe.Pointer(content), unsafe.Pointer(name), &msg)
	if err != nil {
		*err = (*C.char)(msg)
	} else {
		ffi.Release(msg)
	}
	return (*C.char)(out)
}

// process_string_into writes the document into buf when it fits in capacity
// bytes, NUL included. *need always receives the required size. It returns 0
// on success and a non-zero status otherwise; see ffi.Status.
//
//export process_string_into
func process_string_into(table, content, name, buf *C.char, capacity C.size_t, need *C.size_t) C.int {
	var n int
	status := ffi.ProcessInto(unsafe.Pointer(table), unsafe.Pointer(content), unsafe.Pointer(name), unsafe.Pointer(buf), int(capacity), &n)
	if need != nil {
		*need = C.size_t(n)
	}
	return C.int(status)
}

func main() {}
