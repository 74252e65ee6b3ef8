// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package ffi

// #include <stdlib.h>
import "C"

import "unsafe"

// C heap buffers. Everything allocated here is freed with Release.

func newCString(s string) unsafe.Pointer {
	return unsafe.Pointer(C.CString(s))
}

// newCBytes copies b, whatever its encoding, and appends a NUL.
func newCBytes(b []byte) unsafe.Pointer {
	return C.CBytes(append(append([]byte(nil), b...), 0))
}

// goString copies the NUL terminated buffer at p.
func goString(p unsafe.Pointer) string {
	return C.GoString((*C.char)(p))
}

func cMalloc(n int) unsafe.Pointer {
	return C.malloc(C.size_t(n))
}
