// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

//go:build wasip1

// a2svg-wasm is the WebAssembly reactor build of the renderer, for hosts such
// as browsers that load it into a virtual machine:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o a2svg.wasm ./cmd/a2svg-wasm
//
// The host writes NUL terminated strings into buffers obtained from
// a2svg_alloc, calls process_string and reads the NUL terminated result from
// linear memory. Every buffer, including results, stays allocated until the
// host passes it to a2svg_free.
package main

import (
	"fmt"
	"os"
	"sync"
	"unicode/utf8"
	"unsafe"

	"github.com/asciitosvg/a2svg/render"
)

// pinned keeps buffers handed to the host reachable, keyed by their address
// in linear memory, so the garbage collector does not reclaim them.
var (
	mu     sync.Mutex
	pinned = map[uint32][]byte{}
)

//go:wasmexport a2svg_alloc
func alloc(size uint32) uint32 {
	return pin(make([]byte, size))
}

//go:wasmexport a2svg_free
func free(p uint32) {
	mu.Lock()
	delete(pinned, p)
	mu.Unlock()
}

// processString aborts the instance on invalid UTF-8, unknown tables and
// malformed diagrams.
//
//go:wasmexport process_string
func processString(table, content, name uint32) uint32 {
	args := make([]string, 3)
	for i, p := range []uint32{table, content, name} {
		s := readString(p)
		if !utf8.ValidString(s) {
			fatal(render.EncodingError([]string{"table", "content", "name"}[i], fmt.Errorf("invalid UTF-8")))
		}
		args[i] = s
	}
	svg, err := render.Render(args[0], args[1], args[2])
	if err != nil {
		fatal(err)
	}
	return pin(append([]byte(svg), 0))
}

func pin(b []byte) uint32 {
	if len(b) == 0 {
		b = make([]byte, 1)
	}
	p := uint32(uintptr(unsafe.Pointer(&b[0])))
	mu.Lock()
	pinned[p] = b
	mu.Unlock()
	return p
}

// readString copies the NUL terminated string at p.
func readString(p uint32) string {
	base := unsafe.Pointer(uintptr(p))
	n := 0
	for *(*byte)(unsafe.Add(base, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(base), n))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "a2svg: %v\n", err)
	os.Exit(2)
}

func main() {}
