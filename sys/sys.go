// Package sys is the low-level cgo bridge to the Assimp library. It owns
// every unsafe conversion: property descriptor marshalling, the virtual
// file-system trampolines, the progress trampoline and the scene handle
// returned by the native importer. Higher-level packages (importer,
// exporter) wrap it with validation and options.
package sys

/*
#cgo CXXFLAGS: -std=c++17
#cgo linux LDFLAGS: -lassimp -lstdc++
#cgo darwin LDFLAGS: -lassimp -lc++
#cgo windows LDFLAGS: -lassimp -lstdc++

#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/Latias94/asset-importer/progress"
	"github.com/Latias94/asset-importer/vfs"
)

// ImportFile reads a scene from path through a transient native
// importer. fs, props and handler are all optional. The returned scene
// is deep-copied out of the importer and must be released with Free.
func ImportFile(path string, flags uint32, fs vfs.FileSystem, props []Property, handler progress.Handler) (*Scene, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	fileIO, freeIO := newFileIO(fs)
	defer freeIO()

	ph, freePH := newProgressHandle(handler)
	defer freePH()

	cProps, freeProps := marshalProperties(props)
	defer freeProps()

	cs := C.abImportFile(cPath, C.uint(flags), fileIO, cProps, C.size_t(len(props)), ph)
	if cs == nil {
		return nil, lastError("import failed")
	}
	return newScene(cs), nil
}

// ImportMemory reads a scene from an in-memory buffer. hint optionally
// names the file extension of the contained format ("obj", "glb", ...).
func ImportMemory(data []byte, flags uint32, hint string, props []Property, handler progress.Handler) (*Scene, error) {
	if len(data) == 0 {
		return nil, errors.New("memory buffer is empty")
	}

	var cHint *C.char
	if hint != "" {
		cHint = C.CString(hint)
		defer C.free(unsafe.Pointer(cHint))
	}

	ph, freePH := newProgressHandle(handler)
	defer freePH()

	cProps, freeProps := marshalProperties(props)
	defer freeProps()

	cs := C.abImportMemory((*C.char)(unsafe.Pointer(&data[0])), C.uint(len(data)),
		C.uint(flags), cHint, cProps, C.size_t(len(props)), ph)
	if cs == nil {
		return nil, lastError("import failed")
	}
	return newScene(cs), nil
}

// newFileIO wires a Go filesystem into a native aiFileIO. The returned
// release func frees both the native struct and the handle.
func newFileIO(fs vfs.FileSystem) (*C.struct_aiFileIO, func()) {
	if fs == nil {
		return nil, func() {}
	}
	h := cgo.NewHandle(fs)
	io := C.abNewFileIO(C.uintptr_t(h))
	return io, func() {
		C.abFreeFileIO(io)
		h.Delete()
	}
}

// newProgressHandle registers a handler for the progress trampoline.
// The handler is wrapped so updates from native threads are serialized
// and cancellation is sticky.
func newProgressHandle(handler progress.Handler) (C.uintptr_t, func()) {
	if handler == nil {
		return 0, func() {}
	}
	h := cgo.NewHandle(progress.NewSerialized(handler))
	return C.uintptr_t(h), func() { h.Delete() }
}

// lastError drains the bridge's thread-local error message into a Go
// error, falling back to a generic message when the shim recorded none.
func lastError(fallback string) error {
	if msg := C.abLastError(); msg != nil {
		return errors.New(C.GoString(msg))
	}
	return errors.New(fallback)
}
