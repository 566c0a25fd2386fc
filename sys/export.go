//go:build !noexport

package sys

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/Latias94/asset-importer/vfs"
)

// ExportFile writes the scene to path in the named format. formatID is
// an exporter id from ExportFormats ("obj", "glb2", ...). preprocessing
// holds extra post-process steps applied before writing; fs and props
// are optional.
func ExportFile(sc *Scene, formatID, path string, preprocessing uint32, fs vfs.FileSystem, props []Property) error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.c == nil {
		return errSceneFreed()
	}

	cFormat := C.CString(formatID)
	defer C.free(unsafe.Pointer(cFormat))
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	fileIO, freeIO := newFileIO(fs)
	defer freeIO()

	cProps, freeProps := marshalProperties(props)
	defer freeProps()

	rc := C.abExportFile(sc.c, cFormat, cPath, C.uint(preprocessing), fileIO, cProps, C.size_t(len(props)))
	if rc != 0 {
		return lastError("export failed")
	}
	return nil
}

// ExportBlob serializes the scene in the named format into memory. The
// returned chain is fully copied into Go memory; the native allocation
// is released before returning.
func ExportBlob(sc *Scene, formatID string, preprocessing uint32, props []Property) (*Blob, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.c == nil {
		return nil, errSceneFreed()
	}

	cFormat := C.CString(formatID)
	defer C.free(unsafe.Pointer(cFormat))

	cProps, freeProps := marshalProperties(props)
	defer freeProps()

	cb := C.abExportBlob(sc.c, cFormat, C.uint(preprocessing), cProps, C.size_t(len(props)))
	if cb == nil {
		return nil, lastError("export failed")
	}
	defer C.abFreeBlob(cb)

	return copyBlob(cb), nil
}

func copyBlob(cb *C.struct_aiExportDataBlob) *Blob {
	var head, tail *Blob
	for ; cb != nil; cb = cb.next {
		b := &Blob{Name: goAiString(&cb.name)}
		if cb.data != nil && cb.size > 0 {
			b.Data = C.GoBytes(cb.data, C.int(cb.size))
		}
		if head == nil {
			head = b
		} else {
			tail.Next = b
		}
		tail = b
	}
	return head
}

// ExportFormats lists the exporters the linked library was built with.
func ExportFormats() []ExportFormat {
	n := int(C.aiGetExportFormatCount())
	out := make([]ExportFormat, 0, n)
	for i := 0; i < n; i++ {
		desc := C.aiGetExportFormatDescription(C.size_t(i))
		if desc == nil {
			continue
		}
		out = append(out, ExportFormat{
			ID:          C.GoString(desc.id),
			Description: C.GoString(desc.description),
			Extension:   C.GoString(desc.fileExtension),
		})
		C.aiReleaseExportFormatDescription(desc)
	}
	return out
}
