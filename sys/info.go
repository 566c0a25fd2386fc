package sys

/*
#include <stdlib.h>
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"
)

// Version reports the linked library's version triple.
func Version() (major, minor, revision int) {
	return int(C.aiGetVersionMajor()), int(C.aiGetVersionMinor()), int(C.aiGetVersionRevision())
}

// VersionString formats Version as "major.minor.revision".
func VersionString() string {
	major, minor, revision := Version()
	return fmt.Sprintf("%d.%d.%d", major, minor, revision)
}

// IsExtensionSupported reports whether an importer is registered for
// the extension. The leading dot is required (".obj", not "obj").
func IsExtensionSupported(ext string) bool {
	cExt := C.CString(ext)
	defer C.free(unsafe.Pointer(cExt))
	return C.aiIsExtensionSupported(cExt) != 0
}

// ImportExtensions lists every file extension the linked library can
// read, dots included.
func ImportExtensions() []string {
	var list C.struct_aiString
	C.aiGetExtensionList(&list)

	// the library reports a single ";"-separated list of "*.ext" globs
	var out []string
	for _, item := range strings.Split(goAiString(&list), ";") {
		item = strings.TrimPrefix(item, "*")
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
