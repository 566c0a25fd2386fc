package sys

/*
#include <stdlib.h>
#include <string.h>
#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Latias94/asset-importer/scene"
)

// PropertyKind tags which value field of a Property is meaningful.
// Unknown kinds are passed through and silently ignored by the bridge.
type PropertyKind int

const (
	PropertyInteger PropertyKind = C.abPropInteger
	PropertyFloat   PropertyKind = C.abPropFloat
	PropertyString  PropertyKind = C.abPropString
	PropertyMatrix  PropertyKind = C.abPropMatrix
	PropertyBool    PropertyKind = C.abPropBool
)

// Property configures one importer/exporter option keyed by a name from
// the native library's own config namespace ("AI_CONFIG_...").
type Property struct {
	Name   string
	Kind   PropertyKind
	Int    int32
	Float  float32
	String string
	Matrix *mgl32.Mat4
}

func IntProperty(name string, value int32) Property {
	return Property{Name: name, Kind: PropertyInteger, Int: value}
}

func FloatProperty(name string, value float32) Property {
	return Property{Name: name, Kind: PropertyFloat, Float: value}
}

func StringProperty(name, value string) Property {
	return Property{Name: name, Kind: PropertyString, String: value}
}

func BoolProperty(name string, value bool) Property {
	p := Property{Name: name, Kind: PropertyBool}
	if value {
		p.Int = 1
	}
	return p
}

func MatrixProperty(name string, value mgl32.Mat4) Property {
	return Property{Name: name, Kind: PropertyMatrix, Matrix: &value}
}

// marshalProperties builds the C descriptor array. All allocations are
// released by the returned func after the native call finishes; the
// native side never retains descriptor pointers past a call.
func marshalProperties(props []Property) (*C.abProperty, func()) {
	if len(props) == 0 {
		return nil, func() {}
	}

	size := C.size_t(len(props)) * C.sizeof_abProperty
	base := (*C.abProperty)(C.malloc(size))
	C.memset(unsafe.Pointer(base), 0, size)

	cleanup := []unsafe.Pointer{unsafe.Pointer(base)}
	slots := unsafe.Slice(base, len(props))

	for i, p := range props {
		slot := &slots[i]
		slot.kind = C.int(p.Kind)
		if p.Name != "" {
			slot.name = C.CString(p.Name)
			cleanup = append(cleanup, unsafe.Pointer(slot.name))
		}

		switch p.Kind {
		case PropertyInteger, PropertyBool:
			slot.intValue = C.int(p.Int)
		case PropertyFloat:
			slot.floatValue = C.float(p.Float)
		case PropertyString:
			slot.stringValue = C.CString(p.String)
			cleanup = append(cleanup, unsafe.Pointer(slot.stringValue))
		case PropertyMatrix:
			if p.Matrix != nil {
				rm := scene.MatToRowMajor(*p.Matrix)
				mat := (*C.float)(C.malloc(16 * C.sizeof_float))
				C.memcpy(unsafe.Pointer(mat), unsafe.Pointer(&rm[0]), 16*C.sizeof_float)
				slot.matrixValue = mat
				cleanup = append(cleanup, unsafe.Pointer(mat))
			}
		}
	}

	return base, func() {
		for _, p := range cleanup {
			C.free(p)
		}
	}
}
