package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"testing"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMarshalProperties(t *testing.T) {
	props := []Property{
		IntProperty("AI_CONFIG_A", 7),
		{Kind: PropertyInteger, Int: 3}, // empty name, must marshal null
		StringProperty("AI_CONFIG_B", "value"),
		{Name: "AI_CONFIG_C", Kind: PropertyKind(99), Int: 5}, // unknown kind
		MatrixProperty("AI_CONFIG_D", mgl32.Translate3D(1, 2, 3)),
	}

	base, cleanup := marshalProperties(props)
	defer cleanup()
	if base == nil {
		t.Fatal("marshalProperties returned nil array")
	}
	slots := unsafe.Slice(base, len(props))

	if C.GoString(slots[0].name) != "AI_CONFIG_A" || slots[0].intValue != 7 {
		t.Errorf("int slot = %q %d", C.GoString(slots[0].name), slots[0].intValue)
	}
	if slots[1].name != nil {
		t.Errorf("empty name marshalled as %q, want null", C.GoString(slots[1].name))
	}
	if C.GoString(slots[2].stringValue) != "value" {
		t.Errorf("string slot = %q", C.GoString(slots[2].stringValue))
	}

	// unknown kinds pass through untouched so the native side can
	// ignore them
	if int(slots[3].kind) != 99 {
		t.Errorf("unknown kind = %d, want 99", slots[3].kind)
	}
	if slots[3].stringValue != nil || slots[3].matrixValue != nil {
		t.Error("unknown kind carried value pointers")
	}

	if slots[4].matrixValue == nil {
		t.Fatal("matrix slot has null matrix")
	}
	rm := unsafe.Slice((*float32)(unsafe.Pointer(slots[4].matrixValue)), 16)
	// row-major layout keeps the translation in the last column
	if rm[3] != 1 || rm[7] != 2 || rm[11] != 3 || rm[15] != 1 {
		t.Errorf("matrix not row-major: %v", rm)
	}
}

func TestMarshalPropertiesEmpty(t *testing.T) {
	base, cleanup := marshalProperties(nil)
	defer cleanup()
	if base != nil {
		t.Errorf("empty sequence marshalled to %v", base)
	}
}
