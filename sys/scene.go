package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"sync"

	"github.com/pkg/errors"
)

// Scene is an owned handle to a native scene graph. The underlying
// allocation is a deep copy with no ties to the importer that produced
// it. Release it with Free; a second Free is a no-op.
type Scene struct {
	mu sync.Mutex
	c  *C.struct_aiScene
}

func newScene(c *C.struct_aiScene) *Scene {
	return &Scene{c: c}
}

// Valid reports whether the handle still owns a native scene.
func (s *Scene) Valid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c != nil
}

// Free releases the native scene graph.
func (s *Scene) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c != nil {
		C.aiFreeScene(s.c)
		s.c = nil
	}
}

// MemoryInfo reports the native allocation sizes of the scene, bytes
// per component.
type MemoryInfo struct {
	Textures   uint32
	Materials  uint32
	Meshes     uint32
	Nodes      uint32
	Animations uint32
	Cameras    uint32
	Lights     uint32
	Total      uint32
}

func (s *Scene) Memory() (MemoryInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil {
		return MemoryInfo{}, errors.New("scene already freed")
	}

	var info C.struct_aiMemoryInfo
	C.aiGetMemoryRequirements(s.c, &info)
	return MemoryInfo{
		Textures:   uint32(info.textures),
		Materials:  uint32(info.materials),
		Meshes:     uint32(info.meshes),
		Nodes:      uint32(info.nodes),
		Animations: uint32(info.animations),
		Cameras:    uint32(info.cameras),
		Lights:     uint32(info.lights),
		Total:      uint32(info.total),
	}, nil
}
