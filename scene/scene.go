// Package scene holds a native-independent representation of an imported
// asset. Instances are produced by decoding a scene handle and carry no
// references into native memory.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Scene flag bits, matching the native library's scene flags.
const (
	FlagIncomplete        = 0x1
	FlagValidated         = 0x2
	FlagValidationWarning = 0x4
	FlagNonVerboseFormat  = 0x8
	FlagTerrain           = 0x10
	FlagAllowShared       = 0x20
)

type Scene struct {
	Name       string
	Flags      uint32
	RootNode   *Node
	Meshes     []*Mesh
	Materials  []*Material
	Animations []*Animation
	Textures   []*Texture
	Lights     []*Light
	Cameras    []*Camera
	Metadata   Metadata
}

func (s *Scene) Incomplete() bool {
	return s.Flags&FlagIncomplete != 0
}

// FindNode walks the node hierarchy depth-first looking for name.
func (s *Scene) FindNode(name string) *Node {
	if s.RootNode == nil {
		return nil
	}
	return s.RootNode.Find(name)
}

type Node struct {
	Name        string
	Transform   mgl32.Mat4
	Parent      *Node `json:"-"`
	Children    []*Node
	MeshIndices []uint32
	Metadata    Metadata
}

func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// GlobalTransform accumulates transforms from the root down to n.
func (n *Node) GlobalTransform() mgl32.Mat4 {
	if n.Parent == nil {
		return n.Transform
	}
	return n.Parent.GlobalTransform().Mul4(n.Transform)
}

// Walk visits n and all descendants in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.Walk(visit)
	}
}

// Metadata is an ordered list of typed key/value entries attached to
// scenes and nodes by some formats (glTF extras, FBX properties).
type Metadata []MetadataEntry

type MetadataEntry struct {
	Key   string
	Value interface{} // bool, int32, uint64, float32, float64, string or mgl32.Vec3
}

func (m Metadata) Get(key string) (interface{}, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// MatFromRowMajor builds a matrix from 16 row-major floats, the layout
// the native library uses for transforms.
func MatFromRowMajor(v [16]float32) mgl32.Mat4 {
	return mgl32.Mat4{
		v[0], v[4], v[8], v[12],
		v[1], v[5], v[9], v[13],
		v[2], v[6], v[10], v[14],
		v[3], v[7], v[11], v[15],
	}
}

// MatToRowMajor is the inverse of MatFromRowMajor.
func MatToRowMajor(m mgl32.Mat4) [16]float32 {
	return [16]float32{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}
