package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive type bits as reported per mesh.
const (
	PrimitivePoint    = 0x1
	PrimitiveLine     = 0x2
	PrimitiveTriangle = 0x4
	PrimitivePolygon  = 0x8
)

const MaxTextureCoords = 8
const MaxColorSets = 8

type Mesh struct {
	Name           string
	MaterialIndex  uint32
	PrimitiveTypes uint32

	Positions  []mgl32.Vec3
	Normals    []mgl32.Vec3
	Tangents   []mgl32.Vec3
	Bitangents []mgl32.Vec3

	// TexCoords[i] is nil when UV set i is absent. UVComponents[i] tells
	// how many of the (up to 3) components are meaningful.
	TexCoords    [MaxTextureCoords][]mgl32.Vec3
	UVComponents [MaxTextureCoords]uint32

	Colors [MaxColorSets][]mgl32.Vec4

	Faces []Face
	Bones []*Bone

	AABB AABB
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0
}

func (m *Mesh) HasTangents() bool {
	return len(m.Tangents) > 0
}

func (m *Mesh) UVChannelCount() int {
	count := 0
	for _, tc := range m.TexCoords {
		if tc != nil {
			count++
		}
	}
	return count
}

func (m *Mesh) ColorChannelCount() int {
	count := 0
	for _, c := range m.Colors {
		if c != nil {
			count++
		}
	}
	return count
}

// TriangleIndices flattens faces into an index list, skipping any face
// that is not a triangle.
func (m *Mesh) TriangleIndices() []uint32 {
	indices := make([]uint32, 0, len(m.Faces)*3)
	for _, f := range m.Faces {
		if len(f.Indices) == 3 {
			indices = append(indices, f.Indices...)
		}
	}
	return indices
}

type Face struct {
	Indices []uint32
}

type Bone struct {
	Name         string
	OffsetMatrix mgl32.Mat4
	Weights      []VertexWeight
}

type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

func (b AABB) Empty() bool {
	return b.Min == b.Max
}

func (b AABB) Union(other AABB) AABB {
	if b.Empty() {
		return other
	}
	if other.Empty() {
		return b
	}
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i] {
			b.Min[i] = other.Min[i]
		}
		if other.Max[i] > b.Max[i] {
			b.Max[i] = other.Max[i]
		}
	}
	return b
}

// Bounds computes an AABB from mesh positions when the importer did not
// generate one.
func (m *Mesh) Bounds() AABB {
	if !m.AABB.Empty() {
		return m.AABB
	}
	if len(m.Positions) == 0 {
		return AABB{}
	}
	box := AABB{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < box.Min[i] {
				box.Min[i] = p[i]
			}
			if p[i] > box.Max[i] {
				box.Max[i] = p[i]
			}
		}
	}
	return box
}
