package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMatRowMajorRoundTrip(t *testing.T) {
	rm := [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	m := MatFromRowMajor(rm)
	if m.At(0, 3) != 4 || m.At(3, 0) != 13 {
		t.Errorf("row-major conversion wrong: %v", m)
	}
	back := MatToRowMajor(m)
	if back != rm {
		t.Errorf("round trip mismatch: %v", back)
	}
}

func TestMatFromRowMajorIdentityTranslation(t *testing.T) {
	rm := [16]float32{
		1, 0, 0, 10,
		0, 1, 0, 20,
		0, 0, 1, 30,
		0, 0, 0, 1,
	}
	m := MatFromRowMajor(rm)
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, m)
	if p != (mgl32.Vec3{10, 20, 30}) {
		t.Errorf("translation lost: %v", p)
	}
}

func TestNodeFindAndGlobalTransform(t *testing.T) {
	root := &Node{Name: "root", Transform: mgl32.Translate3D(1, 0, 0)}
	child := &Node{Name: "child", Transform: mgl32.Translate3D(0, 2, 0), Parent: root}
	root.Children = []*Node{child}
	s := &Scene{RootNode: root}

	if s.FindNode("child") != child {
		t.Errorf("FindNode(child) failed")
	}
	if s.FindNode("ghost") != nil {
		t.Errorf("FindNode(ghost) found something")
	}

	g := child.GlobalTransform()
	p := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, g)
	if p != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("global transform = %v", p)
	}
}

func TestMeshBoundsAndIndices(t *testing.T) {
	m := &Mesh{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, -1, 2}, {-3, 4, 0}},
		Faces:     []Face{{Indices: []uint32{0, 1, 2}}, {Indices: []uint32{0, 1}}},
	}
	b := m.Bounds()
	if b.Min != (mgl32.Vec3{-3, -1, 0}) || b.Max != (mgl32.Vec3{1, 4, 2}) {
		t.Errorf("bounds = %v", b)
	}
	idx := m.TriangleIndices()
	if len(idx) != 3 {
		t.Errorf("TriangleIndices len = %d; non-triangles not skipped", len(idx))
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 1, 1}}
	b := AABB{Min: mgl32.Vec3{-1, 0.5, 0}, Max: mgl32.Vec3{0.5, 2, 1}}
	u := a.Union(b)
	if u.Min != (mgl32.Vec3{-1, 0, 0}) || u.Max != (mgl32.Vec3{1, 2, 1}) {
		t.Errorf("union = %v", u)
	}
	var empty AABB
	if empty.Union(a) != a || a.Union(empty) != a {
		t.Errorf("union with empty box changed bounds")
	}
}

func aiStringRaw(s string) []byte {
	raw := make([]byte, 4+len(s)+1)
	binary.LittleEndian.PutUint32(raw, uint32(len(s)))
	copy(raw[4:], s)
	return raw
}

func floatRaw(vals ...float32) []byte {
	raw := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	return raw
}

func TestMaterialLookups(t *testing.T) {
	m := &Material{Properties: []MaterialProperty{
		{Key: MatKeyName, Type: PropertyTypeString, Raw: aiStringRaw("steel")},
		{Key: MatKeyColorDiffuse, Type: PropertyTypeFloat, Raw: floatRaw(0.5, 0.25, 1, 1)},
		{Key: MatKeyOpacity, Type: PropertyTypeFloat, Raw: floatRaw(0.75)},
		{Key: MatKeyTexturePath, Semantic: TextureDiffuse, Index: 0, Type: PropertyTypeString, Raw: aiStringRaw("albedo.png")},
		{Key: MatKeyTexturePath, Semantic: TextureDiffuse, Index: 1, Type: PropertyTypeString, Raw: aiStringRaw("detail.png")},
	}}

	if m.Name() != "steel" {
		t.Errorf("Name = %q", m.Name())
	}
	if c, ok := m.Color(MatKeyColorDiffuse); !ok || c != (mgl32.Vec4{0.5, 0.25, 1, 1}) {
		t.Errorf("Color = %v %v", c, ok)
	}
	if f, ok := m.Float(MatKeyOpacity); !ok || f != 0.75 {
		t.Errorf("Float = %v %v", f, ok)
	}
	if n := m.TextureCount(TextureDiffuse); n != 2 {
		t.Errorf("TextureCount = %d", n)
	}
	if p, ok := m.TexturePath(TextureDiffuse, 1); !ok || p != "detail.png" {
		t.Errorf("TexturePath = %q %v", p, ok)
	}
	if _, ok := m.TexturePath(TextureNormals, 0); ok {
		t.Errorf("TexturePath for absent semantic succeeded")
	}
}

func TestMaterialColorRGB(t *testing.T) {
	m := &Material{Properties: []MaterialProperty{
		{Key: MatKeyColorAmbient, Type: PropertyTypeFloat, Raw: floatRaw(0.1, 0.2, 0.3)},
	}}
	c, ok := m.Color(MatKeyColorAmbient)
	if !ok || c != (mgl32.Vec4{0.1, 0.2, 0.3, 1}) {
		t.Errorf("rgb color = %v %v", c, ok)
	}
}

func TestResolveEmbedded(t *testing.T) {
	s := &Scene{Textures: []*Texture{
		{FormatHint: "png", Width: 3, Data: []byte{1, 2, 3}},
	}}
	if tex := s.ResolveEmbedded("*0"); tex == nil || !tex.Compressed() {
		t.Errorf("ResolveEmbedded(*0) = %v", tex)
	}
	if s.ResolveEmbedded("*5") != nil || s.ResolveEmbedded("file.png") != nil {
		t.Errorf("bad embedded references resolved")
	}
}

func TestAnimationDurationSeconds(t *testing.T) {
	a := &Animation{Duration: 100, TicksPerSecond: 50}
	if a.DurationSeconds() != 2 {
		t.Errorf("DurationSeconds = %v", a.DurationSeconds())
	}
	a = &Animation{Duration: 50}
	if a.DurationSeconds() != 2 {
		t.Errorf("default tick rate DurationSeconds = %v", a.DurationSeconds())
	}
}
