package scene

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Well-known material property keys from the native key namespace.
const (
	MatKeyName         = "?mat.name"
	MatKeyColorDiffuse = "$clr.diffuse"
	MatKeyColorSpecular = "$clr.specular"
	MatKeyColorAmbient  = "$clr.ambient"
	MatKeyColorEmissive = "$clr.emissive"
	MatKeyOpacity       = "$mat.opacity"
	MatKeyShininess     = "$mat.shininess"
	MatKeyTwoSided      = "$mat.twosided"
	MatKeyTexturePath   = "$tex.file"
)

// Texture semantics (aiTextureType values).
const (
	TextureNone      = 0
	TextureDiffuse   = 1
	TextureSpecular  = 2
	TextureAmbient   = 3
	TextureEmissive  = 4
	TextureHeight    = 5
	TextureNormals   = 6
	TextureShininess = 7
	TextureOpacity   = 8
	TextureBaseColor = 12
)

// Material property payload types.
const (
	PropertyTypeFloat   = 0x1
	PropertyTypeDouble  = 0x2
	PropertyTypeString  = 0x3
	PropertyTypeInteger = 0x4
	PropertyTypeBuffer  = 0x5
)

type Material struct {
	Properties []MaterialProperty
}

// MaterialProperty mirrors one native material property: a key plus an
// optional texture semantic/index and a typed payload kept both raw and
// decoded.
type MaterialProperty struct {
	Key      string
	Semantic uint32
	Index    uint32
	Type     uint32
	Raw      []byte
}

func (m *Material) find(key string, semantic, index uint32) *MaterialProperty {
	for i := range m.Properties {
		p := &m.Properties[i]
		if p.Key == key && p.Semantic == semantic && p.Index == index {
			return p
		}
	}
	return nil
}

func (m *Material) Name() string {
	if s, ok := m.String(MatKeyName); ok {
		return s
	}
	return ""
}

func (m *Material) String(key string) (string, bool) {
	p := m.find(key, 0, 0)
	if p == nil || p.Type != PropertyTypeString {
		return "", false
	}
	return decodeAiString(p.Raw), true
}

func (m *Material) Float(key string) (float32, bool) {
	p := m.find(key, 0, 0)
	if p == nil {
		return 0, false
	}
	f := p.Floats()
	if len(f) == 0 {
		return 0, false
	}
	return f[0], true
}

func (m *Material) Int(key string) (int32, bool) {
	p := m.find(key, 0, 0)
	if p == nil || p.Type != PropertyTypeInteger || len(p.Raw) < 4 {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(p.Raw)), true
}

// Color returns an RGBA color property, defaulting alpha to 1 when the
// stored payload has only three components.
func (m *Material) Color(key string) (mgl32.Vec4, bool) {
	p := m.find(key, 0, 0)
	if p == nil {
		return mgl32.Vec4{}, false
	}
	f := p.Floats()
	switch {
	case len(f) >= 4:
		return mgl32.Vec4{f[0], f[1], f[2], f[3]}, true
	case len(f) == 3:
		return mgl32.Vec4{f[0], f[1], f[2], 1}, true
	default:
		return mgl32.Vec4{}, false
	}
}

// TexturePath returns the path of the index-th texture with the given
// semantic. Paths beginning with '*' reference embedded textures.
func (m *Material) TexturePath(semantic uint32, index uint32) (string, bool) {
	p := m.find(MatKeyTexturePath, semantic, index)
	if p == nil || p.Type != PropertyTypeString {
		return "", false
	}
	return decodeAiString(p.Raw), true
}

func (m *Material) TextureCount(semantic uint32) int {
	count := 0
	for i := range m.Properties {
		p := &m.Properties[i]
		if p.Key == MatKeyTexturePath && p.Semantic == semantic {
			count++
		}
	}
	return count
}

// Floats decodes the payload as float32 values, converting from doubles
// when the source property was stored double-precision.
func (p *MaterialProperty) Floats() []float32 {
	switch p.Type {
	case PropertyTypeFloat:
		out := make([]float32, len(p.Raw)/4)
		for i := range out {
			out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p.Raw[i*4:]))
		}
		return out
	case PropertyTypeDouble:
		out := make([]float32, len(p.Raw)/8)
		for i := range out {
			out[i] = float32(math.Float64frombits(binary.LittleEndian.Uint64(p.Raw[i*8:])))
		}
		return out
	default:
		return nil
	}
}

// decodeAiString unpacks the native length-prefixed string payload used
// by string material properties.
func decodeAiString(raw []byte) string {
	if len(raw) < 4 {
		return ""
	}
	n := int(binary.LittleEndian.Uint32(raw))
	if n < 0 || n > len(raw)-4 {
		n = len(raw) - 4
	}
	s := raw[4 : 4+n]
	// drop trailing NUL if the exporter included it
	for len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return string(s)
}
