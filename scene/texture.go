package scene

import (
	"strconv"
	"strings"
)

// Texture is an embedded texture. Compressed textures (png, jpg, ...)
// keep their container bytes in Data with Height == 0 and Width holding
// the byte count; uncompressed ones store BGRA texels.
type Texture struct {
	FormatHint string
	Width      uint32
	Height     uint32
	Data       []byte
}

func (t *Texture) Compressed() bool {
	return t.Height == 0
}

// ResolveEmbedded maps a material texture path of the form "*<index>"
// to the embedded texture it references.
func (s *Scene) ResolveEmbedded(path string) *Texture {
	if !strings.HasPrefix(path, "*") {
		return nil
	}
	idx, err := strconv.Atoi(path[1:])
	if err != nil || idx < 0 || idx >= len(s.Textures) {
		return nil
	}
	return s.Textures[idx]
}
