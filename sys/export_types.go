package sys

import "github.com/pkg/errors"

// ErrExportDisabled is returned from every export entry point when the
// module is built with the noexport tag (or the linked library was
// built without export support).
var ErrExportDisabled = errors.New("export support disabled in this build")

// Blob is one link of an in-memory export result. Multi-file formats
// (gltf + bin, obj + mtl) chain the secondary outputs through Next; the
// head carries the primary file and an empty Name.
type Blob struct {
	Name string
	Data []byte
	Next *Blob
}

// Files flattens the chain in order.
func (b *Blob) Files() []*Blob {
	var out []*Blob
	for ; b != nil; b = b.Next {
		out = append(out, b)
	}
	return out
}

// ExportFormat describes one exporter built into the linked library.
type ExportFormat struct {
	ID          string
	Description string
	Extension   string
}

func errSceneFreed() error {
	return errors.New("scene already freed")
}
