// Package importer is the high-level reading surface: an Importer
// collects post-process flags, config properties, an optional virtual
// filesystem and an optional progress handler, validates the request
// and hands it to the sys bridge.
package importer

import (
	"math"

	"github.com/pkg/errors"

	"github.com/Latias94/asset-importer/progress"
	"github.com/Latias94/asset-importer/scene"
	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
)

var (
	ErrEmptyPath   = errors.New("importer: path is empty")
	ErrEmptyBuffer = errors.New("importer: memory buffer is empty")
	ErrBufferSize  = errors.New("importer: memory buffer exceeds 4 GiB")
)

type Importer struct {
	flags   uint32
	props   []sys.Property
	fs      vfs.FileSystem
	handler progress.Handler
}

func New() *Importer {
	return &Importer{}
}

// SetPostProcess replaces the post-process step mask (sys.Process*
// flags ORed together).
func (imp *Importer) SetPostProcess(flags uint32) *Importer {
	imp.flags = flags
	return imp
}

// AddProperty appends a config property applied to the transient native
// importer before reading. Later properties with the same name win.
func (imp *Importer) AddProperty(p sys.Property) *Importer {
	imp.props = append(imp.props, p)
	return imp
}

func (imp *Importer) SetIntProperty(name string, value int32) *Importer {
	return imp.AddProperty(sys.IntProperty(name, value))
}

func (imp *Importer) SetFloatProperty(name string, value float32) *Importer {
	return imp.AddProperty(sys.FloatProperty(name, value))
}

func (imp *Importer) SetStringProperty(name, value string) *Importer {
	return imp.AddProperty(sys.StringProperty(name, value))
}

func (imp *Importer) SetBoolProperty(name string, value bool) *Importer {
	return imp.AddProperty(sys.BoolProperty(name, value))
}

// SetFileSystem routes all file access, the named asset and everything
// it references, through fs instead of the host filesystem.
func (imp *Importer) SetFileSystem(fs vfs.FileSystem) *Importer {
	imp.fs = fs
	return imp
}

// SetProgressHandler installs h for the next import. Updates may arrive
// from native threads; returning false cancels the operation.
func (imp *Importer) SetProgressHandler(h progress.Handler) *Importer {
	imp.handler = h
	return imp
}

// ImportFile reads the asset at path. The returned handle owns a native
// scene copy and must be released with Free.
func (imp *Importer) ImportFile(path string) (*sys.Scene, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	sc, err := sys.ImportFile(path, imp.flags, imp.fs, imp.props, imp.handler)
	if err != nil {
		return nil, errors.Wrapf(err, "import %q", path)
	}
	return sc, nil
}

// ImportMemory reads an asset from an in-memory buffer. hint optionally
// names the format by file extension ("obj", "glb") for formats that
// cannot be sniffed from content.
func (imp *Importer) ImportMemory(data []byte, hint string) (*sys.Scene, error) {
	if len(data) == 0 {
		return nil, ErrEmptyBuffer
	}
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrBufferSize
	}
	sc, err := sys.ImportMemory(data, imp.flags, hint, imp.props, imp.handler)
	if err != nil {
		return nil, errors.Wrap(err, "import from memory")
	}
	return sc, nil
}

// DecodeFile imports path and decodes straight into the Go scene
// model, releasing the native handle before returning.
func (imp *Importer) DecodeFile(path string) (*scene.Scene, error) {
	sc, err := imp.ImportFile(path)
	if err != nil {
		return nil, err
	}
	defer sc.Free()
	return sc.Decode()
}

// DecodeMemory is DecodeFile for an in-memory buffer.
func (imp *Importer) DecodeMemory(data []byte, hint string) (*scene.Scene, error) {
	sc, err := imp.ImportMemory(data, hint)
	if err != nil {
		return nil, err
	}
	defer sc.Free()
	return sc.Decode()
}
