// Package exporter writes a previously imported scene back out through
// the native library's exporters. When the module is built with the
// noexport tag every operation returns sys.ErrExportDisabled.
package exporter

import (
	"github.com/pkg/errors"

	"github.com/Latias94/asset-importer/sys"
	"github.com/Latias94/asset-importer/vfs"
)

var (
	ErrEmptyFormat = errors.New("exporter: format id is empty")
	ErrEmptyPath   = errors.New("exporter: destination path is empty")
	ErrNilScene    = errors.New("exporter: scene is nil")
)

type Exporter struct {
	preprocessing uint32
	props         []sys.Property
	fs            vfs.FileSystem
}

func New() *Exporter {
	return &Exporter{}
}

// SetPreProcessing sets extra post-process steps applied to a copy of
// the scene before it is written.
func (exp *Exporter) SetPreProcessing(flags uint32) *Exporter {
	exp.preprocessing = flags
	return exp
}

// AddProperty appends an export config property (e.g. glTF embedding
// options).
func (exp *Exporter) AddProperty(p sys.Property) *Exporter {
	exp.props = append(exp.props, p)
	return exp
}

// SetFileSystem routes the written file(s) through fs instead of the
// host filesystem.
func (exp *Exporter) SetFileSystem(fs vfs.FileSystem) *Exporter {
	exp.fs = fs
	return exp
}

// ExportFile writes sc to path using the exporter named by formatID
// (see Formats).
func (exp *Exporter) ExportFile(sc *sys.Scene, formatID, path string) error {
	if sc == nil {
		return ErrNilScene
	}
	if formatID == "" {
		return ErrEmptyFormat
	}
	if path == "" {
		return ErrEmptyPath
	}
	if err := sys.ExportFile(sc, formatID, path, exp.preprocessing, exp.fs, exp.props); err != nil {
		if err == sys.ErrExportDisabled {
			return err
		}
		return errors.Wrapf(err, "export %q as %s", path, formatID)
	}
	return nil
}

// ExportBlob serializes sc into memory. Multi-file formats return a
// chain; see sys.Blob.
func (exp *Exporter) ExportBlob(sc *sys.Scene, formatID string) (*sys.Blob, error) {
	if sc == nil {
		return nil, ErrNilScene
	}
	if formatID == "" {
		return nil, ErrEmptyFormat
	}
	blob, err := sys.ExportBlob(sc, formatID, exp.preprocessing, exp.props)
	if err != nil {
		if err == sys.ErrExportDisabled {
			return nil, err
		}
		return nil, errors.Wrapf(err, "export blob as %s", formatID)
	}
	return blob, nil
}

// Formats lists the exporters compiled into the linked library; empty
// under noexport builds.
func Formats() []sys.ExportFormat {
	return sys.ExportFormats()
}

// FormatSupported reports whether an exporter with the given id exists.
func FormatSupported(formatID string) bool {
	for _, f := range Formats() {
		if f.ID == formatID {
			return true
		}
	}
	return false
}
