package vfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DirFS exposes a host directory as a FileSystem. All paths are resolved
// relative to the root, absolute paths are reused as-is so the native
// library can follow references next to the primary asset.
type DirFS struct {
	root string
}

func NewDirFS(root string) *DirFS {
	return &DirFS{root: root}
}

func (d *DirFS) Root() string {
	return d.root
}

func (d *DirFS) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *DirFS) Exists(path string) bool {
	s, err := os.Stat(d.resolve(path))
	return err == nil && !s.IsDir()
}

func (d *DirFS) Open(path string, mode string) (File, error) {
	flags, err := modeFlags(mode)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(d.resolve(path), flags, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open %q", path)
	}
	return &osFile{f: f}, nil
}

func (d *DirFS) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(d.resolve(dir))
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to list %q", dir)
	}
	result := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			result = append(result, e.Name())
		}
	}
	return result, nil
}

// modeFlags maps a C stdio mode string onto os.OpenFile flags.
func modeFlags(mode string) (int, error) {
	plus := strings.Contains(mode, "+")
	switch {
	case strings.HasPrefix(mode, "r"):
		if plus {
			return os.O_RDWR, nil
		}
		return os.O_RDONLY, nil
	case strings.HasPrefix(mode, "w"):
		if plus {
			return os.O_RDWR | os.O_CREATE | os.O_TRUNC, nil
		}
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case strings.HasPrefix(mode, "a"):
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	default:
		return 0, errors.Errorf("Unsupported open mode %q", mode)
	}
}

type osFile struct {
	f *os.File
}

func (o *osFile) Read(p []byte) (int, error)                { return o.f.Read(p) }
func (o *osFile) Write(p []byte) (int, error)               { return o.f.Write(p) }
func (o *osFile) Seek(off int64, whence int) (int64, error) { return o.f.Seek(off, whence) }
func (o *osFile) Flush() error                              { return o.f.Sync() }
func (o *osFile) Close() error                              { return o.f.Close() }

func (o *osFile) Size() int64 {
	s, err := o.f.Stat()
	if err != nil {
		return 0
	}
	return s.Size()
}
