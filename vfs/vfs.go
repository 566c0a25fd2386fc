package vfs

import (
	"io"
)

// FileSystem supplies file bytes to the importer without touching real
// storage directly. Implementations must be safe for concurrent use:
// the native library may probe several files at once.
type FileSystem interface {
	// Exists reports whether path can be opened for reading.
	Exists(path string) bool
	// Open opens path with a C-style mode string ("rb", "wb", "ab", "r+b").
	Open(path string, mode string) (File, error)
}

// File is a single open stream. Operations on one File are serialized by
// the bridge, different Files are independent.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	Size() int64
	Flush() error
	Close() error
}

// Lister is implemented by filesystems that can enumerate entries,
// used by the web viewer and tools. Not required by the import bridge.
type Lister interface {
	List(dir string) ([]string, error)
}

// Tell returns the current stream position.
func Tell(f File) (int64, error) {
	return f.Seek(0, io.SeekCurrent)
}

// ReadAll reads the whole file through the FileSystem interface.
func ReadAll(fs FileSystem, path string) ([]byte, error) {
	f, err := fs.Open(path, "rb")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
