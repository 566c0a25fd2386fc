package vfs

import (
	"io"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// MemFS keeps whole files in memory. Useful for assets unpacked from
// archives and for tests. Writes land back into the map on Close/Flush.
type MemFS struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = data
}

func (m *MemFS) FileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}

func (m *MemFS) Exists(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[name]
	return ok
}

func (m *MemFS) Open(name string, mode string) (File, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case strings.HasPrefix(mode, "r"):
		data, ok := m.files[name]
		if !ok {
			return nil, errors.Errorf("File not found: %q", name)
		}
		writable := strings.Contains(mode, "+")
		if writable {
			// copy so in-place writes stay invisible to other open
			// handles until Flush/Close publishes them
			data = append([]byte(nil), data...)
		}
		return &memFile{fs: m, name: name, data: data, writable: writable}, nil
	case strings.HasPrefix(mode, "w"):
		return &memFile{fs: m, name: name, writable: true}, nil
	case strings.HasPrefix(mode, "a"):
		f := &memFile{fs: m, name: name, writable: true}
		f.data = append(f.data, m.files[name]...)
		f.pos = int64(len(f.data))
		return f, nil
	default:
		return nil, errors.Errorf("Unsupported open mode %q", mode)
	}
}

func (m *MemFS) List(dir string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, 0, len(m.files))
	for name := range m.files {
		if dir == "" || dir == "." || path.Dir(name) == dir {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

type memFile struct {
	mu       sync.Mutex
	fs       *MemFS
	name     string
	data     []byte
	pos      int64
	writable bool
	closed   bool
}

func (f *memFile) Read(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, errors.New("Read on closed file")
	}
	if f.pos >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return 0, errors.New("Write on closed file")
	}
	if !f.writable {
		return 0, errors.New("File opened read-only")
	}
	end := f.pos + int64(len(p))
	if end > int64(len(f.data)) {
		grown := make([]byte, end)
		copy(grown, f.data)
		f.data = grown
	}
	copy(f.data[f.pos:end], p)
	f.pos = end
	return len(p), nil
}

func (f *memFile) Seek(off int64, whence int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var target int64
	switch whence {
	case io.SeekStart:
		target = off
	case io.SeekCurrent:
		target = f.pos + off
	case io.SeekEnd:
		target = int64(len(f.data)) + off
	default:
		return 0, errors.Errorf("Invalid seek whence %d", whence)
	}
	if target < 0 {
		return 0, errors.Errorf("Seek before start of file")
	}
	f.pos = target
	return target, nil
}

func (f *memFile) Size() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.data))
}

func (f *memFile) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writable && !f.closed {
		f.fs.AddFile(f.name, append([]byte(nil), f.data...))
	}
	return nil
}

func (f *memFile) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	writable := f.writable
	data := append([]byte(nil), f.data...)
	f.mu.Unlock()

	if writable {
		f.fs.AddFile(f.name, data)
	}
	return nil
}
