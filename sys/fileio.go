package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"io"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/Latias94/asset-importer/vfs"
)

// stream pairs an open vfs.File with the bookkeeping the bridge needs:
// a mutex so native threads cannot interleave operations on one handle,
// and a close-once flag. Different streams are independent.
type stream struct {
	mu     sync.Mutex
	f      vfs.File
	closed bool
}

func (s *stream) read(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	// fread semantics: fill as much of the buffer as the stream can
	total := 0
	for total < len(p) {
		n, err := s.f.Read(p[total:])
		total += n
		if err != nil || n == 0 {
			break
		}
	}
	return total
}

func (s *stream) write(p []byte) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	n, err := s.f.Write(p)
	if err != nil {
		return 0
	}
	return n
}

func (s *stream) tell() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	pos, err := vfs.Tell(s.f)
	if err != nil {
		return 0
	}
	return pos
}

func (s *stream) size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0
	}
	return s.f.Size()
}

func (s *stream) seek(offset int64, origin int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}

	var err error
	switch origin {
	case 0: // aiOrigin_SET
		_, err = s.f.Seek(offset, io.SeekStart)
	case 1: // aiOrigin_CUR
		_, err = s.f.Seek(offset, io.SeekCurrent)
	case 2: // aiOrigin_END, offset counts back from the end
		_, err = s.f.Seek(s.f.Size()-offset, io.SeekStart)
	default:
		return false
	}
	return err == nil
}

func (s *stream) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.f.Flush()
	}
}

// close releases the underlying file exactly once; later calls no-op.
func (s *stream) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.f.Close()
}

//export abGoFileOpen
func abGoFileOpen(fsHandle C.uintptr_t, path, mode *C.char) C.uintptr_t {
	fs, ok := cgo.Handle(fsHandle).Value().(vfs.FileSystem)
	if !ok || path == nil || mode == nil {
		return 0
	}
	f, err := fs.Open(C.GoString(path), C.GoString(mode))
	if err != nil || f == nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(&stream{f: f}))
}

//export abGoFileClose
func abGoFileClose(fsHandle, streamHandle C.uintptr_t) {
	if streamHandle == 0 {
		return
	}
	h := cgo.Handle(streamHandle)
	if s, ok := h.Value().(*stream); ok {
		s.close()
	}
	h.Delete()
}

//export abGoStreamRead
func abGoStreamRead(streamHandle C.uintptr_t, buffer *C.char, size, count C.size_t) C.size_t {
	s := lookupStream(streamHandle)
	if s == nil || buffer == nil || size == 0 || count == 0 {
		return 0
	}
	total := int(size) * int(count)
	n := s.read(unsafe.Slice((*byte)(unsafe.Pointer(buffer)), total))
	return C.size_t(n) / size
}

//export abGoStreamWrite
func abGoStreamWrite(streamHandle C.uintptr_t, buffer *C.char, size, count C.size_t) C.size_t {
	s := lookupStream(streamHandle)
	if s == nil || buffer == nil || size == 0 || count == 0 {
		return 0
	}
	total := int(size) * int(count)
	n := s.write(unsafe.Slice((*byte)(unsafe.Pointer(buffer)), total))
	return C.size_t(n) / size
}

//export abGoStreamTell
func abGoStreamTell(streamHandle C.uintptr_t) C.size_t {
	if s := lookupStream(streamHandle); s != nil {
		return C.size_t(s.tell())
	}
	return 0
}

//export abGoStreamSize
func abGoStreamSize(streamHandle C.uintptr_t) C.size_t {
	if s := lookupStream(streamHandle); s != nil {
		return C.size_t(s.size())
	}
	return 0
}

//export abGoStreamSeek
func abGoStreamSeek(streamHandle C.uintptr_t, offset C.size_t, origin C.int) C.int {
	if s := lookupStream(streamHandle); s != nil && s.seek(int64(offset), int(origin)) {
		return 0
	}
	return -1
}

//export abGoStreamFlush
func abGoStreamFlush(streamHandle C.uintptr_t) {
	if s := lookupStream(streamHandle); s != nil {
		s.flush()
	}
}

func lookupStream(h C.uintptr_t) *stream {
	if h == 0 {
		return nil
	}
	s, ok := cgo.Handle(h).Value().(*stream)
	if !ok {
		return nil
	}
	return s
}
