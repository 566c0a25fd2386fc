package sys

import (
	"testing"

	"github.com/Latias94/asset-importer/vfs"
)

func openStream(t *testing.T, data []byte) *stream {
	t.Helper()
	fs := vfs.NewMemFS()
	fs.AddFile("asset.bin", data)
	f, err := fs.Open("asset.bin", "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return &stream{f: f}
}

func TestStreamReadFills(t *testing.T) {
	s := openStream(t, []byte("0123456789"))

	buf := make([]byte, 4)
	if n := s.read(buf); n != 4 || string(buf) != "0123" {
		t.Errorf("read = %d %q", n, buf)
	}
	// short read at end of stream
	big := make([]byte, 16)
	if n := s.read(big); n != 6 || string(big[:n]) != "456789" {
		t.Errorf("read = %d %q", n, big[:n])
	}
	if n := s.read(buf); n != 0 {
		t.Errorf("read past end = %d", n)
	}
}

func TestStreamSeekOrigins(t *testing.T) {
	s := openStream(t, []byte("0123456789"))

	if !s.seek(2, 0) || s.tell() != 2 {
		t.Errorf("seek SET: tell = %d", s.tell())
	}
	if !s.seek(3, 1) || s.tell() != 5 {
		t.Errorf("seek CUR: tell = %d", s.tell())
	}
	// END origin counts back from the end
	if !s.seek(3, 2) || s.tell() != 7 {
		t.Errorf("seek END: tell = %d", s.tell())
	}
	if s.seek(0, 99) {
		t.Error("seek with bad origin succeeded")
	}
	if s.size() != 10 {
		t.Errorf("size = %d", s.size())
	}
}

func TestStreamCloseOnce(t *testing.T) {
	s := openStream(t, []byte("abc"))

	s.close()
	s.close() // second close must be a no-op

	if n := s.read(make([]byte, 2)); n != 0 {
		t.Errorf("read after close = %d", n)
	}
	if s.seek(0, 0) {
		t.Error("seek after close succeeded")
	}
	if s.size() != 0 || s.tell() != 0 {
		t.Error("size/tell after close not zero")
	}
}
