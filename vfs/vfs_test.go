package vfs

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestMemFSReadBack(t *testing.T) {
	fs := NewMemFS()
	fs.AddFile("model.obj", []byte("v 0 0 0\n"))

	if !fs.Exists("model.obj") {
		t.Errorf("Exists(model.obj) = false")
	}
	if fs.Exists("missing.obj") {
		t.Errorf("Exists(missing.obj) = true")
	}

	f, err := fs.Open("model.obj", "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.Size() != 8 {
		t.Errorf("Size() = %d; expected 8", f.Size())
	}
	data, err := io.ReadAll(f)
	if err != nil || string(data) != "v 0 0 0\n" {
		t.Errorf("ReadAll = %q, %v", data, err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// second close is a no-op
	if err := f.Close(); err != nil {
		t.Errorf("Second Close: %v", err)
	}
}

func TestMemFSWrite(t *testing.T) {
	fs := NewMemFS()
	f, err := fs.Open("out.bin", "wb")
	if err != nil {
		t.Fatalf("Open wb: %v", err)
	}
	if _, err := f.Write([]byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := f.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if _, err := f.Write([]byte("XY")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	f.Close()

	data, err := ReadAll(fs, "out.bin")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "aXY" {
		t.Errorf("content = %q; expected aXY", data)
	}
}

func TestMemFSSeekTell(t *testing.T) {
	fs := NewMemFS()
	fs.AddFile("a", []byte("0123456789"))
	f, _ := fs.Open("a", "rb")
	defer f.Close()

	if _, err := f.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	pos, err := Tell(f)
	if err != nil || pos != 4 {
		t.Errorf("Tell = %d, %v; expected 4", pos, err)
	}
	if _, err := f.Seek(-2, io.SeekEnd); err != nil {
		t.Fatalf("Seek end: %v", err)
	}
	pos, _ = Tell(f)
	if pos != 8 {
		t.Errorf("Tell = %d; expected 8", pos)
	}
	if _, err := f.Seek(-100, io.SeekCurrent); err == nil {
		t.Errorf("Seek before start did not fail")
	}
}

func TestMemFSUpdateIsolatedUntilClose(t *testing.T) {
	fs := NewMemFS()
	fs.AddFile("model.obj", []byte("v 0 0 0\n"))

	w, err := fs.Open("model.obj", "r+b")
	if err != nil {
		t.Fatalf("Open r+b: %v", err)
	}
	if _, err := w.Write([]byte("XXXX")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// in-place overwrite must stay invisible to other handles until
	// the writer publishes it
	r, err := fs.Open("model.obj", "rb")
	if err != nil {
		t.Fatalf("Open rb: %v", err)
	}
	data, _ := io.ReadAll(r)
	if string(data) != "v 0 0 0\n" {
		t.Errorf("reader saw unflushed write: %q", data)
	}
	r.Close()

	if stored, _ := ReadAll(fs, "model.obj"); string(stored) != "v 0 0 0\n" {
		t.Errorf("stored file mutated before Close: %q", stored)
	}

	w.Close()
	if stored, _ := ReadAll(fs, "model.obj"); string(stored) != "XXXX0 0\n" {
		t.Errorf("content after Close = %q; expected XXXX0 0\\n", stored)
	}
}

func TestMemFSReadOnlyWrite(t *testing.T) {
	fs := NewMemFS()
	fs.AddFile("a", []byte("x"))
	f, _ := fs.Open("a", "rb")
	defer f.Close()
	if _, err := f.Write([]byte("y")); err == nil {
		t.Errorf("Write on read-only stream did not fail")
	}
}

func TestDirFS(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cube.obj"), []byte("v 1 1 1\n"), 0666); err != nil {
		t.Fatal(err)
	}

	fs := NewDirFS(dir)
	if !fs.Exists("cube.obj") {
		t.Errorf("Exists(cube.obj) = false")
	}
	if fs.Exists("nope.obj") {
		t.Errorf("Exists(nope.obj) = true")
	}

	f, err := fs.Open("cube.obj", "rb")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if f.Size() != 8 {
		t.Errorf("Size = %d; expected 8", f.Size())
	}
	f.Close()

	list, err := fs.List(".")
	if err != nil || len(list) != 1 || list[0] != "cube.obj" {
		t.Errorf("List = %v, %v", list, err)
	}

	if _, err := fs.Open("cube.obj", "q"); err == nil {
		t.Errorf("Open with bad mode did not fail")
	}
}
