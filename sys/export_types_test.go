package sys

import "testing"

func TestBlobFiles(t *testing.T) {
	chain := &Blob{
		Data: []byte("primary"),
		Next: &Blob{Name: "scene.bin", Data: []byte("buffer")},
	}
	files := chain.Files()
	if len(files) != 2 {
		t.Fatalf("Files len = %d", len(files))
	}
	if files[0].Name != "" || files[1].Name != "scene.bin" {
		t.Errorf("Names = %q, %q", files[0].Name, files[1].Name)
	}
	if (*Blob)(nil).Files() != nil {
		t.Error("nil chain should flatten to nil")
	}
}

func TestPropertyConstructors(t *testing.T) {
	if p := IntProperty("X", 7); p.Kind != PropertyInteger || p.Int != 7 {
		t.Errorf("IntProperty = %+v", p)
	}
	if p := BoolProperty("X", true); p.Kind != PropertyBool || p.Int != 1 {
		t.Errorf("BoolProperty(true) = %+v", p)
	}
	if p := BoolProperty("X", false); p.Int != 0 {
		t.Errorf("BoolProperty(false) = %+v", p)
	}
	if p := StringProperty("X", "v"); p.Kind != PropertyString || p.String != "v" {
		t.Errorf("StringProperty = %+v", p)
	}
}
