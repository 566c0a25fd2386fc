package importer

import "testing"

// Validation failures must surface before the native library is
// touched, so these run without a linked libassimp doing any work.

func TestImportFileEmptyPath(t *testing.T) {
	if _, err := New().ImportFile(""); err != ErrEmptyPath {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
}

func TestImportMemoryEmptyBuffer(t *testing.T) {
	if _, err := New().ImportMemory(nil, ""); err != ErrEmptyBuffer {
		t.Errorf("Expected ErrEmptyBuffer for nil buffer, got %v", err)
	}
	if _, err := New().ImportMemory([]byte{}, "obj"); err != ErrEmptyBuffer {
		t.Errorf("Expected ErrEmptyBuffer for zero-length buffer, got %v", err)
	}
}

func TestOptionSettersChain(t *testing.T) {
	imp := New().
		SetPostProcess(4).
		SetIntProperty(KeyPPLBWMaxWeights, 4).
		SetFloatProperty(KeyPPGlobalScale, 0.01).
		SetStringProperty(KeyPPOGExclusions, "root").
		SetBoolProperty(KeyFBXPreservePivots, false)

	if imp.flags != 4 {
		t.Errorf("Flags not retained: %v", imp.flags)
	}
	if len(imp.props) != 4 {
		t.Errorf("Expected 4 properties, got %d", len(imp.props))
	}
	for i, p := range imp.props {
		if p.Name == "" {
			t.Errorf("Property %d lost its name", i)
		}
	}
}
