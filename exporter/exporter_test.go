package exporter

import (
	"testing"

	"github.com/Latias94/asset-importer/sys"
)

func TestExportValidation(t *testing.T) {
	exp := New()

	if err := exp.ExportFile(nil, "obj", "out.obj"); err != ErrNilScene {
		t.Errorf("Expected ErrNilScene, got %v", err)
	}
	if _, err := exp.ExportBlob(nil, "obj"); err != ErrNilScene {
		t.Errorf("Expected ErrNilScene, got %v", err)
	}

	sc := &sys.Scene{}
	if err := exp.ExportFile(sc, "", "out.obj"); err != ErrEmptyFormat {
		t.Errorf("Expected ErrEmptyFormat, got %v", err)
	}
	if err := exp.ExportFile(sc, "obj", ""); err != ErrEmptyPath {
		t.Errorf("Expected ErrEmptyPath, got %v", err)
	}
	if _, err := exp.ExportBlob(sc, ""); err != ErrEmptyFormat {
		t.Errorf("Expected ErrEmptyFormat, got %v", err)
	}
}

func TestFormatSupportedUnknown(t *testing.T) {
	if FormatSupported("definitely-not-a-format") {
		t.Error("Unknown format id reported as supported")
	}
}
