package webutils

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestWriteFileHeaders(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
	}{
		{"model.glb", "model/gltf-binary"},
		{"model.gltf", "model/gltf+json"},
		{"summary.json", "application/json"},
		{"scene.fbx", "application/octet-stream"},
	}
	for _, test := range tests {
		w := httptest.NewRecorder()
		WriteFileHeaders(w, test.name)
		if got := w.Header().Get("Content-Type"); got != test.contentType {
			t.Errorf("%s: Content-Type = %q, want %q", test.name, got, test.contentType)
		}
		if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, test.name) {
			t.Errorf("%s: Content-Disposition = %q", test.name, cd)
		}
	}
}

func TestWriteJson(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJson(w, map[string]int{"meshes": 3})
	if w.Body.String() != `{"meshes":3}` {
		t.Errorf("Body = %q", w.Body.String())
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("import failed"))
	if w.Code != 500 {
		t.Errorf("Status = %d", w.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Bad error body %q: %v", w.Body.String(), err)
	}
	if body.Error != "import failed" {
		t.Errorf("Error = %q", body.Error)
	}
}
