package status

import "testing"

func TestHandlerCancel(t *testing.T) {
	h := NewHandler("import model.fbx")
	if !h.Update(0.1, "read 1/10") {
		t.Error("Fresh handler should continue")
	}
	h.Cancel()
	if h.Update(0.2, "read 2/10") {
		t.Error("Cancelled handler should stop the operation")
	}
}
