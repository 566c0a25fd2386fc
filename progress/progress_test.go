package progress

import (
	"testing"
)

var normalizeTests = []struct {
	phase   Phase
	current int
	total   int
	out     float32
	msg     string
}{
	{PhaseRead, 0, 10, 0.0, "read 0/10"},
	{PhaseRead, 5, 10, 0.25, "read 5/10"},
	{PhaseRead, 10, 10, 0.5, "read 10/10"},
	{PhaseRead, 0, 0, 0.0, "read 0/0"},
	{PhasePostProcess, 0, 4, 0.5, "post 0/4"},
	{PhasePostProcess, 2, 4, 0.75, "post 2/4"},
	{PhasePostProcess, 4, 4, 1.0, "post 4/4"},
	{PhasePostProcess, 1, 0, 1.0, "post 1/0"},
	{PhaseWrite, 1, 2, 0.25, "write 1/2"},
	{PhaseWrite, 2, 2, 0.5, "write 2/2"},
}

func TestNormalize(t *testing.T) {
	for _, test := range normalizeTests {
		pct, msg := Normalize(test.phase, test.current, test.total)
		if pct != test.out || msg != test.msg {
			t.Errorf("Normalize(%d,%d,%d)=(%v,%q); expected (%v,%q)",
				test.phase, test.current, test.total, pct, msg, test.out, test.msg)
		}
	}
}

func TestNormalizePhaseRanges(t *testing.T) {
	for current := 0; current <= 20; current++ {
		if pct, _ := Normalize(PhaseRead, current, 20); pct < 0 || pct > 0.5 {
			t.Errorf("read phase pct %v out of [0,0.5]", pct)
		}
		if pct, _ := Normalize(PhasePostProcess, current, 20); pct < 0.5 || pct > 1.0 {
			t.Errorf("post phase pct %v out of [0.5,1.0]", pct)
		}
		if pct, _ := Normalize(PhaseWrite, current, 20); pct < 0 || pct > 0.5 {
			t.Errorf("write phase pct %v out of [0,0.5]", pct)
		}
	}
}

func TestNormalizeMonotonicWithinPhase(t *testing.T) {
	last := float32(-1)
	for current := 0; current <= 50; current++ {
		pct, _ := Normalize(PhaseRead, current, 50)
		if pct < last {
			t.Fatalf("read phase regressed: %v after %v", pct, last)
		}
		last = pct
	}
}

func TestSerializedStickyCancel(t *testing.T) {
	calls := 0
	s := NewSerialized(Func(func(pct float32, msg string) bool {
		calls++
		return pct < 0.5
	}))

	if !s.Update(0.1, "") {
		t.Fatalf("early update reported cancel")
	}
	if s.Update(0.7, "") {
		t.Fatalf("update past threshold did not cancel")
	}
	if !s.Cancelled() {
		t.Fatalf("Cancelled() = false after cancel")
	}
	// handler is not consulted again after cancellation
	if s.Update(0.1, "") {
		t.Fatalf("update after cancel reported continue")
	}
	if calls != 2 {
		t.Errorf("handler called %d times; expected 2", calls)
	}
}

func TestPrintAlwaysContinues(t *testing.T) {
	p := NewPrint()
	for i := 0; i <= 10; i++ {
		if !p.Update(float32(i)/10, "step") {
			t.Fatalf("Print requested cancel")
		}
	}
}
