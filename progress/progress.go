package progress

import (
	"fmt"
	"log"
	"sync"
)

// Handler receives unified progress updates during import/export.
// Update returns false to request cancellation of the running operation.
// Updates may arrive from threads owned by the native library, so
// implementations must tolerate cross-thread invocation.
type Handler interface {
	Update(percentage float32, message string) bool
}

// Func adapts a plain function to Handler.
type Func func(percentage float32, message string) bool

func (f Func) Update(percentage float32, message string) bool {
	return f(percentage, message)
}

// Phase identifies which native sub-phase produced an update.
type Phase int

const (
	// PhaseUpdate is a generic update carrying an already-unified percentage.
	PhaseUpdate Phase = iota
	PhaseRead
	PhasePostProcess
	PhaseWrite
)

// Normalize maps a native sub-phase step counter onto the unified
// percentage scale: reading covers [0,0.5] and post-processing [0.5,1.0]
// on import, writing covers [0,0.5] on export.
func Normalize(phase Phase, current, total int) (float32, string) {
	frac := float32(1.0)
	if total > 0 {
		frac = float32(current) / float32(total)
	} else if phase == PhaseRead {
		frac = 0
	}

	switch phase {
	case PhaseRead:
		return frac * 0.5, fmt.Sprintf("read %d/%d", current, total)
	case PhasePostProcess:
		return frac*0.5 + 0.5, fmt.Sprintf("post %d/%d", current, total)
	case PhaseWrite:
		return frac * 0.5, fmt.Sprintf("write %d/%d", current, total)
	default:
		return frac, ""
	}
}

// Print logs progress with the standard logger whenever the integer
// percentage changes.
type Print struct {
	mu   sync.Mutex
	last int
}

func NewPrint() *Print {
	return &Print{last: -1}
}

func (p *Print) Update(percentage float32, message string) bool {
	current := int(percentage * 100)

	p.mu.Lock()
	changed := current != p.last
	p.last = current
	p.mu.Unlock()

	if changed {
		if message != "" {
			log.Printf("[progress] %d%% %s", current, message)
		} else {
			log.Printf("[progress] %d%%", current)
		}
	}
	return true
}

// Serialized wraps a handler so concurrent updates from native threads
// never interleave. A cancellation, once requested, is sticky: every
// later poll keeps reporting it until the operation aborts.
type Serialized struct {
	mu        sync.Mutex
	handler   Handler
	cancelled bool
}

func NewSerialized(h Handler) *Serialized {
	return &Serialized{handler: h}
}

func (s *Serialized) Update(percentage float32, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return false
	}
	if !s.handler.Update(percentage, message) {
		s.cancelled = true
		return false
	}
	return true
}

// Cancelled reports whether the wrapped handler requested cancellation.
func (s *Serialized) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}
