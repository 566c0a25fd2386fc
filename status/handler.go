package status

import "sync/atomic"

// Handler publishes import progress to the broadcast hub. It satisfies
// progress.Handler; Cancel aborts the operation it is attached to on
// its next progress poll.
type Handler struct {
	label     string
	cancelled int32
}

func NewHandler(label string) *Handler {
	return &Handler{label: label}
}

func (h *Handler) Update(percentage float32, message string) bool {
	if message == "" {
		Progress(percentage, "%s", h.label)
	} else {
		Progress(percentage, "%s: %s", h.label, message)
	}
	return atomic.LoadInt32(&h.cancelled) == 0
}

func (h *Handler) Cancel() {
	atomic.StoreInt32(&h.cancelled, 1)
}
