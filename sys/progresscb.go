package sys

/*
#include "bridge.h"
*/
import "C"

import (
	"runtime/cgo"

	"github.com/Latias94/asset-importer/progress"
)

// abGoProgress is the single trampoline all native progress shapes
// funnel through. Phase step counters are normalized onto the unified
// [0,1] scale here; generic updates already carry a percentage.
// Returning false asks the native operation to abort.
//
//export abGoProgress
func abGoProgress(handle C.uintptr_t, phase, current, total C.int, percentage C.float) C.bool {
	if handle == 0 {
		return true
	}
	handler, ok := cgo.Handle(handle).Value().(progress.Handler)
	if !ok {
		return true
	}

	var pct float32
	var msg string
	if progress.Phase(phase) == progress.PhaseUpdate {
		pct = float32(percentage)
		if pct < 0 {
			pct = 0
		}
	} else {
		pct, msg = progress.Normalize(progress.Phase(phase), int(current), int(total))
	}
	return C.bool(handler.Update(pct, msg))
}
