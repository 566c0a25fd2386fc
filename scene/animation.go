package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Animation struct {
	Name           string
	Duration       float64 // in ticks
	TicksPerSecond float64
	Channels       []*NodeAnim
}

// DurationSeconds converts the tick-based duration, assuming 25 ticks
// per second when the format did not specify a rate.
func (a *Animation) DurationSeconds() float64 {
	tps := a.TicksPerSecond
	if tps == 0 {
		tps = 25.0
	}
	return a.Duration / tps
}

// NodeAnim animates a single node with independent position, rotation
// and scaling key tracks.
type NodeAnim struct {
	NodeName     string
	PositionKeys []VectorKey
	RotationKeys []QuatKey
	ScalingKeys  []VectorKey
}

type VectorKey struct {
	Time  float64
	Value mgl32.Vec3
}

type QuatKey struct {
	Time  float64
	Value mgl32.Quat
}
