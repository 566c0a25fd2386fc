package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Light source types (aiLightSourceType values).
const (
	LightUndefined = iota
	LightDirectional
	LightPoint
	LightSpot
	LightAmbient
	LightArea
)

type Light struct {
	Name      string
	Type      int
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	AttenuationConstant  float32
	AttenuationLinear    float32
	AttenuationQuadratic float32

	ColorDiffuse  mgl32.Vec3
	ColorSpecular mgl32.Vec3
	ColorAmbient  mgl32.Vec3

	AngleInnerCone float32
	AngleOuterCone float32
}

type Camera struct {
	Name       string
	Position   mgl32.Vec3
	LookAt     mgl32.Vec3
	Up         mgl32.Vec3
	FOV        float32 // horizontal field of view in radians
	ClipNear   float32
	ClipFar    float32
	Aspect     float32
	OrthoWidth float32 // 0 for perspective cameras
}
