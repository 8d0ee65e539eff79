package raytrace

import "prism/gfx/vec"

type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightPoint
	LightDirectional
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightPoint:
		return "point"
	case LightDirectional:
		return "directional"
	}
	return "unknown"
}

// Light is a tagged light source. Position is used by point lights,
// Direction by directional lights; ambient lights only carry Intensity.
type Light struct {
	Kind      LightKind
	Intensity float32
	Position  vec.Vector3
	Direction vec.Vector3
}

func Ambient(intensity float32) Light {
	return Light{Kind: LightAmbient, Intensity: intensity}
}

func Point(intensity float32, pos vec.Vector3) Light {
	return Light{Kind: LightPoint, Intensity: intensity, Position: pos}
}

// Directional lights shine from dir (the vector points toward the light).
func Directional(intensity float32, dir vec.Vector3) Light {
	return Light{Kind: LightDirectional, Intensity: intensity, Direction: dir}
}
