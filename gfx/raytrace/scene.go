package raytrace

import (
	"github.com/chewxy/math32"

	"prism/gfx/vec"
)

// Scene is read-only while a frame is rendered.
type Scene struct {
	Spheres []Sphere
	Lights  []Light
}

// ClosestIntersection returns the sphere whose intersection along O + tD is
// nearest within [tMin, tMax]. Ties keep the sphere listed first.
func (s *Scene) ClosestIntersection(o, d vec.Vector3, tMin, tMax float32) (*Sphere, float32, bool) {
	var closest float32 = math32.MaxFloat32
	var hit *Sphere
	for i := range s.Spheres {
		sp := &s.Spheres[i]
		t1, t2, ok := IntersectRaySphere(o, d, sp)
		if !ok {
			continue
		}
		if t1 >= tMin && t1 <= tMax && t1 < closest {
			closest = t1
			hit = sp
		}
		if t2 >= tMin && t2 <= tMax && t2 < closest {
			closest = t2
			hit = sp
		}
	}
	if hit == nil {
		return nil, closest, false
	}
	return hit, closest, true
}
