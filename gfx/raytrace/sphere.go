package raytrace

import (
	"github.com/chewxy/math32"

	"prism/gfx/vec"
)

// Specular is an optional Phong exponent. The zero value disables the
// specular term.
type Specular struct {
	exp float32
	set bool
}

// Shiny returns a specular term with exponent exp.
func Shiny(exp float32) Specular { return Specular{exp: exp, set: true} }

func (s Specular) Exponent() (float32, bool) { return s.exp, s.set }

type Sphere struct {
	Center   vec.Vector3
	Radius   float32
	Color    vec.Color
	Specular Specular
	// Reflectivity blends the reflected color in: 0 is matte, 1 a mirror.
	Reflectivity float32
}

// IntersectRaySphere solves |O + tD - C| = r for t. Both roots are returned
// in (+sqrt, -sqrt) order; ok is false (and both roots -1) when the ray
// misses. D need not be normalized.
func IntersectRaySphere(o, d vec.Vector3, s *Sphere) (t1, t2 float32, ok bool) {
	co := o.Sub(s.Center)

	a := d.Dot(d)
	b := 2 * co.Dot(d)
	c := co.Dot(co) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return -1, -1, false
	}
	sq := math32.Sqrt(disc)
	t1 = (-b + sq) / (2 * a)
	t2 = (-b - sq) / (2 * a)
	return t1, t2, true
}
