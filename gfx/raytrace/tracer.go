// Package raytrace is a small recursive Whitted-style ray tracer over spheres
// with ambient, point and directional lights.
package raytrace

import (
	"github.com/chewxy/math32"

	"prism/gfx/canvas"
	"prism/gfx/vec"
)

// Shading selects how much of the lighting model a Tracer evaluates.
type Shading uint8

const (
	// ShadingShadowed is the full model: diffuse, specular and shadow rays.
	ShadingShadowed Shading = iota
	// ShadingLit skips shadow rays.
	ShadingLit
	// ShadingFlat returns each sphere's color unlit.
	ShadingFlat
)

const shadowEpsilon = 0.001

// Background is the color of rays that hit nothing.
var Background = vec.RGBA(255, 255, 255, 255)

type Tracer struct {
	Scene      *Scene
	Shading    Shading
	Background vec.Color
}

func NewTracer(scene *Scene) *Tracer {
	return &Tracer{Scene: scene, Background: Background}
}

// ComputeLighting returns the light intensity at p with normal n seen from
// direction v. The result is not clamped.
func (t *Tracer) ComputeLighting(p, n, v vec.Vector3, spec Specular) float32 {
	var i float32
	for _, light := range t.Scene.Lights {
		if light.Kind == LightAmbient {
			i += light.Intensity
			continue
		}

		var l vec.Vector3
		var tMax float32
		if light.Kind == LightPoint {
			l = light.Position.Sub(p)
			tMax = 1
		} else {
			l = light.Direction
			tMax = math32.Inf(1)
		}

		if t.Shading == ShadingShadowed {
			if _, _, blocked := t.Scene.ClosestIntersection(p, l, shadowEpsilon, tMax); blocked {
				continue
			}
		}

		if nDotL := n.Dot(l); nDotL > 0 {
			i += light.Intensity * nDotL / (n.Length() * l.Length())
		}

		if exp, ok := spec.Exponent(); ok {
			r := ReflectRay(l, n)
			if rDotV := r.Dot(v); rDotV > 0 {
				i += light.Intensity * math32.Pow(rDotV/(r.Length()*v.Length()), exp)
			}
		}
	}
	return i
}

// TraceRay returns the color seen along O + tD for t in [tMin, tMax],
// following at most depth reflections.
func (t *Tracer) TraceRay(o, d vec.Vector3, tMin, tMax float32, depth int) vec.Color {
	sp, closest, ok := t.Scene.ClosestIntersection(o, d, tMin, tMax)
	if !ok {
		return t.Background
	}

	p := o.Add(d.Scale(closest))
	n := p.Sub(sp.Center).Normalize()

	local := sp.Color
	if t.Shading != ShadingFlat {
		local = sp.Color.Scale(clamp01(t.ComputeLighting(p, n, d.Neg(), sp.Specular)))
	}

	r := sp.Reflectivity
	if depth <= 0 || r <= 0 {
		return local
	}

	reflected := t.TraceRay(p, ReflectRay(d.Neg(), n), shadowEpsilon, math32.Inf(1), depth-1)
	return local.Scale(1 - r).Add(reflected.Scale(r))
}

// Render traces one ray per canvas pixel from origin and plots the result.
func (t *Tracer) Render(c *canvas.Canvas, origin vec.Vector3, tMin, tMax float32, depth int) {
	w, h := c.Width(), c.Height()
	for x := -w / 2; x <= w/2; x++ {
		for y := -h / 2; y <= h/2; y++ {
			d := c.ToViewport(x, y)
			c.PutPixel(x, y, t.TraceRay(origin, d, tMin, tMax, depth))
		}
	}
}

// ReflectRay mirrors r about n: 2n(n·r) - r.
func ReflectRay(r, n vec.Vector3) vec.Vector3 {
	return n.Scale(2 * n.Dot(r)).Sub(r)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
