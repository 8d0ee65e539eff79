// Package spheres renders the three-sphere scene at increasing levels of
// realism.
package spheres

import (
	"prism/gfx/canvas"
	"prism/gfx/raytrace"
	"prism/gfx/vec"
)

type Variant uint8

const (
	// Full has lighting, shadows and one reflection bounce.
	Full Variant = iota
	// Lit has diffuse and specular lighting without shadows.
	Lit
	// Flat colors each sphere with its own color.
	Flat
)

type Demo struct {
	variant Variant
}

func New(v Variant) *Demo { return &Demo{variant: v} }

func (d *Demo) Name() string {
	switch d.variant {
	case Lit:
		return "spheres-lit"
	case Flat:
		return "spheres-flat"
	}
	return "spheres"
}

func (d *Demo) Title() string {
	switch d.variant {
	case Lit:
		return "Spheres (lit)"
	case Flat:
		return "Spheres (flat)"
	}
	return "Spheres"
}

func (d *Demo) Start(c *canvas.Canvas) {
	c.Clear(raytrace.Background)
}

// Step renders the whole frame at once.
func (d *Demo) Step(c *canvas.Canvas) bool {
	tr := d.Tracer()
	tMax := float32(1e6)
	depth := 1
	if d.variant != Full {
		depth = 0
	}
	tr.Render(c, vec.V3(0, 0, 0), 1, tMax, depth)
	return true
}

// Tracer builds the variant's scene and tracer.
func (d *Demo) Tracer() *raytrace.Tracer {
	tr := raytrace.NewTracer(Scene(d.variant))
	switch d.variant {
	case Flat:
		tr.Shading = raytrace.ShadingFlat
	case Lit:
		tr.Shading = raytrace.ShadingLit
	default:
		tr.Shading = raytrace.ShadingShadowed
	}
	return tr
}

// Scene returns a fresh copy of the variant's scene.
func Scene(v Variant) *raytrace.Scene {
	red := raytrace.Sphere{Center: vec.V3(0, -1, 3), Radius: 1, Color: vec.RGB(255, 0, 0)}
	blue := raytrace.Sphere{Center: vec.V3(2, 0, 4), Radius: 1, Color: vec.RGB(0, 0, 255)}
	green := raytrace.Sphere{Center: vec.V3(-2, 0, 4), Radius: 1, Color: vec.RGB(0, 255, 0)}
	if v == Flat {
		return &raytrace.Scene{Spheres: []raytrace.Sphere{red, blue, green}}
	}

	ground := raytrace.Sphere{Center: vec.V3(0, -5001, 0), Radius: 5000, Color: vec.RGB(255, 255, 0)}
	red.Specular = raytrace.Shiny(500)
	blue.Specular = raytrace.Shiny(500)
	green.Specular = raytrace.Shiny(10)
	ground.Specular = raytrace.Shiny(1000)
	if v == Full {
		red.Reflectivity = 0.2
		blue.Reflectivity = 0.3
		green.Reflectivity = 0.4
		ground.Reflectivity = 0.5
	}

	return &raytrace.Scene{
		Spheres: []raytrace.Sphere{red, blue, green, ground},
		Lights: []raytrace.Light{
			raytrace.Ambient(0.2),
			raytrace.Point(0.6, vec.V3(2, 1, 0)),
			raytrace.Directional(0.2, vec.V3(1, 4, 4)),
		},
	}
}
