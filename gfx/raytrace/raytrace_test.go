package raytrace

import (
	"testing"

	"github.com/chewxy/math32"

	"prism/gfx/canvas"
	"prism/gfx/vec"
)

func approx(a, b float32) bool { return math32.Abs(a-b) < 1e-4 }

func TestIntersectRaySphereThroughCenter(t *testing.T) {
	s := &Sphere{Center: vec.V3(0, 0, 5), Radius: 1}
	t1, t2, ok := IntersectRaySphere(vec.V3(0, 0, 0), vec.V3(0, 0, 1), s)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !approx(t1, 6) || !approx(t2, 4) {
		t.Fatalf("roots=(%v,%v) want (6,4)", t1, t2)
	}
	if !approx((t1+t2)/2, 5) {
		t.Fatalf("roots not symmetric about the center distance: %v %v", t1, t2)
	}
}

func TestIntersectRaySphereUnnormalizedDirection(t *testing.T) {
	s := &Sphere{Center: vec.V3(0, 0, 5), Radius: 1}
	t1, t2, ok := IntersectRaySphere(vec.V3(0, 0, 0), vec.V3(0, 0, 2), s)
	if !ok || !approx(t1, 3) || !approx(t2, 2) {
		t.Fatalf("got (%v,%v,%v) want (3,2,true)", t1, t2, ok)
	}
}

func TestIntersectRaySphereMiss(t *testing.T) {
	s := &Sphere{Center: vec.V3(3, 0, 5), Radius: 1}
	t1, t2, ok := IntersectRaySphere(vec.V3(0, 0, 0), vec.V3(0, 0, 1), s)
	if ok || t1 != -1 || t2 != -1 {
		t.Fatalf("got (%v,%v,%v) want (-1,-1,false)", t1, t2, ok)
	}
}

func TestClosestIntersection(t *testing.T) {
	scene := &Scene{Spheres: []Sphere{
		{Center: vec.V3(0, 0, 10), Radius: 1, Color: vec.RGB(0, 0, 255)},
		{Center: vec.V3(0, 0, 4), Radius: 1, Color: vec.RGB(255, 0, 0)},
	}}
	o, d := vec.V3(0, 0, 0), vec.V3(0, 0, 1)

	sp, tt, ok := scene.ClosestIntersection(o, d, 1, math32.Inf(1))
	if !ok || sp != &scene.Spheres[1] || !approx(tt, 3) {
		t.Fatalf("got (%v,%v,%v) want sphere 1 at t=3", sp, tt, ok)
	}

	// Range excludes the near sphere entirely.
	sp, tt, ok = scene.ClosestIntersection(o, d, 6, math32.Inf(1))
	if !ok || sp != &scene.Spheres[0] || !approx(tt, 9) {
		t.Fatalf("got (%v,%v,%v) want sphere 0 at t=9", sp, tt, ok)
	}

	if _, _, ok := scene.ClosestIntersection(o, vec.V3(0, 1, 0), 1, math32.Inf(1)); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestClosestIntersectionTieKeepsFirst(t *testing.T) {
	scene := &Scene{Spheres: []Sphere{
		{Center: vec.V3(0, 0, 4), Radius: 1, Color: vec.RGB(1, 1, 1)},
		{Center: vec.V3(0, 0, 4), Radius: 1, Color: vec.RGB(2, 2, 2)},
	}}
	sp, _, ok := scene.ClosestIntersection(vec.V3(0, 0, 0), vec.V3(0, 0, 1), 1, 100)
	if !ok || sp != &scene.Spheres[0] {
		t.Fatalf("tie should keep the first sphere")
	}
}

func TestAmbientOnlyLighting(t *testing.T) {
	tr := NewTracer(&Scene{Lights: []Light{Ambient(0.2)}})
	cases := []struct {
		n, v vec.Vector3
		spec Specular
	}{
		{vec.V3(0, 1, 0), vec.V3(0, 0, -1), Specular{}},
		{vec.V3(1, 0, 0), vec.V3(0, 1, 0), Shiny(10)},
		{vec.V3(0, 0, -1), vec.V3(0, 0, -1), Shiny(1000)},
	}
	for _, c := range cases {
		if got := tr.ComputeLighting(vec.V3(0, 0, 0), c.n, c.v, c.spec); got != 0.2 {
			t.Fatalf("ComputeLighting(%v,%v,%v)=%v want 0.2", c.n, c.v, c.spec, got)
		}
	}
}

func TestPointLightDiffuse(t *testing.T) {
	tr := NewTracer(&Scene{Lights: []Light{Point(0.6, vec.V3(0, 4, 0))}})
	got := tr.ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, 1, 0), vec.V3(0, 1, 0), Specular{})
	if !approx(got, 0.6) {
		t.Fatalf("got %v want 0.6", got)
	}
	// Light below the surface contributes nothing.
	got = tr.ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, -1, 0), vec.V3(0, -1, 0), Specular{})
	if got != 0 {
		t.Fatalf("back-facing light: got %v want 0", got)
	}
}

func TestSpecularHighlight(t *testing.T) {
	tr := NewTracer(&Scene{Lights: []Light{Directional(0.5, vec.V3(0, 1, 0))}})
	// Viewer on the mirror direction: diffuse 0.5 plus specular 0.5.
	got := tr.ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, 1, 0), vec.V3(0, 1, 0), Shiny(500))
	if !approx(got, 1) {
		t.Fatalf("got %v want 1", got)
	}
	got = tr.ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, 1, 0), vec.V3(0, 1, 0), Specular{})
	if !approx(got, 0.5) {
		t.Fatalf("without specular got %v want 0.5", got)
	}
}

func TestOccludedPointLight(t *testing.T) {
	scene := &Scene{
		Spheres: []Sphere{{Center: vec.V3(0, 2, 0), Radius: 0.5}},
		Lights:  []Light{Point(0.6, vec.V3(0, 4, 0))},
	}
	tr := NewTracer(scene)
	p, n := vec.V3(0, 0, 0), vec.V3(0, 1, 0)

	if got := tr.ComputeLighting(p, n, n, Shiny(10)); got != 0 {
		t.Fatalf("occluded light contributed %v", got)
	}

	tr.Shading = ShadingLit
	if got := tr.ComputeLighting(p, n, n, Specular{}); !approx(got, 0.6) {
		t.Fatalf("lit shading ignores shadows: got %v want 0.6", got)
	}
}

func TestPointLightShadowStopsAtLight(t *testing.T) {
	// The sphere is beyond the light, so it must not cast a shadow.
	scene := &Scene{
		Spheres: []Sphere{{Center: vec.V3(0, 6, 0), Radius: 0.5}},
		Lights:  []Light{Point(0.6, vec.V3(0, 4, 0))},
	}
	got := NewTracer(scene).ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, 1, 0), vec.V3(0, 1, 0), Specular{})
	if !approx(got, 0.6) {
		t.Fatalf("got %v want 0.6", got)
	}
}

func TestDirectionalShadowIsUnbounded(t *testing.T) {
	scene := &Scene{
		Spheres: []Sphere{{Center: vec.V3(0, 60, 0), Radius: 0.5}},
		Lights:  []Light{Directional(0.3, vec.V3(0, 1, 0))},
	}
	got := NewTracer(scene).ComputeLighting(vec.V3(0, 0, 0), vec.V3(0, 1, 0), vec.V3(0, 1, 0), Specular{})
	if got != 0 {
		t.Fatalf("got %v want 0", got)
	}
}

func litScene(reflectivity float32) *Scene {
	return &Scene{
		Spheres: []Sphere{
			{Center: vec.V3(0, 0, 3), Radius: 1, Color: vec.RGB(255, 0, 0), Specular: Shiny(500), Reflectivity: reflectivity},
			{Center: vec.V3(0, -5001, 0), Radius: 5000, Color: vec.RGB(255, 255, 0), Specular: Shiny(1000), Reflectivity: 0.5},
		},
		Lights: []Light{
			Ambient(0.2),
			Point(0.6, vec.V3(2, 1, 0)),
			Directional(0.2, vec.V3(1, 4, 4)),
		},
	}
}

func TestTraceRayNoReflectionIsLocalColor(t *testing.T) {
	tr := NewTracer(litScene(0))
	o, d := vec.V3(0, 0, 0), vec.V3(0, 0, 1)

	p := vec.V3(0, 0, 2)
	n := vec.V3(0, 0, -1)
	sp := &tr.Scene.Spheres[0]
	want := sp.Color.Scale(clamp01(tr.ComputeLighting(p, n, d.Neg(), sp.Specular)))

	for _, depth := range []int{0, 1, 3} {
		if got := tr.TraceRay(o, d, 1, math32.Inf(1), depth); got != want {
			t.Fatalf("depth %d: got %v want %v", depth, got, want)
		}
	}
}

func TestTraceRayMirrorReturnsReflectedColor(t *testing.T) {
	scene := &Scene{Spheres: []Sphere{
		{Center: vec.V3(0, 0, 3), Radius: 1, Color: vec.RGB(255, 0, 0), Reflectivity: 1},
	}}
	tr := NewTracer(scene)
	got := tr.TraceRay(vec.V3(0, 0, 0), vec.V3(0, 0, 1), 1, math32.Inf(1), 1)
	if got != Background {
		t.Fatalf("got %v want background %v", got, Background)
	}
}

func TestTraceRayMissReturnsBackground(t *testing.T) {
	tr := NewTracer(&Scene{})
	tr.Background = vec.RGB(1, 2, 3)
	if got := tr.TraceRay(vec.V3(0, 0, 0), vec.V3(0, 0, 1), 1, 100, 0); got != vec.RGB(1, 2, 3) {
		t.Fatalf("got %v", got)
	}
}

func TestFlatShadingIsSphereColor(t *testing.T) {
	tr := NewTracer(litScene(0))
	tr.Shading = ShadingFlat
	if got := tr.TraceRay(vec.V3(0, 0, 0), vec.V3(0, 0, 1), 1, math32.Inf(1), 0); got != vec.RGB(255, 0, 0) {
		t.Fatalf("got %v want pure red", got)
	}
}

func TestReflectRay(t *testing.T) {
	r := ReflectRay(vec.V3(1, 1, 0), vec.V3(0, 1, 0))
	if r != vec.V3(-1, 1, 0) {
		t.Fatalf("got %v want (-1,1,0)", r)
	}
}

func TestRenderCoversCanvas(t *testing.T) {
	tg := canvas.NewImageTarget(20, 20)
	c := canvas.New(tg)
	tr := NewTracer(&Scene{Spheres: []Sphere{
		{Center: vec.V3(0, 0, 3), Radius: 1, Color: vec.RGB(0, 0, 255)},
	}})
	tr.Shading = ShadingFlat
	tr.Render(c, vec.V3(0, 0, 0), 1, math32.Inf(1), 0)

	if got := tg.Img.RGBAAt(10, 10); got.B != 255 || got.R != 0 {
		t.Fatalf("center=%v want blue", got)
	}
	if got := tg.Img.RGBAAt(0, 0); got.R != 255 || got.G != 255 || got.B != 255 {
		t.Fatalf("corner=%v want background", got)
	}
}
