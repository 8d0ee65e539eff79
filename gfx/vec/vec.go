// Package vec holds the value types shared by the ray tracer and the rasterizer.
//
// Everything is float32 to match the arithmetic of the tutorial renderer; scalar
// helpers come from math32 rather than round-tripping through float64.
package vec

import "github.com/chewxy/math32"

// Vector3 is a 3-component float vector. It is used for points, directions and
// (in the rasterizer) screen-space vertices where only X and Y matter.
type Vector3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func (v Vector3) Add(o Vector3) Vector3   { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vector3) Sub(o Vector3) Vector3   { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vector3) Scale(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }
func (v Vector3) Neg() Vector3            { return Vector3{-v.X, -v.Y, -v.Z} }
func (v Vector3) Dot(o Vector3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Length() float32         { return math32.Sqrt(v.Dot(v)) }

// Normalize returns v scaled to unit length. A zero vector yields NaN
// components; callers never normalize a degenerate vector on purpose.
func (v Vector3) Normalize() Vector3 {
	return v.Scale(1 / v.Length())
}
