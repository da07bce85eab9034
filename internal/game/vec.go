package game

import "math"

// Vec3 is a 64-bit float vector used by the simulation. Rendering converts
// to float32 at the buffer boundary.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector, or the zero vector unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return v
	}
	return v.Scale(1.0 / l)
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// DistXY is the horizontal distance, ignoring height. Detection and flee
// thresholds use it so slope doesn't change effective ranges.
func (v Vec3) DistXY(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}
