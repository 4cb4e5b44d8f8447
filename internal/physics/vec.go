package physics

import "math"

// Vec3 is a 3D vector. All methods return new values.
type Vec3 struct {
	X, Y, Z float64
}

// V creates a vector.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Lerp moves v toward target by factor t (0 keeps v, 1 returns target).
func (v Vec3) Lerp(target Vec3, t float64) Vec3 {
	return v.Add(target.Sub(v).Scale(t))
}

// Lerp interpolates between two scalars.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}
