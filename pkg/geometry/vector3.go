package geometry

import "math"

// Vector3 represents a point or vector in the plan.
// Plan geometry lives in the XY plane; Z is kept for the 3D scene and is
// always zero for walls and dimensions.
type Vector3 struct {
	X, Y, Z float64
}

// Axis unit vectors
var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
)

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector2 creates a plan point (Z = 0)
func NewVector2(x, y float64) Vector3 {
	return Vector3{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the distance between two points
func (v Vector3) Distance(other Vector3) float64 {
	return v.Sub(other).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector3) Normalize() Vector3 {
	length := v.Length()
	if length == 0 {
		return Vector3{}
	}
	return v.Mul(1.0 / length)
}

// Perp rotates the vector by +90° in the XY plane
func (v Vector3) Perp() Vector3 {
	return Vector3{X: -v.Y, Y: v.X}
}

// Angle returns the in-plane angle of the vector in radians
func (v Vector3) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Flat drops the Z component
func (v Vector3) Flat() Vector3 {
	return Vector3{X: v.X, Y: v.Y}
}

// Midpoint returns the point halfway between a and b
func Midpoint(a, b Vector3) Vector3 {
	return a.Add(b).Mul(0.5)
}

// AlmostEqual reports whether two vectors match within eps per component
func (v Vector3) AlmostEqual(other Vector3, eps float64) bool {
	return AlmostEqual(v.X, other.X, eps) &&
		AlmostEqual(v.Y, other.Y, eps) &&
		AlmostEqual(v.Z, other.Z, eps)
}

// AlmostEqual reports whether |a-b| <= eps
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// SignOrOne returns the sign of v, with zero (and NaN) mapped to +1.
func SignOrOne(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
