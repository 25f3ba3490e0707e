package geom

import "math"

// Vec2 is a 2D point or displacement in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mat3 is a row-major 3x3 homogeneous transform for 2D points. Every matrix
// built by this package keeps the bottom row at [0 0 1].
type Mat3 [3][3]float64

// Identity returns the identity transform.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Mat3 {
	return Mat3{
		{1, 0, dx},
		{0, 1, dy},
		{0, 0, 1},
	}
}

// Scaling returns a transform that scales points by (sx, sy) about the origin.
func Scaling(sx, sy float64) Mat3 {
	return Mat3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// Rotation returns a transform that rotates points by theta radians about the
// origin.
func Rotation(theta float64) Mat3 {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Mul returns m*o, the transform that applies o first and then m.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c] + m[r][2]*o[2][c]
		}
	}
	return out
}

// Compose multiplies left to right: Compose(a, b, c) == a*b*c. Matrix
// multiplication is not commutative, so argument order matters.
func Compose(ms ...Mat3) Mat3 {
	if len(ms) == 0 {
		return Identity()
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = out.Mul(m)
	}
	return out
}

// Apply transforms p as m*[x y 1]^T and drops the homogeneous coordinate.
func (m Mat3) Apply(p Vec2) Vec2 {
	return Vec2{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// Lerp linearly interpolates from a to b. t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpMat blends two matrices element-wise.
func LerpMat(a, b Mat3, t float64) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = Lerp(a[r][c], b[r][c], t)
		}
	}
	return out
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
