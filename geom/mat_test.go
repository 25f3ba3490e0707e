package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecAlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestLerpEndpoints(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"t_zero", 3, 9, 0, 3},
		{"t_one", 3, 9, 1, 9},
		{"midpoint", -2, 2, 0.5, 0},
		{"negative_range", 10, -10, 0.25, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); !almostEqual(got, c.want) {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestLerpIsAffineLinear(t *testing.T) {
	// Lerp(a,b,t) should be collinear in t: the value at t is the value at
	// 0 plus t times the full span.
	a, b := 4.0, 20.0
	for _, tt := range []float64{0, 0.1, 0.33, 0.5, 0.75, 1} {
		want := a + tt*(b-a)
		if got := Lerp(a, b, tt); !almostEqual(got, want) {
			t.Fatalf("Lerp not linear at t=%v: got %v, want %v", tt, got, want)
		}
	}
}

func TestTranslationMovesPoint(t *testing.T) {
	m := Compose(Translation(7, -3), Scaling(1, 1))
	p := Vec2{X: 2, Y: 5}
	got := m.Apply(p)
	want := Vec2{X: 9, Y: 2}
	if !vecAlmostEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}
}

func TestComposeOrderMatters(t *testing.T) {
	p := Vec2{X: 1, Y: 0}

	// scale then translate vs translate then scale
	st := Compose(Scaling(2, 2), Translation(5, 0)).Apply(p)
	ts := Compose(Translation(5, 0), Scaling(2, 2)).Apply(p)

	if !vecAlmostEqual(st, Vec2{X: 12, Y: 0}) {
		t.Fatalf("scale*translate = %v, want (12, 0)", st)
	}
	if !vecAlmostEqual(ts, Vec2{X: 7, Y: 0}) {
		t.Fatalf("translate*scale = %v, want (7, 0)", ts)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	p := Vec2{X: 3, Y: 4}
	for _, theta := range []float64{0, 0.5, math.Pi / 2, math.Pi, 4.2} {
		got := Rotation(theta).Apply(p)
		if !almostEqual(math.Hypot(got.X, got.Y), 5) {
			t.Fatalf("rotation by %v changed length: %v", theta, got)
		}
	}
}

func TestBottomRowStaysAffine(t *testing.T) {
	ms := []Mat3{
		Identity(),
		Translation(3, 4),
		Scaling(2, 0.5),
		Rotation(1.2),
		Compose(Scaling(2, 2), Translation(-10, 5), Rotation(0.3)),
		LerpMat(Translation(1, 1), Scaling(3, 3), 0.4),
	}
	for i, m := range ms {
		if !almostEqual(m[2][0], 0) || !almostEqual(m[2][1], 0) || !almostEqual(m[2][2], 1) {
			t.Fatalf("matrix %d bottom row = %v, want [0 0 1]", i, m[2])
		}
	}
}

func TestLerpMatEndpoints(t *testing.T) {
	a := Translation(2, 3)
	b := Scaling(4, 5)
	if got := LerpMat(a, b, 0); got != a {
		t.Fatalf("LerpMat(..., 0) = %v, want %v", got, a)
	}
	if got := LerpMat(a, b, 1); got != b {
		t.Fatalf("LerpMat(..., 1) = %v, want %v", got, b)
	}

	mid := LerpMat(a, b, 0.5)
	if !almostEqual(mid[0][0], 2.5) || !almostEqual(mid[0][2], 1) {
		t.Fatalf("LerpMat midpoint wrong: %v", mid)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"below", -1, 0, 10, 0},
		{"inside", 5, 0, 10, 5},
		{"above", 99, 0, 10, 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.lo, c.hi); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
		})
	}
}
