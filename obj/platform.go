package obj

import (
	"math"

	"github.com/milk9111/redball/geom"
)

// MotionKind selects a mover trajectory. MotionNone marks a static platform.
type MotionKind int

const (
	MotionNone MotionKind = iota
	MotionHorizontal
	MotionVertical
	MotionCircular
)

func (k MotionKind) String() string {
	switch k {
	case MotionHorizontal:
		return "horizontal"
	case MotionVertical:
		return "vertical"
	case MotionCircular:
		return "circular"
	default:
		return "static"
	}
}

// moverTimeStep is the per-frame advance of a mover's clock. The clock is
// frame-counted rather than wall-clock, so a trajectory replays identically
// from elapsed frames alone.
const moverTimeStep = 0.02

// fastCarrierThreshold is the per-frame displacement above which a mover
// gets the predictive anti-tunneling treatment during collision resolution.
const fastCarrierThreshold = 5.0

// Platform is an axis-aligned rectangle the ball collides with. Static
// platforms (Kind == MotionNone) never change after creation. Movers
// recompute their position every frame as a pure function of elapsed time,
// never by integrating forces.
type Platform struct {
	Rect geom.Rect

	Kind     MotionKind
	Speed    float64
	Distance float64

	// Velocity is last frame's displacement in world units, not a
	// per-second rate. Consumers treat it as "movement this tick".
	Velocity geom.Vec2

	origin geom.Vec2
	center geom.Vec2
	radius float64
	time   float64
}

// NewPlatform creates a static platform.
func NewPlatform(x, y, w, h float64) *Platform {
	return &Platform{
		Rect: geom.Rect{X: x, Y: y, Width: w, Height: h},
	}
}

// NewMovingPlatform creates a mover anchored at (x, y). For circular motion
// the rectangle orbits the declared center (the rectangle's initial center)
// at radius distance/2.
func NewMovingPlatform(x, y, w, h float64, kind MotionKind, speed, distance float64) *Platform {
	return &Platform{
		Rect:     geom.Rect{X: x, Y: y, Width: w, Height: h},
		Kind:     kind,
		Speed:    speed,
		Distance: distance,
		origin:   geom.Vec2{X: x, Y: y},
		center:   geom.Vec2{X: x + w/2, Y: y + h/2},
		radius:   distance / 2,
	}
}

// Moving reports whether the platform carries momentum.
func (p *Platform) Moving() bool { return p.Kind != MotionNone }

// Fast reports whether either displacement component exceeds the
// anti-tunneling threshold this frame.
func (p *Platform) Fast() bool {
	return math.Abs(p.Velocity.X) > fastCarrierThreshold ||
		math.Abs(p.Velocity.Y) > fastCarrierThreshold
}

// Update advances the mover's clock one frame and moves it along its
// trajectory. The displacement is recorded in Velocity before the new
// position is committed so collision resolution can transfer it to the ball.
// Static platforms are left untouched.
func (p *Platform) Update() {
	if p.Kind == MotionNone {
		return
	}

	p.time += moverTimeStep

	var next geom.Vec2
	switch p.Kind {
	case MotionHorizontal:
		next.X = p.origin.X + math.Sin(p.time*p.Speed)*p.Distance
		next.Y = p.origin.Y
	case MotionVertical:
		next.X = p.origin.X
		next.Y = p.origin.Y + math.Sin(p.time*p.Speed)*p.Distance
	case MotionCircular:
		offset := geom.Rotation(p.time * p.Speed).Apply(geom.Vec2{X: p.radius})
		next.X = p.center.X + offset.X - p.Rect.Width/2
		next.Y = p.center.Y + offset.Y - p.Rect.Height/2
	}

	p.Velocity = geom.Vec2{X: next.X - p.Rect.X, Y: next.Y - p.Rect.Y}
	p.Rect.X = next.X
	p.Rect.Y = next.Y
}

// OrbitCenter returns the declared orbit center for circular movers.
func (p *Platform) OrbitCenter() geom.Vec2 { return p.center }
