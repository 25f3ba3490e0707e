package obj

import (
	"math"

	"github.com/milk9111/redball/geom"
)

const (
	// Gravity is the per-frame downward acceleration while airborne.
	Gravity = 0.5
	// JumpForce is the vertical velocity applied on jump (negative is up).
	JumpForce = -12.0
	// MoveSpeed is the horizontal velocity set while a move intent is held.
	MoveSpeed = 5.0
	// Friction damps horizontal velocity every frame, grounded or not.
	Friction = 0.8
	// BaseRadius is the ball's radius at scale factor 1.
	BaseRadius = 15.0
	// MaxLives is both the starting and maximum life count.
	MaxLives = 2

	// powerUpFrames is how long a grow/shrink effect lasts (5s at 60fps).
	powerUpFrames = 300
	// spinThreshold is the minimum horizontal speed that spins the ball.
	// The spin is cosmetic and never feeds back into physics.
	spinThreshold = 0.1
)

// PowerKind distinguishes the two scale power-ups.
type PowerKind int

const (
	PowerGrow PowerKind = iota
	PowerShrink
)

func (k PowerKind) String() string {
	if k == PowerGrow {
		return "grow"
	}
	return "shrink"
}

// Ball is the player avatar: a circle integrated with one Euler step per
// frame and resolved against the platform set as a bounding square.
type Ball struct {
	Pos      geom.Vec2
	Velocity geom.Vec2
	Radius   float64

	ScaleFactor float64
	ScaleTimer  int
	Rotation    float64
	OnGround    bool
	Lives       int

	start geom.Vec2
}

// NewBall creates a ball at the level's start position with full lives.
func NewBall(x, y float64) *Ball {
	return &Ball{
		Pos:         geom.Vec2{X: x, Y: y},
		Radius:      BaseRadius,
		ScaleFactor: 1.0,
		Lives:       MaxLives,
		start:       geom.Vec2{X: x, Y: y},
	}
}

// StartPosition returns the spawn point the ball respawns to.
func (b *Ball) StartPosition() geom.Vec2 { return b.start }

func (b *Ball) MoveLeft()  { b.Velocity.X = -MoveSpeed }
func (b *Ball) MoveRight() { b.Velocity.X = MoveSpeed }

// Jump launches the ball if it is standing on a platform.
func (b *Ball) Jump() {
	if b.OnGround {
		b.Velocity.Y = JumpForce
	}
}

// ApplyPowerUp applies a grow or shrink effect. Growing restores one life up
// to the cap; shrinking costs one. Either way the effect timer restarts.
// Lives may go to zero or below here; the session decides what that means.
func (b *Ball) ApplyPowerUp(kind PowerKind) {
	if kind == PowerGrow {
		b.ScaleFactor = 2.0
		if b.Lives < MaxLives {
			b.Lives++
		}
	} else {
		b.ScaleFactor = 0.5
		b.Lives--
	}
	b.ScaleTimer = powerUpFrames
}

// Respawn puts the ball back at the level start with zero velocity.
func (b *Ball) Respawn() {
	b.Pos = b.start
	b.Velocity = geom.Vec2{}
}

// Bounds returns the ball's bounding square (side 2*Radius) used for all
// collision tests.
func (b *Ball) Bounds() geom.Rect {
	return geom.Rect{
		X:      b.Pos.X - b.Radius,
		Y:      b.Pos.Y - b.Radius,
		Width:  b.Radius * 2,
		Height: b.Radius * 2,
	}
}

// Update advances the ball one fixed step. The order is load-bearing:
// power-up timer, radius, gravity, friction, spin, position, ground flag.
// The collision pass afterwards re-establishes OnGround.
func (b *Ball) Update() {
	if b.ScaleTimer > 0 {
		b.ScaleTimer--
		if b.ScaleTimer == 0 {
			b.ScaleFactor = 1.0
		}
	}

	// Radius goes through the scale transform rather than a bare multiply
	// to keep sizing on the same transform path as everything else.
	scaled := geom.Scaling(b.ScaleFactor, b.ScaleFactor).Apply(geom.Vec2{X: BaseRadius})
	b.Radius = math.Abs(scaled.X)

	if !b.OnGround {
		b.Velocity.Y += Gravity
	}

	b.Velocity.X *= Friction

	if math.Abs(b.Velocity.X) > spinThreshold {
		b.Rotation += b.Velocity.X * 0.1
	}

	b.Pos = geom.Translation(b.Velocity.X, b.Velocity.Y).Apply(b.Pos)

	b.OnGround = false
}

// HandlePlatformCollision resolves the ball against every platform in list
// order. Each platform is resolved independently, so two platforms
// overlapping the ball in the same frame can both move it (known limitation,
// kept for fidelity with the level design tuned around it).
func (b *Ball) HandlePlatformCollision(platforms []*Platform) {
	bounds := b.Bounds()

	for _, p := range platforms {
		if !bounds.Intersects(p.Rect) {
			continue
		}

		pv := geom.Vec2{}
		if p.Moving() {
			pv = p.Velocity
		}

		overlapLeft := (b.Pos.X + b.Radius) - p.Rect.X
		overlapRight := p.Rect.Right() - (b.Pos.X - b.Radius)
		overlapTop := (b.Pos.Y + b.Radius) - p.Rect.Y
		overlapBottom := p.Rect.Bottom() - (b.Pos.Y - b.Radius)

		minOverlap := math.Min(
			math.Min(overlapLeft, overlapRight),
			math.Min(overlapTop, overlapBottom),
		)

		switch {
		case minOverlap == overlapTop && b.Velocity.Y >= 0:
			// Landing on top.
			b.Pos.Y = p.Rect.Y - b.Radius
			b.Velocity.Y = 0
			b.OnGround = true

			if p.Moving() {
				b.Velocity.X += pv.X * 0.8
				b.Velocity.Y += pv.Y * 0.8

				// Vertical carriers clamp the ball's fall rate to their
				// own so it neither sinks through nor floats off.
				if p.Kind == MotionVertical {
					b.Pos.Y = p.Rect.Y - b.Radius
					b.Velocity.Y = pv.Y
				}
			}

		case minOverlap == overlapBottom && b.Velocity.Y <= 0:
			// Bonking the underside.
			b.Pos.Y = p.Rect.Bottom() + b.Radius
			b.Velocity.Y = 0

			if p.Moving() {
				b.Velocity.Y += pv.Y * 0.5
			}

		case minOverlap == overlapLeft && b.Velocity.X >= 0:
			b.Pos.X = p.Rect.X - b.Radius
			b.Velocity.X = 0

			if p.Moving() {
				b.Velocity.X += pv.X * 0.3
			}

		case minOverlap == overlapRight && b.Velocity.X <= 0:
			b.Pos.X = p.Rect.Right() + b.Radius
			b.Velocity.X = 0

			if p.Moving() {
				b.Velocity.X += pv.X * 0.3
			}
		}

		bounds = b.Bounds()

		// Fast carriers get a predictive check: if the ball's updated
		// velocity would leave it inside the platform again next frame,
		// override the velocity outright instead of letting it tunnel.
		if p.Moving() && p.Fast() {
			next := geom.Rect{
				X:      b.Pos.X + b.Velocity.X - b.Radius,
				Y:      b.Pos.Y + b.Velocity.Y - b.Radius,
				Width:  b.Radius * 2,
				Height: b.Radius * 2,
			}
			if next.Intersects(p.Rect) {
				switch p.Kind {
				case MotionVertical:
					b.Velocity.Y = pv.Y
				case MotionHorizontal:
					b.Velocity.X = pv.X * 0.8
				}
			}
		}
	}
}
