package obj

import (
	"math"
	"testing"

	"github.com/milk9111/redball/geom"
)

func TestBallLandsOnStaticPlatform(t *testing.T) {
	platform := NewPlatform(0, 100, 200, 20)
	b := NewBall(50, 90)
	b.Velocity.Y = 5

	b.HandlePlatformCollision([]*Platform{platform})

	if !b.OnGround {
		t.Fatal("ball should be grounded after landing")
	}
	if b.Velocity.Y != 0 {
		t.Fatalf("vertical velocity = %v, want 0", b.Velocity.Y)
	}
	if got, want := b.Pos.Y, platform.Rect.Y-b.Radius; got != want {
		t.Fatalf("ball rests at y=%v, want %v (bottom flush with platform top)", got, want)
	}
}

func TestBallBonksUnderside(t *testing.T) {
	platform := NewPlatform(0, 100, 200, 20)
	b := NewBall(50, 130)
	b.Velocity.Y = -5

	b.HandlePlatformCollision([]*Platform{platform})

	if b.OnGround {
		t.Fatal("hitting the underside must not ground the ball")
	}
	if b.Velocity.Y != 0 {
		t.Fatalf("vertical velocity = %v, want 0", b.Velocity.Y)
	}
	if got, want := b.Pos.Y, platform.Rect.Bottom()+b.Radius; got != want {
		t.Fatalf("ball pushed to y=%v, want %v", got, want)
	}
}

func TestBallSideResolution(t *testing.T) {
	cases := []struct {
		name  string
		ballX float64
		vx    float64
		wantX float64
	}{
		// platform spans x [100, 200], ball radius 15
		{"from_left", 90, 3, 85},
		{"from_right", 210, -3, 215},
	}

	platform := NewPlatform(100, 100, 100, 20)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBall(c.ballX, 110)
			b.Velocity.X = c.vx

			b.HandlePlatformCollision([]*Platform{platform})

			if b.Velocity.X != 0 {
				t.Fatalf("horizontal velocity = %v, want 0", b.Velocity.X)
			}
			if b.Pos.X != c.wantX {
				t.Fatalf("ball clamped to x=%v, want %v", b.Pos.X, c.wantX)
			}
		})
	}
}

func TestCarrierMomentumTransfer(t *testing.T) {
	t.Run("top_landing_adds_80_percent", func(t *testing.T) {
		p := NewMovingPlatform(0, 100, 200, 20, MotionHorizontal, 1, 80)
		p.Velocity = geom.Vec2{X: 2}

		b := NewBall(50, 90)
		b.Velocity.Y = 3
		b.HandlePlatformCollision([]*Platform{p})

		if !closeTo(b.Velocity.X, 1.6) {
			t.Fatalf("vx = %v, want 1.6 (80%% of carrier displacement)", b.Velocity.X)
		}
	})

	t.Run("vertical_carrier_clamps_fall_rate", func(t *testing.T) {
		p := NewMovingPlatform(0, 100, 200, 20, MotionVertical, 1, 80)
		p.Velocity = geom.Vec2{Y: 3}

		b := NewBall(50, 90)
		b.Velocity.Y = 3
		b.HandlePlatformCollision([]*Platform{p})

		if b.Velocity.Y != 3 {
			t.Fatalf("vy = %v, want exactly the carrier's displacement 3", b.Velocity.Y)
		}
		if got, want := b.Pos.Y, p.Rect.Y-b.Radius; got != want {
			t.Fatalf("ball at y=%v, want %v (riding the carrier)", got, want)
		}
	})

	t.Run("underside_adds_50_percent", func(t *testing.T) {
		p := NewMovingPlatform(0, 100, 200, 20, MotionVertical, 1, 80)
		p.Velocity = geom.Vec2{Y: 4}

		b := NewBall(50, 130)
		b.Velocity.Y = -2
		b.HandlePlatformCollision([]*Platform{p})

		if !closeTo(b.Velocity.Y, 2) {
			t.Fatalf("vy = %v, want 2 (50%% of carrier displacement)", b.Velocity.Y)
		}
	})

	t.Run("side_adds_30_percent", func(t *testing.T) {
		p := NewMovingPlatform(100, 100, 100, 20, MotionHorizontal, 1, 80)
		p.Velocity = geom.Vec2{X: 2}

		b := NewBall(90, 110)
		b.Velocity.X = 3
		b.HandlePlatformCollision([]*Platform{p})

		if !closeTo(b.Velocity.X, 0.6) {
			t.Fatalf("vx = %v, want 0.6 (30%% of carrier displacement)", b.Velocity.X)
		}
	})
}

func TestFastCarrierAntiTunneling(t *testing.T) {
	// Carrier sweeping left at 6 units/frame hits the ball on its right
	// side; the predictive check sees the ball is still inside next frame
	// and overrides its velocity instead of letting it pass through.
	p := NewMovingPlatform(100, 100, 100, 20, MotionHorizontal, 1, 80)
	p.Velocity = geom.Vec2{X: -6}

	b := NewBall(210, 110)
	b.Velocity.X = -2
	b.HandlePlatformCollision([]*Platform{p})

	if !closeTo(b.Velocity.X, -4.8) {
		t.Fatalf("vx = %v, want -4.8 (80%% of fast carrier displacement)", b.Velocity.X)
	}
}

func TestGravityOnlyWhenAirborne(t *testing.T) {
	b := NewBall(0, 0)

	b.Update()
	if b.Velocity.Y != Gravity {
		t.Fatalf("airborne vy = %v, want %v", b.Velocity.Y, Gravity)
	}

	b.Velocity.Y = 0
	b.OnGround = true
	b.Update()
	if b.Velocity.Y != 0 {
		t.Fatalf("grounded vy = %v, want 0", b.Velocity.Y)
	}
	if b.OnGround {
		t.Fatal("Update must clear the ground flag for the next collision pass")
	}
}

func TestFrictionDampsHorizontalVelocity(t *testing.T) {
	b := NewBall(0, 0)
	b.MoveRight()

	b.Update()
	if !closeTo(b.Velocity.X, MoveSpeed*Friction) {
		t.Fatalf("vx = %v, want %v", b.Velocity.X, MoveSpeed*Friction)
	}

	for i := 0; i < 200; i++ {
		b.Update()
	}
	if math.Abs(b.Velocity.X) > 1e-6 {
		t.Fatalf("vx = %v, want ~0 after sustained damping", b.Velocity.X)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	b := NewBall(0, 0)

	b.Jump()
	if b.Velocity.Y != 0 {
		t.Fatal("airborne jump should do nothing")
	}

	b.OnGround = true
	b.Jump()
	if b.Velocity.Y != JumpForce {
		t.Fatalf("vy = %v, want %v", b.Velocity.Y, JumpForce)
	}
}

func TestPowerUpLifecycle(t *testing.T) {
	t.Run("grow_then_expire", func(t *testing.T) {
		b := NewBall(0, 0)
		b.ApplyPowerUp(PowerGrow)

		if b.ScaleFactor != 2.0 {
			t.Fatalf("scale = %v, want 2.0", b.ScaleFactor)
		}
		b.Update()
		if b.Radius != BaseRadius*2 {
			t.Fatalf("radius = %v, want %v", b.Radius, BaseRadius*2)
		}

		for i := 0; i < powerUpFrames; i++ {
			b.Update()
		}
		if b.ScaleFactor != 1.0 {
			t.Fatalf("scale = %v, want exactly 1.0 after expiry", b.ScaleFactor)
		}
		if b.Radius != BaseRadius {
			t.Fatalf("radius = %v, want exactly %v after expiry", b.Radius, BaseRadius)
		}
	})

	t.Run("grow_restores_life_up_to_cap", func(t *testing.T) {
		b := NewBall(0, 0)
		b.Lives = 1
		b.ApplyPowerUp(PowerGrow)
		if b.Lives != 2 {
			t.Fatalf("lives = %d, want 2", b.Lives)
		}
		b.ApplyPowerUp(PowerGrow)
		if b.Lives != 2 {
			t.Fatalf("lives = %d, want cap to hold at 2", b.Lives)
		}
	})

	t.Run("shrink_costs_life", func(t *testing.T) {
		b := NewBall(0, 0)
		b.ApplyPowerUp(PowerShrink)
		if b.Lives != 1 {
			t.Fatalf("lives = %d, want 1", b.Lives)
		}
		if b.ScaleFactor != 0.5 {
			t.Fatalf("scale = %v, want 0.5", b.ScaleFactor)
		}
	})
}

func TestRespawn(t *testing.T) {
	b := NewBall(100, 400)
	b.Pos = geom.Vec2{X: 900, Y: 1000}
	b.Velocity = geom.Vec2{X: 4, Y: 12}

	b.Respawn()

	if b.Pos != b.StartPosition() {
		t.Fatalf("pos = %+v, want start %+v", b.Pos, b.StartPosition())
	}
	if b.Velocity != (geom.Vec2{}) {
		t.Fatalf("velocity = %+v, want zero", b.Velocity)
	}
}
