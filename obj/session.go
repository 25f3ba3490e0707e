package obj

import (
	"fmt"
	"math"
)

const (
	// coinScore and flagScore are the points awarded per pickup.
	coinScore = 10
	flagScore = 100

	// fallMargin is how far below the playfield the ball may drop before
	// it counts as falling off.
	fallMargin = 100.0

	// landingShakeSpeed is the vertical speed that triggers an impact shake.
	landingShakeSpeed = 8.0
)

// LevelData is the geometry a level provider hands to a session. The session
// takes ownership of every entity; providers must return fresh ones on each
// call.
type LevelData struct {
	SpawnX, SpawnY float64
	PanMaxX        float64
	Platforms      []*Platform
	Coins          []*Coin
	PowerUps       []*PowerUp
	Flag           *Flag
}

// Provider supplies level geometry. Sessions call Level on every load and
// reset, so two calls with the same index must be equivalent but distinct.
type Provider interface {
	Level(index int) (*LevelData, error)
	MaxLevel() int
}

// Events records what the last frame did, for the HUD and session layer.
type Events struct {
	ScoreDelta    int
	LifeLost      bool
	LevelComplete bool
	LevelAdvanced bool
	SessionReset  bool
}

// Session owns one level's worth of game state: the ball, the camera, and
// every entity collection. All of it is rebuilt wholesale on reset or level
// advance; nothing is reused across levels.
type Session struct {
	Ball      *Ball
	Camera    *Camera
	Platforms []*Platform
	Coins     []*Coin
	PowerUps  []*PowerUp
	Flag      *Flag

	Score    int
	Level    int
	Complete bool

	// Events is overwritten at the start of every Update.
	Events Events

	provider         Provider
	screenW, screenH float64
}

// NewSession builds a session on its first level.
func NewSession(p Provider, screenW, screenH float64) (*Session, error) {
	s := &Session{
		provider: p,
		screenW:  screenW,
		screenH:  screenH,
		Level:    1,
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// MaxLevel returns the highest level index the provider offers.
func (s *Session) MaxLevel() int { return s.provider.MaxLevel() }

// Reset rebuilds the current level from scratch: fresh ball, fresh camera,
// fresh entities, score back to zero.
func (s *Session) Reset() error {
	data, err := s.provider.Level(s.Level)
	if err != nil {
		return fmt.Errorf("session: load level %d: %w", s.Level, err)
	}

	s.Ball = NewBall(data.SpawnX, data.SpawnY)
	s.Camera = NewCamera(s.screenW, s.screenH)
	s.Camera.SetPanBounds(0, data.PanMaxX)
	s.Platforms = data.Platforms
	s.Coins = data.Coins
	s.PowerUps = data.PowerUps
	s.Flag = data.Flag
	s.Score = 0
	s.Complete = false
	s.Events.SessionReset = true
	return nil
}

// CoinsCollected returns how many of this level's coins have been picked up.
func (s *Session) CoinsCollected() int {
	n := 0
	for _, c := range s.Coins {
		if c.Collected {
			n++
		}
	}
	return n
}

// Update runs one logical frame: intents, physics, collision, movers,
// collectibles, camera. Order matters and must not be rearranged.
func (s *Session) Update(in *Input) error {
	s.Events = Events{}

	if in.RestartPressed && s.Complete && s.Level == s.provider.MaxLevel() {
		s.Level = 1
		return s.Reset()
	}

	if in.MoveLeft {
		s.Ball.MoveLeft()
	}
	if in.MoveRight {
		s.Ball.MoveRight()
	}
	if in.Jump {
		s.Ball.Jump()
	}

	if s.Complete {
		return nil
	}

	s.Ball.Update()
	s.Ball.HandlePlatformCollision(s.Platforms)

	for _, p := range s.Platforms {
		p.Update()
	}
	for _, c := range s.Coins {
		c.Update()
	}
	s.Flag.Update()

	if err := s.checkCollisions(); err != nil {
		return err
	}
	if s.Events.SessionReset || s.Events.LevelAdvanced {
		// Entities were just rebuilt; skip the rest of the frame.
		return nil
	}

	s.updateCamera()

	if s.Ball.Pos.Y > s.screenH+fallMargin {
		s.Ball.Respawn()
		s.Ball.Lives--
		s.Events.LifeLost = true
		if s.Ball.Lives <= 0 {
			if err := s.Reset(); err != nil {
				return err
			}
			s.Camera.AddScreenShake(10, 60)
		}
	}

	return nil
}

// checkCollisions handles coin, power-up, and flag pickups. A power-up that
// drains the last life resets the level immediately; reaching the flag on a
// non-final level advances and rebuilds.
func (s *Session) checkCollisions() error {
	bounds := s.Ball.Bounds()

	for _, c := range s.Coins {
		if c.Collected || !bounds.Intersects(c.Bounds()) {
			continue
		}
		c.Collected = true
		s.Score += coinScore
		s.Events.ScoreDelta += coinScore
		s.Camera.AddScreenShake(1, 5)
	}

	for _, p := range s.PowerUps {
		if p.Collected || !bounds.Intersects(p.Bounds()) {
			continue
		}
		p.Collected = true
		s.Ball.ApplyPowerUp(p.Kind)
		if p.Kind == PowerShrink {
			s.Events.LifeLost = true
		}
		s.Camera.AddScreenShake(2, 8)

		if s.Ball.Lives <= 0 {
			if err := s.Reset(); err != nil {
				return err
			}
			s.Camera.AddScreenShake(10, 60)
			return nil
		}
	}

	if !s.Flag.Collected && bounds.Intersects(s.Flag.Bounds()) {
		s.Flag.Collected = true
		s.Complete = true
		s.Score += flagScore
		s.Events.ScoreDelta += flagScore
		s.Events.LevelComplete = true
		s.Camera.AddScreenShake(5, 30)

		if s.Level < s.provider.MaxLevel() {
			s.Level++
			if err := s.Reset(); err != nil {
				return err
			}
			// Reset cleared the completion flag; the advance is what the
			// caller observes, not a lingering "complete" state.
			s.Events.LevelAdvanced = true
			s.Camera.AddScreenShake(8, 45)
		}
	}

	return nil
}

// updateCamera retargets the follow point and zoom from the ball's state and
// steps the camera. Big ball zooms out, small ball zooms in; hard landings
// kick a short shake.
func (s *Session) updateCamera() {
	s.Camera.SetTarget(s.Ball.Pos.X, s.Ball.Pos.Y)

	switch {
	case s.Ball.ScaleFactor > 1.0:
		s.Camera.SetZoomTarget(0.8)
	case s.Ball.ScaleFactor < 1.0:
		s.Camera.SetZoomTarget(1.3)
	default:
		s.Camera.SetZoomTarget(1.0)
	}

	if s.Ball.OnGround && math.Abs(s.Ball.Velocity.Y) > landingShakeSpeed {
		s.Camera.AddScreenShake(3, 10)
	}

	s.Camera.Update()
}
