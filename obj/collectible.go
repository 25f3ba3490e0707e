package obj

import "github.com/milk9111/redball/geom"

const (
	// CoinRadius is the collision and draw radius of a coin.
	CoinRadius = 10.0
	// PowerUpSize is the side length of a power-up box.
	PowerUpSize = 20.0
	// FlagPoleHeight and FlagWidth/FlagHeight describe the goal flag.
	FlagPoleHeight = 100.0
	FlagWidth      = 60.0
	FlagHeight     = 40.0
)

// Coin is a collectible worth points. Collected flips false->true once and
// stays set until the level is rebuilt.
type Coin struct {
	Pos       geom.Vec2
	Rotation  float64
	Collected bool
}

func NewCoin(x, y float64) *Coin {
	return &Coin{Pos: geom.Vec2{X: x, Y: y}}
}

// Update spins the coin. Purely cosmetic.
func (c *Coin) Update() {
	c.Rotation += 0.1
}

func (c *Coin) Bounds() geom.Rect {
	return geom.Rect{
		X:      c.Pos.X - CoinRadius,
		Y:      c.Pos.Y - CoinRadius,
		Width:  CoinRadius * 2,
		Height: CoinRadius * 2,
	}
}

// PowerUp is a grow or shrink pickup anchored at its top-left corner.
type PowerUp struct {
	Pos       geom.Vec2
	Kind      PowerKind
	Collected bool
}

func NewPowerUp(x, y float64, kind PowerKind) *PowerUp {
	return &PowerUp{Pos: geom.Vec2{X: x, Y: y}, Kind: kind}
}

func (p *PowerUp) Bounds() geom.Rect {
	return geom.Rect{X: p.Pos.X, Y: p.Pos.Y, Width: PowerUpSize, Height: PowerUpSize}
}

// Flag is the level goal. Pos is the base of the pole.
type Flag struct {
	Pos       geom.Vec2
	WaveTime  float64
	Collected bool
}

func NewFlag(x, y float64) *Flag {
	return &Flag{Pos: geom.Vec2{X: x, Y: y}}
}

// Update advances the cloth wave animation.
func (f *Flag) Update() {
	f.WaveTime += 0.1
}

// Bounds is the trigger region around pole and cloth, padded so a ball
// brushing either side still completes the level.
func (f *Flag) Bounds() geom.Rect {
	return geom.Rect{
		X:      f.Pos.X - 10,
		Y:      f.Pos.Y - FlagPoleHeight,
		Width:  FlagWidth + 20,
		Height: FlagPoleHeight + 20,
	}
}
