package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/redball/geom"
	"github.com/milk9111/redball/obj"
)

var (
	backgroundColor = color.RGBA{R: 50, G: 50, B: 100, A: 255}

	platformFill   = color.RGBA{G: 255, A: 255}
	platformBorder = color.RGBA{G: 200, A: 255}
	moverFill      = color.RGBA{R: 255, G: 165, A: 255}
	moverBorder    = color.RGBA{R: 255, G: 140, A: 255}

	coinOuter = color.RGBA{R: 255, G: 255, A: 255}
	coinInner = color.RGBA{R: 255, G: 215, A: 255}

	growColor   = color.RGBA{R: 255, B: 255, A: 255}
	shrinkColor = color.RGBA{G: 255, B: 255, A: 255}

	poleColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	clothColor  = color.RGBA{R: 255, A: 255}
	stripeColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	ballColor  = color.RGBA{R: 255, A: 255}
	spokeColor = color.RGBA{R: 150, A: 255}
)

// drawWorld renders every entity through the camera's view transform. The
// core hands out world-space geometry; everything here is presentation.
func drawWorld(screen *ebiten.Image, s *obj.Session) {
	cam := s.Camera
	zoom := cam.Zoom()

	for _, p := range s.Platforms {
		drawPlatform(screen, cam, p)
	}
	for _, c := range s.Coins {
		drawCoin(screen, cam, c)
	}
	for _, p := range s.PowerUps {
		drawPowerUp(screen, cam, p, zoom)
	}
	drawFlag(screen, cam, s.Flag, zoom)
	drawBall(screen, cam, s.Ball, zoom)
}

// onScreen reports whether a screen-space point is within margin pixels of
// the viewport.
func onScreen(p geom.Vec2, margin float64) bool {
	return p.X > -margin && p.X < baseWidth+margin &&
		p.Y > -margin && p.Y < baseHeight+margin
}

func drawPlatform(screen *ebiten.Image, cam *obj.Camera, p *obj.Platform) {
	topLeft := cam.WorldToScreen(geom.Vec2{X: p.Rect.X, Y: p.Rect.Y})
	bottomRight := cam.WorldToScreen(geom.Vec2{X: p.Rect.Right(), Y: p.Rect.Bottom()})
	if !onScreen(topLeft, 100) && !onScreen(bottomRight, 100) {
		return
	}

	w := float32(bottomRight.X - topLeft.X)
	h := float32(bottomRight.Y - topLeft.Y)
	x := float32(topLeft.X)
	y := float32(topLeft.Y)

	fill, border := platformFill, platformBorder
	borderWidth := float32(2)
	if p.Moving() {
		fill, border = moverFill, moverBorder
		borderWidth = 3
	}

	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, borderWidth, border, false)

	if p.Moving() {
		drawMotionMarker(screen, cam, p)
	}
}

// drawMotionMarker hints at the mover's trajectory: arrows for linear
// movers, a ring for orbiters.
func drawMotionMarker(screen *ebiten.Image, cam *obj.Camera, p *obj.Platform) {
	center := cam.WorldToScreen(p.Rect.Center())
	cx := float32(center.X)
	cy := float32(center.Y)
	size := float32(8 * cam.Zoom())

	switch p.Kind {
	case obj.MotionHorizontal:
		vector.StrokeLine(screen, cx-size*1.5, cy, cx+size*1.5, cy, 2, stripeColor, false)
		vector.StrokeLine(screen, cx-size*1.5, cy, cx-size, cy-size/2, 2, stripeColor, false)
		vector.StrokeLine(screen, cx+size*1.5, cy, cx+size, cy-size/2, 2, stripeColor, false)
	case obj.MotionVertical:
		vector.StrokeLine(screen, cx, cy-size*1.5, cx, cy+size*1.5, 2, stripeColor, false)
		vector.StrokeLine(screen, cx, cy-size*1.5, cx-size/2, cy-size, 2, stripeColor, false)
		vector.StrokeLine(screen, cx, cy+size*1.5, cx-size/2, cy+size, 2, stripeColor, false)
	case obj.MotionCircular:
		vector.StrokeCircle(screen, cx, cy, size, 2, stripeColor, false)
	}
}

func drawCoin(screen *ebiten.Image, cam *obj.Camera, c *obj.Coin) {
	if c.Collected {
		return
	}
	pos := cam.WorldToScreen(c.Pos)
	if !onScreen(pos, 50) {
		return
	}

	r := float32(obj.CoinRadius * cam.Zoom())
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r, coinOuter, true)
	inner := r * 0.7
	if inner < 1 {
		inner = 1
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), inner, coinInner, true)

	// spinning spoke sells the rotation without a polygon fill
	edge := geom.Rotation(c.Rotation).Apply(geom.Vec2{X: obj.CoinRadius})
	tip := cam.WorldToScreen(c.Pos.Add(edge))
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 1, coinInner, true)
}

func drawPowerUp(screen *ebiten.Image, cam *obj.Camera, p *obj.PowerUp, zoom float64) {
	if p.Collected {
		return
	}
	pos := cam.WorldToScreen(p.Pos)
	if !onScreen(pos, 50) {
		return
	}

	size := float32(obj.PowerUpSize * zoom)
	clr := growColor
	if p.Kind == obj.PowerShrink {
		clr = shrinkColor
	}
	vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), size, size, clr, false)

	// plus for grow, minus for shrink
	cx := float32(pos.X) + size/2
	cy := float32(pos.Y) + size/2
	arm := size * 0.3
	vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, 2, stripeColor, false)
	if p.Kind == obj.PowerGrow {
		vector.StrokeLine(screen, cx, cy-arm, cx, cy+arm, 2, stripeColor, false)
	}
}

func drawFlag(screen *ebiten.Image, cam *obj.Camera, f *obj.Flag, zoom float64) {
	if f.Collected {
		return
	}
	base := cam.WorldToScreen(f.Pos)
	if !onScreen(base, 100) {
		return
	}

	poleTopY := float32(base.Y) - float32(obj.FlagPoleHeight*zoom)
	vector.StrokeLine(screen, float32(base.X), float32(base.Y), float32(base.X), poleTopY,
		float32(4*zoom), poleColor, false)

	clothW := float32(obj.FlagWidth * zoom)
	clothH := float32(obj.FlagHeight * zoom)
	waveX := float32(math.Sin(f.WaveTime) * 5 * zoom)
	vector.DrawFilledRect(screen, float32(base.X)+waveX, poleTopY, clothW, clothH, clothColor, false)
	for i := 1; i <= 3; i++ {
		stripeY := poleTopY + clothH*float32(i)/4
		vector.StrokeLine(screen, float32(base.X)+waveX, stripeY, float32(base.X)+waveX+clothW, stripeY,
			2, stripeColor, false)
	}

	vector.DrawFilledCircle(screen, float32(base.X), poleTopY, float32(3*zoom), coinInner, true)
}

func drawBall(screen *ebiten.Image, cam *obj.Camera, b *obj.Ball, zoom float64) {
	pos := cam.WorldToScreen(b.Pos)
	r := float32(b.Radius * zoom)
	if r <= 1 {
		return
	}

	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r, ballColor, true)

	// rotation spoke
	edge := geom.Rotation(b.Rotation).Apply(geom.Vec2{X: b.Radius * 0.7})
	tip := cam.WorldToScreen(b.Pos.Add(edge))
	vector.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 3, spokeColor, true)

	// ring while a power-up effect is active
	if b.ScaleTimer > 0 {
		ring := growColor
		if b.ScaleFactor < 1 {
			ring = shrinkColor
		}
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), r+float32(5*zoom), 2, ring, true)
	}
}
