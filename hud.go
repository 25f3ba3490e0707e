package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

var (
	hudColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudPowerColor = color.NRGBA{R: 0xff, G: 0xff, A: 0xff}
	hudHintColor  = color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	hudZoomColor  = color.NRGBA{R: 0x96, G: 0x96, B: 0xff, A: 0xff}
	hudWinColor   = color.NRGBA{G: 0xff, A: 0xff}
)

func drawTextAt(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

// drawHUD renders the session counters and hints down the left edge.
func drawHUD(screen *ebiten.Image, g *Game) {
	s := g.session

	drawTextAt(screen, fmt.Sprintf("Score: %d", s.Score), 10, 10, hudColor)
	drawTextAt(screen, fmt.Sprintf("Level: %d/%d", s.Level, s.MaxLevel()), 10, 30, hudColor)
	drawTextAt(screen, fmt.Sprintf("Lives: %d", s.Ball.Lives), 10, 50, hudColor)
	drawTextAt(screen, fmt.Sprintf("Coins: %d/%d", s.CoinsCollected(), len(s.Coins)), 10, 70, hudColor)

	best := g.store.Progress()
	drawTextAt(screen, fmt.Sprintf("Best: %d", best.BestScore), 10, 90, hudColor)

	if s.Ball.ScaleTimer > 0 {
		kind := "LARGE"
		if s.Ball.ScaleFactor < 1 {
			kind = "SMALL"
		}
		drawTextAt(screen, fmt.Sprintf("Power: %s (%ds)", kind, s.Ball.ScaleTimer/60+1), 10, 110, hudPowerColor)
	}

	drawTextAt(screen, fmt.Sprintf("Zoom: %.2fx", s.Camera.Zoom()), 10, 130, hudZoomColor)

	if !s.Complete {
		drawTextAt(screen, "ARROWS/AD: move, SPACE: jump. Reach the flag to win!",
			10, baseHeight-40, hudHintColor)
	}

	if s.Complete && s.Level == s.MaxLevel() {
		drawTextAt(screen, "GAME COMPLETE! Press R to restart",
			baseWidth/2-130, baseHeight/2, hudWinColor)
	}
}
