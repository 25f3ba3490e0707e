package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/redball/levels"
	"github.com/milk9111/redball/obj"
	"github.com/milk9111/redball/save"
)

const (
	baseWidth  = 1000
	baseHeight = 600
)

type Game struct {
	frames int
	debug  bool

	input   *obj.Input
	session *obj.Session
	store   *save.Store

	// score mirrors the session score one frame behind, so the score at
	// the moment of level completion survives the rebuild that zeroes it.
	score int

	paused  bool
	pauseUI *ebitenui.UI

	watcher *levels.Watcher
}

func NewGame(startLevel int, debug bool) (*Game, error) {
	provider := levels.NewProvider()
	session, err := obj.NewSession(provider, baseWidth, baseHeight)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	if startLevel > 1 {
		if startLevel > provider.MaxLevel() {
			return nil, fmt.Errorf("start level %d out of range [1, %d]", startLevel, provider.MaxLevel())
		}
		session.Level = startLevel
		if err := session.Reset(); err != nil {
			return nil, fmt.Errorf("load start level: %w", err)
		}
	}

	g := &Game{
		debug:   debug,
		input:   obj.NewInput(),
		session: session,
		store:   save.Open("redball"),
	}
	g.pauseUI = NewPauseUI(g)

	if debug {
		w, err := levels.NewWatcher("levels")
		if err != nil {
			log.Printf("level watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainLevelEdits()

	if err := g.session.Update(g.input); err != nil {
		return err
	}

	ev := g.session.Events
	if ev.LevelComplete {
		g.store.Record(g.score+ev.ScoreDelta, g.session.Level)
	}
	g.score = g.session.Score

	return nil
}

// drainLevelEdits reloads the running level when its file changed on disk.
// Only wired up in debug mode.
func (g *Game) drainLevelEdits() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if !strings.HasSuffix(name, levels.FileName(g.session.Level)) {
				continue
			}
			log.Printf("level file %s changed, reloading", name)
			if err := g.session.Reset(); err != nil {
				log.Printf("reload level: %v", err)
			}
		case err := <-g.watcher.Errors:
			log.Printf("level watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	drawWorld(screen, g.session)
	drawHUD(screen, g)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()),
			baseWidth-220, 10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
