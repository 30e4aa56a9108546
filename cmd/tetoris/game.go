package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
	"github.com/plus3/tetoris/platform"
	"github.com/plus3/tetoris/render"
)

// debugLayer is the optional overlay drawn over the game. Only native builds
// provide one.
type debugLayer interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Toggle()
	WantsMouse() bool
}

type shareResult struct {
	outcome platform.Outcome
	err     error
}

// Game implements ebiten.Game. Everything touching the session runs in Update.
type Game struct {
	session   *game.Session
	scheduler *loop.Scheduler
	platform  platform.Service
	appID     string
	blockSize int
	logger    *zap.Logger
	debug     debugLayer

	hud     render.HUD
	shares  chan shareResult
	sharing bool

	mouseDown bool
	touch     ebiten.TouchID
	touching  bool
	touchIDs  []ebiten.TouchID
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	select {
	case res := <-g.shares:
		g.sharing = false
		g.hud.Notice = res.outcome.Message()
		if res.err != nil {
			g.logger.Error("share failed", zap.Error(res.err))
		} else {
			g.logger.Info("share finished", zap.Stringer("outcome", res.outcome))
		}
	default:
	}

	if g.debug != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.debug.Toggle()
		}
		g.debug.BeginFrame()
	}

	g.handleKeys()
	if g.debug == nil || !g.debug.WantsMouse() {
		g.handlePointer()
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.debug != nil {
		g.debug.EndFrame()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.session.GameOver() {
		g.share()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.release()
		g.session.Restart()
	}
}

func (g *Game) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.mouseDown = g.press(x, y)
	}
	if g.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.mouseDown = false
		g.session.PointerUp()
	}

	if !g.touching {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) > 0 {
			id := g.touchIDs[0]
			x, y := ebiten.TouchPosition(id)
			if g.press(x, y) {
				g.touch, g.touching = id, true
			}
		}
	} else if inpututil.IsTouchJustReleased(g.touch) {
		g.touching = false
		g.session.PointerUp()
	}
}

// press handles a pointer press at screen position (x, y) and reports whether
// it started a hold that needs a matching PointerUp.
func (g *Game) press(x, y int) bool {
	if render.InHUD(y, g.blockSize) {
		if g.session.GameOver() && g.hud.CanShare {
			g.share()
		}
		return false
	}
	width, _ := render.BoardSize(g.blockSize)
	g.session.PointerDown(game.DirectionAt(float64(x), float64(width)))
	return !g.session.GameOver()
}

func (g *Game) release() {
	g.mouseDown = false
	g.touching = false
	g.session.PointerUp()
}

func (g *Game) share() {
	if g.sharing {
		return
	}
	g.sharing = true
	g.hud.Notice = "Sharing..."

	svc, appID, score := g.platform, g.appID, g.session.Score()
	go func() {
		outcome, err := platform.ShareScore(context.Background(), svc, appID, score)
		g.shares <- shareResult{outcome: outcome, err: err}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	render.Draw(screen, snap, g.blockSize)
	render.DrawHUD(screen, snap, g.hud, g.blockSize)

	if g.debug != nil {
		g.debug.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.debug != nil {
		g.debug.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	width, height := render.BoardSize(g.blockSize)
	return width, height + render.HUDHeight
}
