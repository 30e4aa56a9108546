//go:build !js

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetoris/debugui"
	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
)

type nativeDebug struct {
	backend *debugui.Backend
	overlay *debugui.Overlay
}

func newDebugLayer(session *game.Session, scheduler *loop.Scheduler) debugLayer {
	overlay := debugui.NewOverlay(session, scheduler)
	overlay.Enabled = true
	scheduler.Register(overlay)

	return &nativeDebug{
		backend: debugui.NewBackend("Tetoris", 1024, 720),
		overlay: overlay,
	}
}

func (d *nativeDebug) BeginFrame() {
	d.backend.BeginFrame()
}

func (d *nativeDebug) EndFrame() {
	d.backend.EndFrame()
}

func (d *nativeDebug) Draw(screen *ebiten.Image) {
	d.backend.Draw(screen)
}

func (d *nativeDebug) Layout(width, height int) {
	d.backend.Layout(width, height)
}

func (d *nativeDebug) Toggle() {
	d.overlay.Toggle()
}

func (d *nativeDebug) WantsMouse() bool {
	return d.overlay.Input().WantCaptureMouse
}
