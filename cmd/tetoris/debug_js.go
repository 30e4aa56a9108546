//go:build js

package main

import (
	"github.com/plus3/tetoris/game"
	"github.com/plus3/tetoris/loop"
)

// Dear ImGui needs cgo, so browser builds run without the overlay.
func newDebugLayer(*game.Session, *loop.Scheduler) debugLayer {
	return nil
}
