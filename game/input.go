package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// frameInput is one frame's worth of controller input, captured up front so
// the controllers see a consistent snapshot.
type frameInput struct {
	// motion is the mouse delta in pixels; drives orbit and pan.
	motion mgl32.Vec2
	// scroll is the wheel delta; only the vertical axis zooms.
	scroll mgl32.Vec2

	leftHeld   bool
	middleHeld bool

	// cursor is the pointer position in pixels, valid when cursorOK.
	cursor   mgl32.Vec2
	cursorOK bool

	viewport mgl32.Vec2
	frameMs  float64
}

// readInput snapshots the mouse state. The cursor is dropped while it sits
// over the controls panel so panel drags do not also pan the world.
func (g *Game) readInput() frameInput {
	in := frameInput{
		viewport: mgl32.Vec2{g.screenWidth, g.screenHeight},
		frameMs:  float64(rl.GetFrameTime()) * 1000,
	}

	d := rl.GetMouseDelta()
	in.motion = mgl32.Vec2{d.X, d.Y}

	w := rl.GetMouseWheelMoveV()
	in.scroll = mgl32.Vec2{w.X, w.Y}

	in.middleHeld = rl.IsMouseButtonDown(rl.MouseMiddleButton)

	pos := rl.GetMousePosition()
	if rl.IsCursorOnScreen() && !g.panel.MouseOver(pos) {
		in.cursor = mgl32.Vec2{pos.X, pos.Y}
		in.cursorOK = true
		in.leftHeld = rl.IsMouseButtonDown(rl.MouseLeftButton)
	}

	return in
}

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.projectionMap.Get(g.cameraEntity).Toggle()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.resetCamera()
		g.syncTuning()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		g.panel.Toggle()
	}
}

// handleResize propagates window resizes into the viewport snapshot.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = float32(rl.GetScreenWidth())
	g.screenHeight = float32(rl.GetScreenHeight())
}
