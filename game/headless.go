package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orbitview/config"
)

// UpdateHeadless advances one tick driven by the scripted input, with no
// raylib calls. Used for soak runs and telemetry capture.
func (g *Game) UpdateHeadless() {
	g.step(g.scriptedInput(g.tick))

	if g.opts.LogStats && g.tick%300 == 0 {
		g.perf.LogSummary(g.tick)
	}
}

// scriptedInput exercises every controller on a repeating cycle: orbit a
// sweep, zoom in and back out, pan, then toggle the projection so the next
// cycle runs the other zoom variant.
func (g *Game) scriptedInput(tick int32) frameInput {
	in := frameInput{
		viewport: mgl32.Vec2{g.screenWidth, g.screenHeight},
		cursor:   mgl32.Vec2{g.screenWidth / 2, g.screenHeight / 2},
		cursorOK: true,
		frameMs:  1000 / float64(config.Cfg().Screen.TargetFPS),
	}

	switch phase := tick % 600; {
	case phase < 150:
		in.middleHeld = true
		in.motion = mgl32.Vec2{2, 1}
	case phase < 250:
		in.scroll = mgl32.Vec2{0, 1}
	case phase < 350:
		in.scroll = mgl32.Vec2{0, -1}
	case phase < 500:
		in.leftHeld = true
		in.motion = mgl32.Vec2{3, 0}
	case phase == 500:
		g.projectionMap.Get(g.cameraEntity).Toggle()
	}

	return in
}
