package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orbitview/camera"
	"github.com/pthm-cable/orbitview/config"
)

// newHeadless builds a viewer that never touches raylib.
func newHeadless(t *testing.T) *Game {
	t.Helper()
	config.MustInit("")
	return NewGameWithOptions(Options{Headless: true, StatsWindowSec: 60})
}

func run(g *Game, ticks int) {
	for i := 0; i < ticks; i++ {
		g.UpdateHeadless()
	}
}

func orbitDistance(g *Game) float32 {
	tr, _ := g.CameraState()
	return tr.Position.Sub(g.Focus()).Len()
}

func TestHeadlessOrbitKeepsDistance(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	// First 150 ticks of the script are an orbit drag.
	run(g, 100)

	want := config.Cfg().Camera.OrbitDistance
	if got := orbitDistance(g); math.Abs(float64(got)-want) > 1e-2 {
		t.Errorf("orbit distance = %v, want %v", got, want)
	}
}

func TestHeadlessPanMovesFocus(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	// Run through the pan phase (ticks 350..499).
	run(g, 500)

	if g.Focus().Len() == 0 {
		t.Fatal("focus unchanged after pan phase")
	}
	want := config.Cfg().Camera.OrbitDistance
	if got := orbitDistance(g); math.Abs(float64(got)-want) > 1e-2 {
		t.Errorf("orbit distance after pan = %v, want %v", got, want)
	}
}

func TestHeadlessZoomHitsClamps(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	s := config.Cfg().Camera.Settings()

	// Zoom-in phase: 100 ticks of positive scroll drives fov to the minimum.
	run(g, 250)
	_, proj := g.CameraState()
	if got := proj.Persp.Fov; mgl32.Abs(got-s.FovMin) > 1e-5 {
		t.Errorf("fov after zoom-in phase = %v, want clamp %v", got, s.FovMin)
	}

	// Zoom-out phase drives it to the maximum.
	run(g, 100)
	_, proj = g.CameraState()
	if got := proj.Persp.Fov; mgl32.Abs(got-s.FovMax) > 1e-5 {
		t.Errorf("fov after zoom-out phase = %v, want clamp %v", got, s.FovMax)
	}
}

func TestHeadlessProjectionToggle(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	run(g, 502)

	_, proj := g.CameraState()
	if proj.Kind != camera.KindOrthographic {
		t.Errorf("projection after toggle tick = %v, want %v", proj.Kind, camera.KindOrthographic)
	}
}

func TestResetCameraRestoresSpawn(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	run(g, 500)
	g.resetCamera()

	tr, proj := g.CameraState()
	eye := config.Cfg().Camera.StartEye()
	if tr.Position.Sub(eye).Len() > 1e-5 {
		t.Errorf("position after reset = %v, want %v", tr.Position, eye)
	}
	if g.Focus().Len() != 0 {
		t.Errorf("focus after reset = %v, want origin", g.Focus())
	}
	if proj.Kind != camera.KindPerspective {
		t.Errorf("projection after reset = %v, want %v", proj.Kind, camera.KindPerspective)
	}
}

func TestSceneModelLoadedTracksComponent(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	// Headless runs never resolve the asset request.
	if g.sceneModelLoaded() {
		t.Fatal("scene model marked loaded without a load")
	}

	g.sceneMap.Get(g.sceneEntity).Loaded = true
	if !g.sceneModelLoaded() {
		t.Error("loaded flag on the scene component not visible to the renderer")
	}
	g.sceneMap.Get(g.sceneEntity).Loaded = false
}

func TestTickAdvancesPerUpdate(t *testing.T) {
	g := newHeadless(t)
	defer g.Unload()

	run(g, 7)
	if g.Tick() != 7 {
		t.Errorf("tick = %d, want 7", g.Tick())
	}
}
