// Package game owns the viewer world: entity setup, the per-frame
// controller pipeline, rendering, and telemetry wiring. The camera math
// itself lives in the camera package; this package feeds it input snapshots
// and draws the result.
package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/orbitview/camera"
	"github.com/pthm-cable/orbitview/components"
	"github.com/pthm-cable/orbitview/config"
	"github.com/pthm-cable/orbitview/telemetry"
	"github.com/pthm-cable/orbitview/ui"
)

// Options configures how the viewer runs.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
}

// Game is the main viewer state.
type Game struct {
	world *ecs.World

	cameraMapper *ecs.Map3[camera.Transform, camera.Projection, components.MainCamera]
	groundMapper *ecs.Map2[camera.Transform, components.Ground]
	lightMapper  *ecs.Map2[camera.Transform, components.SunLight]
	sceneMapper  *ecs.Map2[camera.Transform, components.SceneModel]

	transformMap  *ecs.Map1[camera.Transform]
	projectionMap *ecs.Map1[camera.Projection]
	groundMap     *ecs.Map1[components.Ground]
	lightMap      *ecs.Map1[components.SunLight]
	sceneMap      *ecs.Map1[components.SceneModel]

	cameraEntity ecs.Entity
	groundEntity ecs.Entity
	lightEntity  ecs.Entity
	sceneEntity  ecs.Entity
	hasScene     bool

	settings camera.Settings

	tick    int32
	timeSec float64
	paused  bool

	// Cursor marker computed this frame, valid when markerOK.
	marker   camera.Marker
	markerOK bool

	// Graphical-only state; nil/zero in headless runs.
	hud        *ui.HUD
	panel      *ui.ControlsPanel
	tuning     ui.CameraTuning
	sceneModel rl.Model

	screenWidth  float32
	screenHeight float32

	perf      *telemetry.PerfStats
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	opts Options
}

// NewGame creates a viewer with default options.
func NewGame() *Game {
	return NewGameWithOptions(Options{})
}

// NewGameWithOptions creates a viewer. Headless runs skip all raylib calls,
// so they work without a window.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	g := &Game{
		world: world,
		cameraMapper: ecs.NewMap3[
			camera.Transform,
			camera.Projection,
			components.MainCamera,
		](world),
		groundMapper: ecs.NewMap2[camera.Transform, components.Ground](world),
		lightMapper:  ecs.NewMap2[camera.Transform, components.SunLight](world),
		sceneMapper:  ecs.NewMap2[camera.Transform, components.SceneModel](world),

		transformMap:  ecs.NewMap1[camera.Transform](world),
		projectionMap: ecs.NewMap1[camera.Projection](world),
		groundMap:     ecs.NewMap1[components.Ground](world),
		lightMap:      ecs.NewMap1[components.SunLight](world),
		sceneMap:      ecs.NewMap1[components.SceneModel](world),

		settings:     cfg.Camera.Settings(),
		screenWidth:  float32(cfg.Screen.Width),
		screenHeight: float32(cfg.Screen.Height),
		perf:         telemetry.NewPerfStats(),
		opts:         opts,
	}

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("creating output directory", "error", err)
		} else {
			g.output = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("writing config snapshot", "error", err)
			}
		}
	}

	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(windowSec, cfg.Screen.TargetFPS, opts.LogStats, g.output)

	g.spawnScene(cfg)

	if !opts.Headless {
		g.hud = ui.NewHUD()
		g.panel = ui.NewControlsPanel(g.screenWidth-260, 10, 250)
		g.syncTuning()
		g.loadSceneModel()
	}

	return g
}

// Update advances one graphical frame: input, controllers, telemetry.
func (g *Game) Update() {
	start := time.Now()
	g.handleInput()
	in := g.readInput()
	g.perf.Record(telemetry.PhaseInput, time.Since(start))

	if g.paused {
		return
	}

	// Panel sliders edit the tuning copy; fold it back before the
	// controllers run.
	g.settings.YawSpeed = g.tuning.YawSpeed
	g.settings.PitchSpeed = g.tuning.PitchSpeed
	g.settings.OrthoZoomSpeed = g.tuning.OrthoZoomSpeed
	g.settings.PerspZoomSpeed = g.tuning.FovZoomSpeed

	g.step(in)

	if g.opts.LogStats && g.tick%300 == 0 {
		g.perf.LogSummary(g.tick)
	}
}

// step runs the controller pipeline for one frame. Order matters: the pan
// controller reads the transform before orbit rotates it, matching what the
// user sees when dragging both buttons at once.
func (g *Game) step(in frameInput) {
	g.tick++
	g.timeSec += in.frameMs / 1000

	tr := g.transformMap.Get(g.cameraEntity)
	proj := g.projectionMap.Get(g.cameraEntity)
	groundTr := g.transformMap.Get(g.groundEntity)

	ground := camera.Plane{Origin: groundTr.Position, Normal: groundTr.Up()}

	start := time.Now()
	g.marker, g.markerOK = camera.GroundCursor(tr, proj, &g.settings, ground, camera.CursorInput{
		Cursor:   in.cursor,
		CursorOK: in.cursorOK,
		Delta:    in.motion,
		LeftHeld: in.leftHeld,
		Viewport: in.viewport,
	})
	g.perf.Record(telemetry.PhaseCursor, time.Since(start))

	start = time.Now()
	camera.Orbit(tr, &g.settings, in.motion, in.middleHeld)
	g.perf.Record(telemetry.PhaseOrbit, time.Since(start))

	start = time.Now()
	camera.Zoom(proj, &g.settings, in.scroll)
	g.perf.Record(telemetry.PhaseZoom, time.Since(start))

	g.collector.Record(telemetry.CaptureFrame(g.tick, g.timeSec, *tr, *proj, &g.settings, in.frameMs))
}

// resetCamera restores the spawn pose and default projection. The focus
// returns to the origin, so any accumulated pan is discarded too.
func (g *Game) resetCamera() {
	cfg := config.Cfg()
	g.settings.Focus = mgl32.Vec3{}

	tr := g.transformMap.Get(g.cameraEntity)
	*tr = camera.NewLookAt(cfg.Camera.StartEye(), g.settings.Focus, mgl32.Vec3{0, 1, 0})

	proj := g.projectionMap.Get(g.cameraEntity)
	*proj = camera.DefaultProjection()
	if cfg.Camera.StartFov > 0 {
		proj.Persp.Fov = float32(cfg.Camera.StartFov)
	}
}

// syncTuning refreshes the panel's tuning copy from the live settings.
func (g *Game) syncTuning() {
	g.tuning = ui.CameraTuning{
		YawSpeed:       g.settings.YawSpeed,
		PitchSpeed:     g.settings.PitchSpeed,
		OrthoZoomSpeed: g.settings.OrthoZoomSpeed,
		FovZoomSpeed:   g.settings.PerspZoomSpeed,
	}
}

// Tick returns the current frame counter.
func (g *Game) Tick() int32 {
	return g.tick
}

// CameraState returns a copy of the camera transform and projection.
func (g *Game) CameraState() (camera.Transform, camera.Projection) {
	return *g.transformMap.Get(g.cameraEntity), *g.projectionMap.Get(g.cameraEntity)
}

// Focus returns the current orbit focus point.
func (g *Game) Focus() mgl32.Vec3 {
	return g.settings.Focus
}

// Unload flushes telemetry and releases GPU resources.
func (g *Game) Unload() {
	g.collector.Flush()
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("closing telemetry output", "error", err)
		}
	}
	if g.sceneModelLoaded() {
		rl.UnloadModel(g.sceneModel)
		g.sceneMap.Get(g.sceneEntity).Loaded = false
	}
}

// sceneModelLoaded reads the load flag off the scene entity.
func (g *Game) sceneModelLoaded() bool {
	if !g.hasScene {
		return false
	}
	return g.sceneMap.Get(g.sceneEntity).Loaded
}
