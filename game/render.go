package game

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orbitview/camera"
	"github.com/pthm-cable/orbitview/telemetry"
	"github.com/pthm-cable/orbitview/ui"
)

// Draw renders the scene and the HUD.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 32, 38, 255))

	rl.BeginMode3D(g.raylibCamera())
	g.drawGround()
	g.drawScene()
	g.drawLightGizmo()
	if g.markerOK {
		g.drawMarker()
	}
	rl.EndMode3D()

	g.drawHUD()

	g.perf.Record(telemetry.PhaseRender, time.Since(start))
	rl.EndDrawing()
}

// raylibCamera derives the raylib camera from the world-space transform and
// projection. For orthographic cameras raylib takes the viewport height in
// world units through Fovy.
func (g *Game) raylibCamera() rl.Camera3D {
	tr := g.transformMap.Get(g.cameraEntity)
	proj := g.projectionMap.Get(g.cameraEntity)

	cam := rl.Camera3D{
		Position: rlVec3(tr.Position),
		Target:   rlVec3(tr.Position.Add(tr.Forward())),
		Up:       rlVec3(tr.Up()),
	}
	switch proj.Kind {
	case camera.KindOrthographic:
		cam.Projection = rl.CameraOrthographic
		cam.Fovy = g.settings.OrthoViewportHeight * proj.Ortho.Scale
	default:
		cam.Projection = rl.CameraPerspective
		cam.Fovy = proj.Persp.Fov * 180 / math.Pi
	}
	return cam
}

func (g *Game) drawGround() {
	tr := g.transformMap.Get(g.groundEntity)
	ground := g.groundMap.Get(g.groundEntity)

	rl.DrawPlane(rlVec3(tr.Position), rl.Vector2{X: ground.Size, Y: ground.Size}, rl.NewColor(86, 125, 70, 255))
	rl.DrawGrid(int32(ground.Size), 1)
}

func (g *Game) drawScene() {
	if !g.hasScene {
		return
	}
	scene := g.sceneMap.Get(g.sceneEntity)
	if !scene.Loaded {
		return
	}
	tr := g.transformMap.Get(g.sceneEntity)
	rl.DrawModel(g.sceneModel, rlVec3(tr.Position), scene.Scale, rl.White)
}

func (g *Game) drawLightGizmo() {
	tr := g.transformMap.Get(g.lightEntity)
	light := g.lightMap.Get(g.lightEntity)

	col := rl.NewColor(light.Color[0], light.Color[1], light.Color[2], 255)
	rl.DrawSphere(rlVec3(tr.Position), 0.15, col)
	rl.DrawLine3D(rlVec3(tr.Position), rlVec3(light.Target), rl.Fade(col, 0.5))
}

// drawMarker renders the cursor ring aligned to the ground normal. raylib
// draws circles in the XY plane, so rotate +Z onto the normal.
func (g *Game) drawMarker() {
	m := g.marker

	z := mgl32.Vec3{0, 0, 1}
	axis := z.Cross(m.Normal)
	angle := float32(math.Acos(float64(mgl32.Clamp(z.Dot(m.Normal), -1, 1))))
	if axis.Len() < 1e-6 {
		// Normal parallel to +Z; any perpendicular axis works.
		axis = mgl32.Vec3{1, 0, 0}
	}

	rl.DrawCircle3D(rlVec3(m.Center), m.Radius, rlVec3(axis), angle*180/math.Pi, rl.White)
}

// drawHUD renders the overlay text and the controls panel, and applies any
// panel actions.
func (g *Game) drawHUD() {
	tr := g.transformMap.Get(g.cameraEntity)
	proj := g.projectionMap.Get(g.cameraEntity)
	yaw, pitch, _ := tr.EulerYXZ()

	g.hud.Draw(ui.HUDData{
		Projection:  proj.Kind.String(),
		Fov:         proj.Persp.Fov,
		OrthoScale:  proj.Ortho.Scale,
		Yaw:         yaw,
		Pitch:       pitch,
		Focus:       [3]float32{g.settings.Focus.X(), g.settings.Focus.Y(), g.settings.Focus.Z()},
		FPS:         rl.GetFPS(),
		Paused:      g.paused,
		ModelLoaded: g.sceneModelLoaded(),
	})

	actions := g.panel.Draw(&g.tuning, proj.Kind.String())
	if actions.ToggleProjection {
		proj.Toggle()
	}
	if actions.ResetCamera {
		g.resetCamera()
		g.syncTuning()
	}
}

func rlVec3(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}
