package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orbitview/camera"
	"github.com/pthm-cable/orbitview/components"
	"github.com/pthm-cable/orbitview/config"
)

// spawnScene creates the world entities: ground plane, sun light, the main
// camera, and (if configured) the scene model request.
func (g *Game) spawnScene(cfg *config.Config) {
	groundTr := camera.Transform{Rotation: mgl32.QuatIdent()}
	g.groundEntity = g.groundMapper.NewEntity(
		&groundTr,
		&components.Ground{Size: float32(cfg.Ground.Size)},
	)

	lightTr := camera.Transform{Position: mgl32.Vec3{1, 1, 1}, Rotation: mgl32.QuatIdent()}
	g.lightEntity = g.lightMapper.NewEntity(
		&lightTr,
		&components.SunLight{Target: mgl32.Vec3{}, Color: [3]uint8{255, 244, 214}},
	)

	camTr := camera.NewLookAt(cfg.Camera.StartEye(), g.settings.Focus, mgl32.Vec3{0, 1, 0})
	proj := camera.DefaultProjection()
	if cfg.Camera.StartFov > 0 {
		proj.Persp.Fov = float32(cfg.Camera.StartFov)
	}
	g.cameraEntity = g.cameraMapper.NewEntity(&camTr, &proj, &components.MainCamera{})

	if cfg.Scene.Model != "" {
		sceneTr := camera.Transform{Rotation: mgl32.QuatIdent()}
		g.sceneEntity = g.sceneMapper.NewEntity(
			&sceneTr,
			&components.SceneModel{Path: cfg.Scene.Model, Scale: float32(cfg.Scene.Scale)},
		)
		g.hasScene = true
	}
}

// loadSceneModel resolves the scene model request against disk. A failed
// load logs a warning and the viewer runs without the model.
func (g *Game) loadSceneModel() {
	if !g.hasScene {
		return
	}
	scene := g.sceneMap.Get(g.sceneEntity)

	model := rl.LoadModel(scene.Path)
	if model.MeshCount == 0 {
		slog.Warn("scene model failed to load", "path", scene.Path)
		return
	}

	g.sceneModel = model
	scene.Loaded = true
	slog.Info("scene model loaded", "path", scene.Path, "meshes", model.MeshCount)
}
