// Package ui renders the viewer HUD and the camera controls panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the values shown in the heads-up display.
type HUDData struct {
	Projection  string
	Fov         float32 // radians, perspective
	OrthoScale  float32
	Yaw         float32 // radians
	Pitch       float32 // radians
	Focus       [3]float32
	FPS         int32
	Paused      bool
	ModelLoaded bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("orbitview", 10, 10, 20, rl.White)

	zoom := fmt.Sprintf("fov %.1f deg", data.Fov*180/3.14159265)
	if data.Projection == "orthographic" {
		zoom = fmt.Sprintf("scale %.2f", data.OrthoScale)
	}
	rl.DrawText(
		fmt.Sprintf("%s | %s | yaw %.2f pitch %.2f", data.Projection, zoom, data.Yaw, data.Pitch),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("focus (%.1f, %.1f, %.1f) | FPS %d", data.Focus[0], data.Focus[1], data.Focus[2], data.FPS),
		10, 55, 16, rl.LightGray,
	)

	status := "drag: LMB pan, MMB orbit, wheel zoom | P projection, Home reset, T panel"
	if !data.ModelLoaded {
		status += " | no scene model"
	}
	rl.DrawText(status, 10, 75, 16, rl.Gray)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 95, 16, rl.Yellow)
	}
}
