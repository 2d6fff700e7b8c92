package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CameraTuning is the live-tunable subset of the camera settings exposed in
// the controls panel. The panel mutates it in place; the game copies the
// values back into the settings record each frame.
type CameraTuning struct {
	YawSpeed       float32
	PitchSpeed     float32
	OrthoZoomSpeed float32
	FovZoomSpeed   float32
}

// Actions reports the panel buttons pressed this frame.
type Actions struct {
	ToggleProjection bool
	ResetCamera      bool
}

// ControlsPanel renders the right-side camera controls panel.
type ControlsPanel struct {
	x, y    float32
	width   float32
	visible bool
}

// NewControlsPanel creates a controls panel anchored at the given corner.
func NewControlsPanel(x, y, width float32) *ControlsPanel {
	return &ControlsPanel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// MouseOver reports whether the cursor is inside the panel, so drags that
// start on the panel do not also pan the world.
func (c *ControlsPanel) MouseOver(pos rl.Vector2) bool {
	if !c.visible {
		return false
	}
	return pos.X >= c.x && pos.X <= c.x+c.width && pos.Y >= c.y && pos.Y <= c.y+panelHeight
}

const panelHeight = 230

// Draw renders the panel and applies slider edits to t.
func (c *ControlsPanel) Draw(t *CameraTuning, projection string) Actions {
	var actions Actions
	if !c.visible {
		return actions
	}

	rl.DrawRectangle(int32(c.x), int32(c.y), int32(c.width), panelHeight, rl.Fade(rl.Black, 0.6))
	rl.DrawRectangleLines(int32(c.x), int32(c.y), int32(c.width), panelHeight, rl.DarkGray)

	pad := float32(10)
	x := c.x + pad
	y := c.y + pad
	w := c.width - 2*pad

	rl.DrawText("Camera", int32(x), int32(y), 16, rl.White)
	y += 26

	slider := func(label string, value, min, max float32) float32 {
		rl.DrawText(label, int32(x), int32(y), 12, rl.LightGray)
		y += 14
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: w - 50, Height: 16},
			"", fmt.Sprintf("%.3f", value),
			value, min, max,
		)
		y += 22
		return v
	}

	t.YawSpeed = slider("yaw speed (rad/px)", t.YawSpeed, 0.001, 0.05)
	t.PitchSpeed = slider("pitch speed (rad/px)", t.PitchSpeed, 0.001, 0.05)
	t.OrthoZoomSpeed = slider("ortho zoom speed", t.OrthoZoomSpeed, 0.01, 1.0)
	t.FovZoomSpeed = slider("fov zoom speed", t.FovZoomSpeed, 0.01, 0.2)

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 5, Height: 24}, projection) {
		actions.ToggleProjection = true
	}
	if gui.Button(rl.Rectangle{X: x + w/2 + 5, Y: y, Width: w/2 - 5, Height: 24}, "Reset") {
		actions.ResetCamera = true
	}

	return actions
}
