// Package debugui draws Dear ImGui panels on top of a running game session.
// Panels are registered on an Overlay and rendered once per frame between
// the backend's BeginFrame and EndFrame calls.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard
// input. Drivers check it before forwarding key presses to the game.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a fixed set of panels each frame.
type Overlay struct {
	items []ImguiItem
	input ImguiInputState
}

func NewOverlay(items ...ImguiItem) *Overlay {
	o := &Overlay{}
	o.Add(items...)
	return o
}

// Add registers panels. Items without a render function are ignored.
func (o *Overlay) Add(items ...ImguiItem) {
	for _, item := range items {
		if item.Render != nil {
			o.items = append(o.items, item)
		}
	}
}

// Input returns the capture state observed by the last Render.
func (o *Overlay) Input() ImguiInputState {
	return o.input
}

// Render updates the input state and draws every panel.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}
