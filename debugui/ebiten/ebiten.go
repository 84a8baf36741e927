// Package ebiten connects the debugui overlay to the Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/debugui"
)

// ImguiBackend wraps the Ebiten Dear ImGui backend together with the
// overlay it renders.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and its window. Ebiten owns the
// window after this, so the caller must still call ebiten.RunGame.
func NewImguiBackend(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// RenderFrame builds one overlay frame. Call it from the game's Update
// and draw the result with Draw.
func (b *ImguiBackend) RenderFrame() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}
