// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixeltetris/tetris/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation
// and the overlay it draws each frame.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	Overlay *debugui.Overlay
}

// New creates the backend and its window. The imgui.ini file is disabled.
func New(title string, width, height int, overlay *debugui.Overlay) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend, Overlay: overlay}
}

// Frame runs one overlay frame. Call it from ebiten.Game.Update.
func (b *ImguiBackend) Frame() {
	b.BeginFrame()
	b.Overlay.Render()
	b.EndFrame()
}

// WantsKeyboard reports whether the overlay consumed keyboard input last frame.
func (b *ImguiBackend) WantsKeyboard() bool {
	return b.Overlay.InputState.WantCaptureKeyboard
}
