// Package debugui provides Dear ImGui panels for inspecting a running game.
// Panels only read runner snapshots; edits go through the same commands the
// player issues.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixeltetris/tetris"
)

// Controller is the part of *tetris.Runner the panels need.
type Controller interface {
	Snapshot() tetris.State
	Stats() tetris.RunnerStats
	Difficulty() tetris.Difficulty
	SetDifficulty(tetris.Difficulty)
	Apply(tetris.Command) error
}

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front ends check it before turning key presses into commands.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay collects render items and runs them once per frame.
type Overlay struct {
	Items      []ImguiItem
	InputState ImguiInputState
}

// NewOverlay returns an overlay with the runner stats panel and the board
// inspector attached to c.
func NewOverlay(c Controller, historyFrames int) *Overlay {
	stats := NewRunnerStatsPanel(historyFrames)
	inspector := NewBoardInspector()
	timer := NewFrameTimer()

	o := &Overlay{}
	o.Add(func() { stats.Render(c, timer.GetDeltaTime()) })
	o.Add(func() { inspector.Render(c) })
	return o
}

func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, ImguiItem{Render: render})
}

// Render updates the input state and draws every item. It must be called
// between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.InputState.WantCaptureMouse = io.WantCaptureMouse()
	o.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.Items {
		item.Render()
	}
}
