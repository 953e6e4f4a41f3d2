package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixeltetris/tetris"
)

const inspectorCellSize = 12

// BoardInspector draws a miniature of the grid next to the state fields and
// offers pause, reset and difficulty controls.
type BoardInspector struct {
	lastErr error
}

func NewBoardInspector() *BoardInspector {
	return &BoardInspector{}
}

// occupancy flattens the visible cells of s into a row-major grid.
func occupancy(s tetris.State) [][]*tetris.Color {
	grid := make([][]*tetris.Color, s.Board.Height())
	for y := range grid {
		grid[y] = make([]*tetris.Color, s.Board.Width())
	}
	for cell, color := range s.Cells() {
		grid[cell.Y()][cell.X()] = &color
	}
	return grid
}

func vec4(c tetris.Color) imgui.Vec4 {
	v := c.Value()
	return imgui.NewVec4(float32(v.R)/255, float32(v.G)/255, float32(v.B)/255, 1)
}

func (bi *BoardInspector) Render(c Controller) {
	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 420), imgui.CondOnce)

	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := c.Snapshot()

	imgui.Text(fmt.Sprintf("Phase: %s", s.Phase()))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d", s.Score, s.Lines))
	imgui.Text(fmt.Sprintf("Locked Cells: %d", s.Board.Len()))
	imgui.Separator()

	if imgui.TreeNodeStr("Pieces") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Piece")
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Position")
			imgui.TableSetupColumn("Rotation")
			imgui.TableHeadersRow()

			for _, row := range []struct {
				name  string
				piece tetris.Piece
			}{
				{"Current", s.Current},
				{"Next", s.Next},
			} {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.PushStyleColorVec4(imgui.ColText, vec4(row.piece.Color))
				imgui.Text(row.piece.Kind.String())
				imgui.PopStyleColor()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("(%d, %d)", row.piece.X, row.piece.Y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", row.piece.Rotation))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	bi.renderGrid(s)
	bi.renderControls(c)

	imgui.End()
}

func (bi *BoardInspector) renderGrid(s tetris.State) {
	grid := occupancy(s)
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1))

	for y, row := range grid {
		for x, color := range row {
			fill := empty
			if color != nil {
				fill = imgui.ColorU32Vec4(vec4(*color))
			}
			minX := origin.X + float32(x*inspectorCellSize)
			minY := origin.Y + float32(y*inspectorCellSize)
			drawList.AddRectFilled(
				imgui.NewVec2(minX+1, minY+1),
				imgui.NewVec2(minX+inspectorCellSize-1, minY+inspectorCellSize-1),
				fill,
			)
		}
	}

	imgui.Dummy(imgui.NewVec2(
		float32(s.Board.Width()*inspectorCellSize),
		float32(s.Board.Height()*inspectorCellSize),
	))
}

func (bi *BoardInspector) renderControls(c Controller) {
	imgui.Separator()

	if imgui.Button("Pause/Resume") {
		bi.lastErr = c.Apply(tetris.TogglePause)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		bi.lastErr = c.Apply(tetris.Reset)
	}

	current := c.Difficulty()
	for i, d := range tetris.Difficulties() {
		if i > 0 {
			imgui.SameLine()
		}
		if imgui.RadioButtonBool(d.String(), d == current) && d != current {
			c.SetDifficulty(d)
		}
	}

	if bi.lastErr != nil {
		imgui.Text(fmt.Sprintf("Error: %v", bi.lastErr))
	}
}
