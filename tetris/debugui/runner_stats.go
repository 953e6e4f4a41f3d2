package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pixeltetris/tetris"
)

// RunnerStatsPanel shows tick timing, command counters and a frame time graph.
type RunnerStatsPanel struct {
	frames    *history
	ticks     *history
	lastTicks int64
}

func NewRunnerStatsPanel(historyFrames int) *RunnerStatsPanel {
	return &RunnerStatsPanel{
		frames: newHistory(historyFrames),
		ticks:  newHistory(historyFrames),
	}
}

// observe records a frame and, when the runner ticked since the last frame,
// the latest tick duration.
func (ps *RunnerStatsPanel) observe(stats tetris.RunnerStats, deltaTime float32) {
	ps.frames.Push(deltaTime * 1000.0)
	if stats.Ticks != ps.lastTicks {
		ps.ticks.Push(float32(stats.LastTickDuration.Microseconds()) / 1000.0)
		ps.lastTicks = stats.Ticks
	}
}

func (ps *RunnerStatsPanel) Render(c Controller, deltaTime float32) {
	stats := c.Stats()
	ps.observe(stats, deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)

	if !imgui.BeginV("Runner Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Difficulty: %s (%s)", c.Difficulty(), c.Difficulty().Interval()))
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))

	avgFrame := ps.frames.Average()
	if avgFrame > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrame, 1000.0/avgFrame))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	frames := ps.frames.Ordered()
	imgui.PlotLinesFloatPtr("##frametime", &frames[0], int32(len(frames)))

	imgui.Text("Tick Time Graph (ms)")
	ticks := ps.ticks.Ordered()
	imgui.PlotLinesFloatPtr("##ticktime", &ticks[0], int32(len(ticks)))

	if imgui.TreeNodeStr("Tick Durations") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("TickTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Measure")
			imgui.TableSetupColumn("Duration")
			imgui.TableHeadersRow()

			for _, row := range []struct {
				name string
				d    time.Duration
			}{
				{"Min", stats.MinTickDuration},
				{"Max", stats.MaxTickDuration},
				{"Avg", stats.AvgTickDuration},
				{"Last", stats.LastTickDuration},
				{"Total", stats.TotalTickDuration},
			} {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.Text(row.d.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Commands") {
		imgui.BulletText(fmt.Sprintf("Applied: %d", stats.CommandsApplied))
		imgui.BulletText(fmt.Sprintf("Rejected: %d", stats.CommandsRejected))
		imgui.BulletText(fmt.Sprintf("Invalid: %d", stats.CommandsInvalid))
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
