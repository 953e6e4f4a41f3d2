package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pixeltetris/tetris"
)

type Report struct {
	// Configuration
	Duration     time.Duration
	TickInterval time.Duration
	Workers      int
	Seed         uint64

	// Results
	TotalTime      time.Duration
	Runner         tetris.RunnerStats
	CommandTime    Stats
	Games          []GameResult
	Final          tetris.State
	Violations     int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type GameResult struct {
	Score int
	Lines int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// BestScore is the highest score of any finished game.
func (r *Report) BestScore() int {
	best := 0
	for _, g := range r.Games {
		best = max(best, g.Score)
	}
	return best
}

func (r *Report) AvgScore() float64 {
	if len(r.Games) == 0 {
		return 0
	}
	total := 0
	for _, g := range r.Games {
		total += g.Score
	}
	return float64(total) / float64(len(r.Games))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Tick Interval:** {{.TickInterval}}
- **Command Workers:** {{.Workers}}
- **Seed:** {{.Seed}}

## Game Results
- **Games Finished:** {{len .Games}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Lines Cleared:** {{.Runner.LinesCleared}}
- **Final Game:** score {{.Final.Score}}, lines {{.Final.Lines}}, {{.Final.Phase}}
- **Invariant Violations:** {{.Violations}}

## Runner Results
- **Total Ticks:** {{.Runner.Ticks}}
- **Pieces Locked:** {{.Runner.Locks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.Runner.AvgTickDuration}}
  - **Min:** {{.Runner.MinTickDuration}}
  - **Max:** {{.Runner.MaxTickDuration}}
- **Commands:** {{.Runner.CommandsApplied}} applied, {{.Runner.CommandsRejected}} rejected, {{.Runner.CommandsInvalid}} invalid
- **Command Latency:**
  - **Avg:** {{.CommandTime.Avg}}
  - **Min:** {{.CommandTime.Min}}
  - **Max:** {{.CommandTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
