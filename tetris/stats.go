package tetris

import "time"

// RunnerStats provides statistics about runner activity.
type RunnerStats struct {
	Ticks            int64
	Locks            int64
	LinesCleared     int64
	CommandsApplied  int64
	CommandsRejected int64
	CommandsInvalid  int64

	MinTickDuration   time.Duration
	MaxTickDuration   time.Duration
	AvgTickDuration   time.Duration
	LastTickDuration  time.Duration
	TotalTickDuration time.Duration
}

type runnerStatsInternal struct {
	ticks            int64
	locks            int64
	linesCleared     int64
	commandsApplied  int64
	commandsRejected int64
	commandsInvalid  int64

	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

func newRunnerStats() runnerStatsInternal {
	return runnerStatsInternal{
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (s *runnerStatsInternal) recordTick(locked bool, cleared int, duration time.Duration) {
	s.ticks++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}

	if locked {
		s.locks++
	}
	s.linesCleared += int64(cleared)
}

func (s *runnerStatsInternal) snapshot() RunnerStats {
	stats := RunnerStats{
		Ticks:             s.ticks,
		Locks:             s.locks,
		LinesCleared:      s.linesCleared,
		CommandsApplied:   s.commandsApplied,
		CommandsRejected:  s.commandsRejected,
		CommandsInvalid:   s.commandsInvalid,
		MaxTickDuration:   s.maxDuration,
		LastTickDuration:  s.lastDuration,
		TotalTickDuration: s.totalDuration,
	}
	if s.ticks > 0 {
		stats.MinTickDuration = s.minDuration
		stats.AvgTickDuration = s.totalDuration / time.Duration(s.ticks)
	}
	return stats
}
