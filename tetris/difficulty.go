package tetris

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the fall interval for a run.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
	GodTier
)

var difficultyIntervals = map[Difficulty]time.Duration{
	Easy:    1000 * time.Millisecond,
	Hard:    550 * time.Millisecond,
	GodTier: 300 * time.Millisecond,
}

// Difficulties lists the available settings from slowest to fastest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Hard, GodTier}
}

// Interval returns the time between fall ticks. Unknown values fall back to Easy.
func (d Difficulty) Interval() time.Duration {
	if interval, ok := difficultyIntervals[d]; ok {
		return interval
	}
	return difficultyIntervals[Easy]
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case GodTier:
		return "god-tier"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty accepts "easy", "hard" and "god-tier" in any case, with
// "_" or no separator allowed in place of "-".
func ParseDifficulty(s string) (Difficulty, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	switch name {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	case "godtier":
		return GodTier, nil
	}
	return Easy, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Set implements flag.Value.
func (d *Difficulty) Set(s string) error {
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
