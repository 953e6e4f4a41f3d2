package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneLength = 60 * time.Millisecond
	baseTone   = 880.0
)

// sound plays short tones through a shared mixer. A failed Initialize leaves
// it silent.
type sound struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newSound() *sound {
	return &sound{mixer: &beep.Mixer{}}
}

func (s *sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// clearTones returns one rising frequency per cleared line.
func clearTones(lines int) []float64 {
	tones := make([]float64, 0, max(lines, 0))
	for i := range max(lines, 0) {
		tones = append(tones, baseTone*math.Pow(2, float64(i)/3))
	}
	return tones
}

// PlayClear plays an arpeggio with one note per cleared line.
func (s *sound) PlayClear(lines int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || lines <= 0 {
		return
	}

	var notes []beep.Streamer
	for _, freq := range clearTones(lines) {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(toneLength), sine), beep.Silence(sampleRate.N(toneLength/3)))
	}

	speaker.Lock()
	s.mixer.Add(beep.Seq(notes...))
	speaker.Unlock()
}

func (s *sound) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
