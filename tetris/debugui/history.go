package debugui

// history is a fixed-size ring of samples for frame and tick graphs.
type history struct {
	samples []float32
	index   int
	filled  int
}

func newHistory(size int) *history {
	if size < 1 {
		size = 1
	}
	return &history{samples: make([]float32, size)}
}

func (h *history) Push(v float32) {
	h.samples[h.index] = v
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average is the mean of the samples pushed so far.
func (h *history) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for i := range h.filled {
		sum += h.samples[i]
	}
	return sum / float32(h.filled)
}

// Ordered returns the samples oldest first.
func (h *history) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	copy(out, h.samples[h.index:])
	copy(out[len(h.samples)-h.index:], h.samples[:h.index])
	return out
}
