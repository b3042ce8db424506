package game

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

const (
	tapRingSize  = 8192
	tapWindow    = 2048
	tapSmoothing = 0.6
)

// amplitudeTap wraps a beep.Streamer and records the last N samples into a
// ring buffer so the renderer can pulse with recently played audio. The
// speaker goroutine writes, the render thread reads.
type amplitudeTap struct {
	source beep.Streamer

	mu     sync.Mutex
	buffer [][2]float64
	next   int
	level  float64
}

func newAmplitudeTap(src beep.Streamer) *amplitudeTap {
	return &amplitudeTap{
		source: src,
		buffer: make([][2]float64, tapRingSize),
	}
}

func (t *amplitudeTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.next] = samples[i]
			t.next++
			if t.next >= len(t.buffer) {
				t.next = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *amplitudeTap) Err() error { return t.source.Err() }

// Level reduces the most recent window to one smoothed loudness value in
// [0, 1].
func (t *amplitudeTap) Level() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var sumSquares float64
	idx := t.next - 1
	for i := 0; i < tapWindow; i++ {
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
		idx--
	}
	rms := math.Sqrt(sumSquares / tapWindow)
	mag := math.Pow(rms, 0.3) // compress so quiet passages still move

	t.level = tapSmoothing*t.level + (1-tapSmoothing)*mag
	return clamp01(t.level)
}
