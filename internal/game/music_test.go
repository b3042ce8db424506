package game

import (
	"testing"

	"github.com/faiface/beep"
)

// fakeSpeaker records the call sequence and flags any Clear or Init issued
// while the speaker mutex is held, which would self-deadlock the real
// speaker's non-reentrant lock.
type fakeSpeaker struct {
	calls      []string
	lockDepth  int
	deadlocked bool
}

func (s *fakeSpeaker) Init(sampleRate beep.SampleRate, bufferSize int) error {
	if s.lockDepth > 0 {
		s.deadlocked = true
	}
	s.calls = append(s.calls, "init")
	return nil
}

func (s *fakeSpeaker) Clear() {
	if s.lockDepth > 0 {
		s.deadlocked = true
	}
	s.calls = append(s.calls, "clear")
}

func (s *fakeSpeaker) Lock()   { s.lockDepth++ }
func (s *fakeSpeaker) Unlock() { s.lockDepth-- }

func (s *fakeSpeaker) Play(streamers ...beep.Streamer) {
	s.calls = append(s.calls, "play")
}

// silentTrack is a no-op StreamSeekCloser standing in for a decoded file.
type silentTrack struct {
	closed bool
}

func (t *silentTrack) Stream(samples [][2]float64) (int, bool) { return len(samples), true }
func (t *silentTrack) Err() error                              { return nil }
func (t *silentTrack) Len() int                                { return 0 }
func (t *silentTrack) Position() int                           { return 0 }
func (t *silentTrack) Seek(p int) error                        { return nil }
func (t *silentTrack) Close() error                            { t.closed = true; return nil }

func formatAt(rate beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
}

func TestMusicFirstStartInitsOnce(t *testing.T) {
	spk := &fakeSpeaker{}
	m := &musicPlayer{speaker: spk}

	if err := m.start(nil, &silentTrack{}, formatAt(44100)); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	want := []string{"init", "play"}
	if len(spk.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", spk.calls, want)
	}
	for i, c := range spk.calls {
		if c != want[i] {
			t.Fatalf("calls: got %v, want %v", spk.calls, want)
		}
	}
}

// Replacing a track at the same sample rate clears the mixer without
// touching the speaker mutex; holding it across Clear freezes the UI
// goroutine forever.
func TestMusicReplaceSameRateDoesNotHoldSpeakerLock(t *testing.T) {
	spk := &fakeSpeaker{}
	m := &musicPlayer{speaker: spk}

	first := &silentTrack{}
	if err := m.start(nil, first, formatAt(44100)); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	spk.calls = nil

	if err := m.start(nil, &silentTrack{}, formatAt(44100)); err != nil {
		t.Fatalf("second start failed: %v", err)
	}
	if spk.deadlocked {
		t.Fatalf("Clear issued while the speaker mutex was held")
	}
	if spk.lockDepth != 0 {
		t.Fatalf("speaker mutex left held, depth %d", spk.lockDepth)
	}

	want := []string{"clear", "play"}
	if len(spk.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", spk.calls, want)
	}
	for i, c := range spk.calls {
		if c != want[i] {
			t.Fatalf("calls: got %v, want %v", spk.calls, want)
		}
	}
	if !first.closed {
		t.Errorf("replaced track should be closed")
	}
}

func TestMusicReplaceNewRateReinitsWithoutLock(t *testing.T) {
	spk := &fakeSpeaker{}
	m := &musicPlayer{speaker: spk}

	if err := m.start(nil, &silentTrack{}, formatAt(44100)); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	spk.calls = nil

	if err := m.start(nil, &silentTrack{}, formatAt(48000)); err != nil {
		t.Fatalf("rate-change start failed: %v", err)
	}
	if spk.deadlocked {
		t.Fatalf("Clear/Init issued while the speaker mutex was held")
	}
	if spk.lockDepth != 0 {
		t.Fatalf("speaker mutex left held, depth %d", spk.lockDepth)
	}

	want := []string{"clear", "init", "play"}
	if len(spk.calls) != len(want) {
		t.Fatalf("calls: got %v, want %v", spk.calls, want)
	}
	for i, c := range spk.calls {
		if c != want[i] {
			t.Fatalf("calls: got %v, want %v", spk.calls, want)
		}
	}
}

func TestMusicTogglePauseLocksAroundFieldMutation(t *testing.T) {
	spk := &fakeSpeaker{}
	m := &musicPlayer{speaker: spk}

	// No ctrl yet: a quiet no-op.
	m.togglePause()
	if m.paused {
		t.Fatalf("pause without a track should do nothing")
	}

	if err := m.start(nil, &silentTrack{}, formatAt(44100)); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	m.togglePause()
	if !m.paused || !m.ctrl.Paused {
		t.Errorf("expected paused after toggle")
	}
	m.togglePause()
	if m.paused || m.ctrl.Paused {
		t.Errorf("expected resumed after second toggle")
	}
	if spk.lockDepth != 0 {
		t.Errorf("speaker mutex left held, depth %d", spk.lockDepth)
	}
	if m.tap == nil {
		t.Errorf("tap should exist after start")
	}
}
