package game

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

// speakerControl abstracts the beep speaker so playback sequencing is
// testable without an audio device.
//
// Clear and Init take the speaker mutex themselves; Lock/Unlock exist only
// for direct mutation of streamer fields (pause) and must never surround a
// Clear or Init call.
type speakerControl interface {
	Init(sampleRate beep.SampleRate, bufferSize int) error
	Clear()
	Lock()
	Unlock()
	Play(s ...beep.Streamer)
}

type beepSpeaker struct{}

func (beepSpeaker) Init(sampleRate beep.SampleRate, bufferSize int) error {
	return speaker.Init(sampleRate, bufferSize)
}
func (beepSpeaker) Clear()                  { speaker.Clear() }
func (beepSpeaker) Lock()                   { speaker.Lock() }
func (beepSpeaker) Unlock()                 { speaker.Unlock() }
func (beepSpeaker) Play(s ...beep.Streamer) { speaker.Play(s...) }

// musicPlayer plays one optional looping background track through the
// speaker, tapping the stream so the renderer can pulse with it. Everything
// here degrades silently: no track, no pulse, nothing else changes.
type musicPlayer struct {
	speaker speakerControl

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *amplitudeTap

	initDone bool
	paused   bool
}

func newMusicPlayer() *musicPlayer {
	return &musicPlayer{speaker: beepSpeaker{}}
}

// openDialog lets the user pick a track; a canceled dialog is a quiet no-op.
func (m *musicPlayer) openDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return m.play(filename)
}

func (m *musicPlayer) play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return errors.New("unsupported audio type: " + path)
	}
	if err != nil {
		_ = f.Close()
		return err
	}

	if err := m.start(f, streamer, format); err != nil {
		return err
	}
	slog.Info("playing music", "path", path)
	return nil
}

// start swaps the decoded track into the speaker, replacing whatever played
// before. Clear and Init lock the speaker internally, so they run bare here;
// wrapping them in speaker.Lock would deadlock the UI goroutine.
func (m *musicPlayer) start(f *os.File, streamer beep.StreamSeekCloser, format beep.Format) error {
	// Chain: looped track -> tap -> ctrl -> speaker.
	tap := newAmplitudeTap(beep.Loop(-1, streamer))
	ctrl := &beep.Ctrl{Streamer: tap}

	bufferSize := format.SampleRate.N(time.Second / 20)
	switch {
	case !m.initDone:
		if err := m.speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
		m.initDone = true
	case m.format.SampleRate != format.SampleRate:
		// Re-init when the sample rate changes. Init drops the old mixer,
		// but Clear first so the old track cannot emit during the swap.
		m.speaker.Clear()
		if err := m.speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return err
		}
	default:
		// Stop any previous playback.
		m.speaker.Clear()
	}

	if m.streamer != nil {
		_ = m.streamer.Close()
	}
	if m.file != nil {
		_ = m.file.Close()
	}

	m.file = f
	m.streamer = streamer
	m.format = format
	m.ctrl = ctrl
	m.tap = tap
	m.paused = false

	m.speaker.Play(ctrl)
	return nil
}

func (m *musicPlayer) togglePause() {
	if m.ctrl == nil {
		return
	}
	m.speaker.Lock()
	m.paused = !m.paused
	m.ctrl.Paused = m.paused
	m.speaker.Unlock()
}

// level is the current pulse amplitude; zero when nothing plays.
func (m *musicPlayer) level() float64 {
	if m.tap == nil || m.paused {
		return 0
	}
	return m.tap.Level()
}
