package audio

import (
	"io"
	"sync"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

// Clip is a cue ready for playback. Data holds an encoded asset; Samples holds
// a synthesized tone as mono PCM at the manager's sample rate. TerminalSink has
// no device and ignores both; they are for sinks that drive real audio output.
type Clip struct {
	Kind      state.SoundKind
	Data      []byte
	Samples   []float32
	Volume    float64
	Loop      bool
	Synthetic bool
}

// Sink plays clips.
type Sink interface {
	Play(clip Clip) error
	Stop(kind state.SoundKind)
}

// TerminalSink stands in for an audio device. Effects ring the terminal bell
// and every cue is remembered so the HUD can show what is playing.
type TerminalSink struct {
	mu      sync.Mutex
	w       io.Writer
	bell    bool
	last    state.SoundKind
	hasLast bool
	music   state.SoundKind
	playing bool
}

// NewTerminalSink creates a sink writing bells to w. A nil w or bell=false
// keeps it silent.
func NewTerminalSink(w io.Writer, bell bool) *TerminalSink {
	return &TerminalSink{w: w, bell: bell}
}

// Play records the cue and rings the bell for effects.
func (s *TerminalSink) Play(clip Clip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if clip.Kind.IsMusic() {
		s.music = clip.Kind
		s.playing = true
		return nil
	}

	s.last = clip.Kind
	s.hasLast = true
	if s.bell && s.w != nil && clip.Volume > 0 {
		if _, err := io.WriteString(s.w, "\a"); err != nil {
			return err
		}
	}
	return nil
}

// Stop ends a background track.
func (s *TerminalSink) Stop(kind state.SoundKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playing && s.music == kind {
		s.playing = false
	}
}

// LastCue returns the most recent effect.
func (s *TerminalSink) LastCue() (state.SoundKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, s.hasLast
}

// Music returns the background track currently playing.
func (s *TerminalSink) Music() (state.SoundKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.music, s.playing
}
