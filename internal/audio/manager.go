// Package audio plays the game's sound cues. Assets load in the background and
// missing effects fall back to synthesized tones; no failure ever reaches the
// caller.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

// ErrNotWAV is recorded for assets without a RIFF/WAVE header.
var ErrNotWAV = errors.New("audio: not a WAV file")

// Default volumes.
const (
	DefaultMusicVolume = 0.3
	DefaultSFXVolume   = 0.5
)

// Manager implements state.Notifier on top of a Sink.
type Manager struct {
	sink       Sink
	fsys       fs.FS
	logger     *log.Logger
	sampleRate int

	mu       sync.Mutex
	clips    map[state.SoundKind]Clip
	failed   map[state.SoundKind]error
	synth    map[state.SoundKind][]float32
	loaded   bool
	pending  *state.Reality
	music    state.SoundKind
	musicOn  bool
	musicVol float64
	sfxVol   float64
}

// Option configures a Manager.
type Option func(*Manager)

// WithDir loads assets from a directory on disk.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.fsys = os.DirFS(dir)
	}
}

// WithFS loads assets from fsys.
func WithFS(fsys fs.FS) Option {
	return func(m *Manager) {
		m.fsys = fsys
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSampleRate sets the sample rate of synthesized tones.
func WithSampleRate(rate int) Option {
	return func(m *Manager) {
		if rate > 0 {
			m.sampleRate = rate
		}
	}
}

// WithVolumes sets the initial music and effect volumes.
func WithVolumes(music, sfx float64) Option {
	return func(m *Manager) {
		m.musicVol = clamp01(music)
		m.sfxVol = clamp01(sfx)
	}
}

// NewManager creates a manager that plays through sink. Nothing is loaded
// until Load or Start is called.
func NewManager(sink Sink, opts ...Option) *Manager {
	m := &Manager{
		sink:       sink,
		logger:     log.Default().WithPrefix("audio"),
		sampleRate: DefaultSampleRate,
		clips:      make(map[state.SoundKind]Clip),
		failed:     make(map[state.SoundKind]error),
		synth:      make(map[state.SoundKind][]float32),
		musicVol:   DefaultMusicVolume,
		sfxVol:     DefaultSFXVolume,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start loads assets in a background goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		if err := m.Load(ctx); err != nil {
			m.logger.Warn("sound loading stopped", "error", err)
		}
	}()
}

// Load reads every cue concurrently. Assets that cannot be read are marked
// failed; only cancellation is returned as an error. Music requested while
// loading is started once loading completes.
func (m *Manager) Load(ctx context.Context) error {
	if m.fsys == nil {
		m.finish(nil, nil)
		return nil
	}

	var (
		mu     sync.Mutex
		clips  = make(map[state.SoundKind]Clip)
		failed = make(map[state.SoundKind]error)
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range state.SoundKinds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			clip, err := m.read(kind)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[kind] = err
				m.logger.Warn("sound unavailable", "sound", kind, "error", err)
				return nil
			}
			clips[kind] = clip
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("audio: load: %w", err)
	}

	m.finish(clips, failed)
	m.logger.Debug("sounds loaded", "loaded", len(clips), "failed", len(failed))
	return nil
}

func (m *Manager) read(kind state.SoundKind) (Clip, error) {
	data, err := fs.ReadFile(m.fsys, kind.String()+".wav")
	if err != nil {
		return Clip{}, err
	}
	if !isWAV(data) {
		return Clip{}, ErrNotWAV
	}
	return Clip{Kind: kind, Data: data, Loop: kind.IsMusic()}, nil
}

func isWAV(data []byte) bool {
	return len(data) >= 12 &&
		bytes.Equal(data[0:4], []byte("RIFF")) &&
		bytes.Equal(data[8:12], []byte("WAVE"))
}

// finish publishes the load result and applies a pending music switch.
func (m *Manager) finish(clips map[state.SoundKind]Clip, failed map[state.SoundKind]error) {
	m.mu.Lock()
	for k, c := range clips {
		m.clips[k] = c
	}
	if m.fsys == nil {
		for _, k := range state.SoundKinds {
			m.failed[k] = fs.ErrNotExist
		}
	}
	for k, err := range failed {
		m.failed[k] = err
	}
	m.loaded = true
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending != nil {
		m.SwitchBackgroundMusic(*pending)
	}
}

// Loaded reports whether loading has completed.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// FailedSounds lists the cues whose assets could not be loaded or played.
func (m *Manager) FailedSounds() []state.SoundKind {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []state.SoundKind
	for _, k := range state.SoundKinds {
		if _, ok := m.failed[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// PlaySound plays an effect. A loaded asset goes to the sink; a failed one is
// replaced by its synthesized tone, and so is every later play of an asset the
// sink rejected. Before loading completes it is silent.
func (m *Manager) PlaySound(kind state.SoundKind) {
	m.mu.Lock()
	clip, ok := m.clips[kind]
	_, failed := m.failed[kind]
	vol := m.sfxVol
	if kind.IsMusic() {
		vol = m.musicVol
	}
	m.mu.Unlock()

	switch {
	case failed:
	case ok:
		clip.Volume = vol
		err := m.sink.Play(clip)
		if err == nil {
			return
		}
		m.logger.Warn("sound playback failed", "sound", kind, "error", err)
		m.markFailed(kind, err)
	default:
		return
	}

	m.playSynth(kind, vol)
}

// markFailed records a cue whose asset could not be played.
func (m *Manager) markFailed(kind state.SoundKind, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed == nil {
		m.failed = make(map[state.SoundKind]error)
	}
	m.failed[kind] = err
}

func (m *Manager) playSynth(kind state.SoundKind, vol float64) {
	tone, ok := ToneFor(kind)
	if !ok {
		return
	}

	m.mu.Lock()
	samples, cached := m.synth[kind]
	if !cached {
		samples = tone.Render(m.sampleRate)
		m.synth[kind] = samples
	}
	m.mu.Unlock()

	err := m.sink.Play(Clip{Kind: kind, Samples: samples, Volume: vol, Synthetic: true})
	if err != nil {
		m.logger.Debug("synthesized sound failed", "sound", kind, "error", err)
	}
}

// SwitchBackgroundMusic stops the other reality's loop and starts r's. While
// loading is in progress the request is kept and applied afterwards.
func (m *Manager) SwitchBackgroundMusic(r state.Reality) {
	next := state.MusicFor(r)

	m.mu.Lock()
	if !m.loaded {
		m.pending = &r
		m.mu.Unlock()
		return
	}
	prev, wasOn := m.music, m.musicOn
	clip, ok := m.clips[next]
	clip.Volume = m.musicVol
	m.music = next
	m.musicOn = ok
	m.mu.Unlock()

	if wasOn && prev == next {
		return
	}
	if wasOn {
		m.sink.Stop(prev)
	}
	if !ok {
		return
	}
	if err := m.sink.Play(clip); err != nil {
		m.logger.Warn("music playback failed", "music", next, "error", err)
		m.mu.Lock()
		m.musicOn = false
		m.mu.Unlock()
	}
}

// SetMusicVolume sets the music volume, clamped to [0, 1].
func (m *Manager) SetMusicVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.musicVol = clamp01(v)
}

// SetSFXVolume sets the effect volume, clamped to [0, 1].
func (m *Manager) SetSFXVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVol = clamp01(v)
}

// Volumes returns the music and effect volumes.
func (m *Manager) Volumes() (music, sfx float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.musicVol, m.sfxVol
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

var _ state.Notifier = (*Manager)(nil)
