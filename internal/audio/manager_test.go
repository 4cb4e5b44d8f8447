package audio

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

type event struct {
	op   string
	clip Clip
	kind state.SoundKind
}

type recordSink struct {
	mu     sync.Mutex
	events []event
	err    error
}

func (r *recordSink) Play(c Clip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{op: "play", clip: c, kind: c.Kind})
	return r.err
}

func (r *recordSink) Stop(k state.SoundKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{op: "stop", kind: k})
}

func (r *recordSink) drain() []event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

func wav(payload string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("RIFF\x00\x00\x00\x00WAVEfmt " + payload)}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func fullFS() fstest.MapFS {
	return fstest.MapFS{
		"reality-shift.wav":   wav("a"),
		"time-reverse.wav":    wav("b"),
		"puzzle-solved.wav":   wav("c"),
		"normal-ambient.wav":  wav("d"),
		"quantum-ambient.wav": wav("e"),
	}
}

func TestLoadMarksBrokenAssets(t *testing.T) {
	fsys := fullFS()
	delete(fsys, "time-reverse.wav")
	fsys["puzzle-solved.wav"] = &fstest.MapFile{Data: []byte("ID3 not a wav")}

	m := NewManager(&recordSink{}, WithFS(fsys), WithLogger(quietLogger()))
	require.False(t, m.Loaded())
	require.NoError(t, m.Load(context.Background()))

	assert.True(t, m.Loaded())
	assert.Equal(t, []state.SoundKind{state.SoundTimeReverse, state.SoundPuzzleSolved}, m.FailedSounds())
}

func TestPlayLoadedClip(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()))
	require.NoError(t, m.Load(context.Background()))

	m.PlaySound(state.SoundRealityShift)

	ev := sink.drain()
	require.Len(t, ev, 1)
	assert.Equal(t, state.SoundRealityShift, ev[0].clip.Kind)
	assert.False(t, ev[0].clip.Synthetic)
	assert.Equal(t, DefaultSFXVolume, ev[0].clip.Volume)
	assert.NotEmpty(t, ev[0].clip.Data)
}

func TestPlayBeforeLoadIsSilent(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()))

	m.PlaySound(state.SoundPuzzleSolved)
	assert.Empty(t, sink.drain())
}

func TestFailedEffectFallsBackToTone(t *testing.T) {
	sink := &recordSink{}
	fsys := fullFS()
	delete(fsys, "puzzle-solved.wav")
	m := NewManager(sink, WithFS(fsys), WithLogger(quietLogger()), WithSampleRate(8000))
	require.NoError(t, m.Load(context.Background()))

	m.PlaySound(state.SoundPuzzleSolved)

	ev := sink.drain()
	require.Len(t, ev, 1)
	assert.True(t, ev[0].clip.Synthetic)
	assert.Len(t, ev[0].clip.Samples, 4000)
}

func TestSinkErrorFallsBackToTone(t *testing.T) {
	sink := &recordSink{err: errors.New("device busy")}
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()), WithSampleRate(1000))
	require.NoError(t, m.Load(context.Background()))

	m.PlaySound(state.SoundTimeReverse)

	ev := sink.drain()
	require.Len(t, ev, 2)
	assert.False(t, ev[0].clip.Synthetic)
	assert.True(t, ev[1].clip.Synthetic)
	assert.Equal(t, []state.SoundKind{state.SoundTimeReverse}, m.FailedSounds())

	// The rejected asset is not retried.
	m.PlaySound(state.SoundTimeReverse)
	ev = sink.drain()
	require.Len(t, ev, 1)
	assert.True(t, ev[0].clip.Synthetic)
}

func TestNoDirUsesTonesForEffectsOnly(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, WithLogger(quietLogger()), WithSampleRate(1000))
	require.NoError(t, m.Load(context.Background()))

	assert.Len(t, m.FailedSounds(), len(state.SoundKinds))

	m.PlaySound(state.SoundRealityShift)
	m.SwitchBackgroundMusic(state.RealityQuantum)

	ev := sink.drain()
	require.Len(t, ev, 1)
	assert.True(t, ev[0].clip.Synthetic)
}

func TestMusicPendingUntilLoaded(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()))

	m.SwitchBackgroundMusic(state.RealityNormal)
	m.SwitchBackgroundMusic(state.RealityQuantum)
	assert.Empty(t, sink.drain())

	require.NoError(t, m.Load(context.Background()))

	ev := sink.drain()
	require.Len(t, ev, 1)
	assert.Equal(t, "play", ev[0].op)
	assert.Equal(t, state.MusicQuantum, ev[0].clip.Kind)
	assert.True(t, ev[0].clip.Loop)
	assert.Equal(t, DefaultMusicVolume, ev[0].clip.Volume)
}

func TestSwitchMusicStopsPrevious(t *testing.T) {
	sink := &recordSink{}
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()))
	require.NoError(t, m.Load(context.Background()))

	m.SwitchBackgroundMusic(state.RealityNormal)
	m.SwitchBackgroundMusic(state.RealityNormal)
	m.SwitchBackgroundMusic(state.RealityQuantum)

	ev := sink.drain()
	require.Len(t, ev, 3)
	assert.Equal(t, "play", ev[0].op)
	assert.Equal(t, state.MusicNormal, ev[0].kind)
	assert.Equal(t, "stop", ev[1].op)
	assert.Equal(t, state.MusicNormal, ev[1].kind)
	assert.Equal(t, state.MusicQuantum, ev[2].kind)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(&recordSink{}, WithFS(fullFS()), WithLogger(quietLogger()))
	err := m.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, m.Loaded())
}

func TestVolumesClamped(t *testing.T) {
	m := NewManager(&recordSink{}, WithLogger(quietLogger()))

	m.SetMusicVolume(1.7)
	m.SetSFXVolume(-0.2)
	music, sfx := m.Volumes()
	assert.Equal(t, 1.0, music)
	assert.Equal(t, 0.0, sfx)

	m.SetSFXVolume(0.25)
	_, sfx = m.Volumes()
	assert.Equal(t, 0.25, sfx)
}

func TestManagerAsNotifier(t *testing.T) {
	sink := NewTerminalSink(nil, false)
	m := NewManager(sink, WithFS(fullFS()), WithLogger(quietLogger()))
	require.NoError(t, m.Load(context.Background()))

	var n state.Notifier = m
	n.PlaySound(state.SoundRealityShift)
	n.SwitchBackgroundMusic(state.RealityQuantum)

	last, ok := sink.LastCue()
	require.True(t, ok)
	assert.Equal(t, state.SoundRealityShift, last)

	music, on := sink.Music()
	assert.True(t, on)
	assert.Equal(t, state.MusicQuantum, music)
}
