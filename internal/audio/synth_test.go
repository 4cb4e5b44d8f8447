package audio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/quantum-shift/internal/state"
)

func TestToneTable(t *testing.T) {
	for _, kind := range []state.SoundKind{state.SoundRealityShift, state.SoundTimeReverse, state.SoundPuzzleSolved} {
		_, ok := ToneFor(kind)
		assert.True(t, ok, kind.String())
	}
	for _, kind := range []state.SoundKind{state.MusicNormal, state.MusicQuantum} {
		_, ok := ToneFor(kind)
		assert.False(t, ok, kind.String())
	}
}

func TestToneEnvelope(t *testing.T) {
	tone, _ := ToneFor(state.SoundRealityShift)

	assert.InDelta(t, 200, tone.FrequencyAt(0), 1e-9)
	assert.InDelta(t, 400, tone.FrequencyAt(0.1), 1e-9)
	assert.InDelta(t, 600, tone.FrequencyAt(0.2), 1e-9)
	assert.InDelta(t, 600, tone.FrequencyAt(0.45), 1e-9)

	assert.InDelta(t, 0.3, tone.GainAt(0), 1e-9)
	assert.InDelta(t, 0.15, tone.GainAt(0.15), 1e-9)
	assert.InDelta(t, 0, tone.GainAt(0.3), 1e-9)

	rev, _ := ToneFor(state.SoundTimeReverse)
	assert.Equal(t, WaveSawtooth, rev.Wave)
	assert.InDelta(t, 250, rev.FrequencyAt(0.2), 1e-9)
}

func TestToneRender(t *testing.T) {
	tone, _ := ToneFor(state.SoundPuzzleSolved)
	samples := tone.Render(8000)
	require.Len(t, samples, 4000)

	for i, s := range samples {
		require.LessOrEqual(t, s, float32(tone.Gain), "sample %d", i)
		require.GreaterOrEqual(t, s, float32(-tone.Gain), "sample %d", i)
	}
	// Gain is zero after the fade.
	for _, s := range samples[1600:] {
		require.Zero(t, s)
	}
	assert.Nil(t, tone.Render(0))
}

func TestWaveShapes(t *testing.T) {
	assert.InDelta(t, 0, WaveSine.sample(0), 1e-9)
	assert.InDelta(t, 1, WaveSine.sample(0.25), 1e-9)
	assert.InDelta(t, -1, WaveSawtooth.sample(0), 1e-9)
	assert.InDelta(t, 0, WaveSawtooth.sample(0.5), 1e-9)
	assert.Equal(t, 1.0, WaveSquare.sample(0.1))
	assert.Equal(t, -1.0, WaveSquare.sample(0.9))
}

func TestTerminalSinkBell(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTerminalSink(&buf, true)

	require.NoError(t, sink.Play(Clip{Kind: state.SoundPuzzleSolved, Volume: 0.5}))
	require.NoError(t, sink.Play(Clip{Kind: state.MusicNormal, Volume: 0.3, Loop: true}))
	require.NoError(t, sink.Play(Clip{Kind: state.SoundTimeReverse, Volume: 0}))
	assert.Equal(t, "\a", buf.String())

	last, ok := sink.LastCue()
	require.True(t, ok)
	assert.Equal(t, state.SoundTimeReverse, last)

	sink.Stop(state.MusicQuantum)
	_, on := sink.Music()
	assert.True(t, on)
	sink.Stop(state.MusicNormal)
	_, on = sink.Music()
	assert.False(t, on)
}
