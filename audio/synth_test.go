package audio

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/jsphweid/guitarguide/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sr = beep.SampleRate(44100)

func pull(s *Synth, d time.Duration) [][2]float64 {
	buf := make([][2]float64, sr.N(d))
	n, ok := s.Streamer().Stream(buf)
	if n != len(buf) || !ok {
		panic("synth stopped streaming")
	}
	return buf
}

func singleTone(start time.Duration, volume float64) model.Trigger {
	tr := Schedule(model.Frets{model.Muted, model.Muted, model.Muted, model.Muted, model.Muted, 0}, model.ModeChord, volume, 0)
	tr.Tones[0].Start = start
	return tr
}

func TestToneStartsAtPeakScaledByVolume(t *testing.T) {
	s := NewSynth(sr)
	require.NoError(t, s.Schedule(singleTone(0, 0.5)))

	buf := pull(s, 10*time.Millisecond)
	assert.InDelta(t, 0.2, buf[0][0], 1e-9)
	assert.InDelta(t, 0.2, buf[0][1], 1e-9)
}

func TestDelayedToneIsSilentUntilItsStart(t *testing.T) {
	s := NewSynth(sr)
	require.NoError(t, s.Schedule(singleTone(80*time.Millisecond, 1)))

	buf := pull(s, 100*time.Millisecond)
	offset := sr.N(80 * time.Millisecond)
	for i := 0; i < offset; i++ {
		require.Equal(t, 0.0, buf[i][0], "sample %d", i)
	}
	assert.InDelta(t, 0.4, buf[offset][0], 1e-9)
}

func TestEnvelopeDecays(t *testing.T) {
	s := NewSynth(sr)
	require.NoError(t, s.Schedule(singleTone(0, 1)))

	buf := pull(s, 2*time.Second)
	var early, late float64
	for i := 0; i < 1000; i++ {
		early = maxAbs(early, buf[i][0])
		late = maxAbs(late, buf[len(buf)-1-i][0])
	}
	assert.Greater(t, early, 0.3)
	assert.Less(t, late, 0.01)
}

func TestTonesDrainAfterTheirEnvelope(t *testing.T) {
	s := NewSynth(sr)
	p := NewPlayer(s)
	require.NoError(t, p.PlayStrum(model.Frets{0, 2, 2, 1, 0, 0}, 0.5))
	require.NoError(t, p.PlayChord(model.Frets{model.Muted, 0, 2, 2, 1, 0}, 0.5))
	assert.Equal(t, 11, s.Active())

	pull(s, 3*time.Second)
	assert.Equal(t, 0, s.Active())

	// the mixer keeps streaming silence
	buf := pull(s, 10*time.Millisecond)
	assert.Equal(t, 0.0, buf[0][0])
}

func TestCloseDropsPendingTones(t *testing.T) {
	s := NewSynth(sr)
	require.NoError(t, s.Schedule(singleTone(time.Second, 1)))
	require.NoError(t, s.Close())
	assert.Equal(t, 0, s.Active())
}

func TestSharedSynthUsesCallerLock(t *testing.T) {
	var locks, unlocks int
	s := NewSharedSynth(sr, func() { locks++ }, func() { unlocks++ })
	assert.Equal(t, sr, s.SampleRate())

	require.NoError(t, s.Schedule(singleTone(0, 1)))
	assert.Equal(t, 1, locks)

	// a device pulls from the raw mixer while holding its own lock
	buf := make([][2]float64, 16)
	n, ok := s.Mixer().Stream(buf)
	assert.Equal(t, 16, n)
	assert.True(t, ok)
	assert.InDelta(t, 0.4, buf[0][0], 1e-9)
	assert.Equal(t, 1, locks)
	assert.Equal(t, locks, unlocks)
}

func maxAbs(cur float64, v float64) float64 {
	if v < 0 {
		v = -v
	}
	if v > cur {
		return v
	}
	return cur
}
