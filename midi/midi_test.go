package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/guitarguide/audio"
	"github.com/jsphweid/guitarguide/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func record(t *testing.T) *Recorder {
	rec := NewRecorder("G then E", 120)
	p := audio.NewPlayer(rec)
	require.NoError(t, p.PlayStrum(model.Frets{3, 2, 0, 0, 0, 3}, 0.5))
	require.NoError(t, p.PlayChord(model.Frets{0, 2, 2, 1, 0, 0}, 1))
	return rec
}

func keys(events []NoteEvent) []uint8 {
	var res []uint8
	for _, e := range events {
		res = append(res, e.Key)
	}
	return res
}

func TestRecorderRoundTrip(t *testing.T) {
	rec := record(t)
	assert.Equal(t, 5400*time.Millisecond, rec.Len())

	var buf bytes.Buffer
	_, err := rec.WriteTo(&buf)
	require.NoError(t, err)

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	events := Notes(s)
	require.Len(t, events, 12)

	strum, chord := events[:6], events[6:]
	assert.Equal(t, []uint8{43, 47, 50, 55, 59, 67}, keys(strum))
	assert.Equal(t, []uint8{40, 47, 52, 56, 59, 64}, keys(chord))

	for i, e := range strum {
		assert.InDelta(t, float64(time.Duration(i)*80*time.Millisecond), float64(e.Offset), float64(time.Millisecond))
		assert.Equal(t, uint8(64), e.Velocity)
	}
	for _, e := range chord {
		assert.InDelta(t, float64(2900*time.Millisecond), float64(e.Offset), float64(time.Millisecond))
		assert.Equal(t, uint8(127), e.Velocity)
	}
}

func TestReadMidiFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.mid")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = record(t).WriteTo(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Len(t, Notes(s), 12)
	assert.Equal(t, "0s G2 (key 43, vel 64)", Notes(s)[0].String())
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}

func TestEmptyRecording(t *testing.T) {
	rec := NewRecorder("", 0)
	s, err := rec.SMF()
	require.NoError(t, err)
	assert.Empty(t, Notes(s))
	assert.Equal(t, time.Duration(0), rec.Len())
}

func TestVelocity(t *testing.T) {
	assert.Equal(t, uint8(1), velocity(0))
	assert.Equal(t, uint8(64), velocity(0.5))
	assert.Equal(t, uint8(127), velocity(2))
}
