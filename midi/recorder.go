package midi

import (
	"io"
	"sort"
	"sync"
	"time"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/fretboard"
	"github.com/jsphweid/guitarguide/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type timedMessage struct {
	at     time.Duration
	noteOn bool
	msg    midi.Message
}

// Recorder is an audio output that writes triggers to a Standard MIDI File
// instead of a sound device. Triggers are laid end to end.
type Recorder struct {
	mu       sync.Mutex
	tempo    float64
	cursor   time.Duration
	messages []timedMessage
	name     string
}

func NewRecorder(name string, tempo float64) *Recorder {
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	return &Recorder{tempo: tempo, name: name}
}

func (r *Recorder) Schedule(tr model.Trigger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	vel := velocity(tr.Volume)
	for _, tone := range tr.Tones {
		key := fretboard.MIDIKey(tone.String, tone.Fret)
		r.messages = append(r.messages,
			timedMessage{at: r.cursor + tone.Start, noteOn: true, msg: midi.NoteOn(0, key, vel)},
			timedMessage{at: r.cursor + tone.End(), msg: midi.NoteOff(0, key)},
		)
	}
	r.cursor += tr.End() + constants.ExportGap
	return nil
}

func (r *Recorder) Close() error {
	return nil
}

// Len is how long the recording runs, gaps included.
func (r *Recorder) Len() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor
}

func (r *Recorder) SMF() (*smf.SMF, error) {
	r.mu.Lock()
	msgs := make([]timedMessage, len(r.messages))
	copy(msgs, r.messages)
	r.mu.Unlock()

	// note offs first so a restruck key is released before it sounds again
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].at != msgs[j].at {
			return msgs[i].at < msgs[j].at
		}
		return !msgs[i].noteOn && msgs[j].noteOn
	})

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	if r.name != "" {
		tr.Add(0, smf.MetaTrackSequenceName(r.name))
	}
	tr.Add(0, smf.MetaTempo(r.tempo))
	var last uint32
	for _, m := range msgs {
		ticks := r.ticks(m.at)
		tr.Add(ticks-last, m.msg)
		last = ticks
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	s, err := r.SMF()
	if err != nil {
		return 0, err
	}
	n, err := s.WriteTo(w)
	if err != nil {
		return n, errors.Wrap(err, "could not write midi file")
	}
	return n, nil
}

func (r *Recorder) ticks(d time.Duration) uint32 {
	quarter := time.Duration(float64(time.Minute) / r.tempo)
	return uint32(int64(d) * constants.TicksPerQuarter / int64(quarter))
}

func velocity(volume float64) uint8 {
	v := int(volume*127 + 0.5)
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}
