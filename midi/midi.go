package midi

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = &blank, errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, errors.Wrap(err, "Error reading midi file")
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, errors.Wrap(err, "Error parsing midi file")
	}

	return res, nil
}

type NoteEvent struct {
	Offset   time.Duration
	Key      uint8
	Velocity uint8
}

func (n NoteEvent) String() string {
	pitch, octave := note.FromMIDI(n.Key)
	return fmt.Sprintf("%v %v%d (key %d, vel %d)", n.Offset, pitch, octave, n.Key, n.Velocity)
}

// Notes lists every note on across all tracks ordered by time, then key.
func Notes(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, NoteEvent{
					Offset:   time.Duration(s.TimeAt(absTicks)) * time.Microsecond,
					Key:      key,
					Velocity: velocity,
				})
			}
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Offset != res[j].Offset {
			return res[i].Offset < res[j].Offset
		}
		return res[i].Key < res[j].Key
	})
	return res
}
