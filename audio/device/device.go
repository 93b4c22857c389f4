// Package device plays a Synth through the default sound card. It is kept
// apart from package audio because beep's speaker needs the platform audio
// headers to build.
package device

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/jsphweid/guitarguide/audio"
	"github.com/pkg/errors"
)

// Speaker is a Synth wired to the default sound device.
type Speaker struct {
	*audio.Synth
}

func Open(sr beep.SampleRate, buffer time.Duration) (*Speaker, error) {
	if err := speaker.Init(sr, sr.N(buffer)); err != nil {
		return nil, errors.Wrap(err, "could not open sound device")
	}
	s := &Speaker{audio.NewSharedSynth(sr, speaker.Lock, speaker.Unlock)}
	// speaker holds its own lock while it streams
	speaker.Play(s.Mixer())
	return s, nil
}

func (s *Speaker) Close() error {
	if err := s.Synth.Close(); err != nil {
		return err
	}
	speaker.Close()
	return nil
}
