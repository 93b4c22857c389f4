package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/model"
)

// Synth renders triggers into a beep mixer. Whoever pulls samples from
// Streamer drives the clock.
type Synth struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	lock   func()
	unlock func()
}

func NewSynth(sr beep.SampleRate) *Synth {
	var mu sync.Mutex
	return NewSharedSynth(sr, mu.Lock, mu.Unlock)
}

// NewSharedSynth guards the mixer with a lock owned by the caller, such as
// the one the sound device holds while it pulls samples.
func NewSharedSynth(sr beep.SampleRate, lock func(), unlock func()) *Synth {
	return &Synth{
		sr:     sr,
		mixer:  &beep.Mixer{},
		lock:   lock,
		unlock: unlock,
	}
}

func (s *Synth) SampleRate() beep.SampleRate {
	return s.sr
}

// Streamer never drains; it plays silence once every tone has ended.
func (s *Synth) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		s.lock()
		defer s.unlock()
		return s.mixer.Stream(samples)
	})
}

// Mixer is the unguarded mixer, for a puller that already holds the lock.
func (s *Synth) Mixer() beep.Streamer {
	return s.mixer
}

// Active is the number of tones still sounding or waiting to start.
func (s *Synth) Active() int {
	s.lock()
	defer s.unlock()
	return s.mixer.Len()
}

func (s *Synth) Schedule(tr model.Trigger) error {
	streamers := make([]beep.Streamer, 0, len(tr.Tones))
	for _, tone := range tr.Tones {
		var voice beep.Streamer = beep.Seq(
			beep.Silence(s.sr.N(tone.Start)),
			triangleTone(s.sr, tone),
		)
		// trigger volume acts as the master gain of this trigger's graph
		voice = &effects.Gain{Streamer: voice, Gain: tr.Volume - 1}
		streamers = append(streamers, voice)
	}

	s.lock()
	s.mixer.Add(streamers...)
	s.unlock()
	return nil
}

func (s *Synth) Close() error {
	s.lock()
	s.mixer.Clear()
	s.unlock()
	return nil
}

// triangleTone decays exponentially from the tone's peak gain to the floor
// gain over its duration, then drains.
func triangleTone(sr beep.SampleRate, tone model.Tone) beep.Streamer {
	total := sr.N(tone.Duration)
	step := tone.Frequency / float64(sr)
	decay := math.Log(constants.ToneFloorGain/tone.PeakGain) / float64(total)
	var pos int
	var phase float64
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			v := tone.PeakGain * math.Exp(decay*float64(pos)) * triangle(phase)
			samples[i][0] = v
			samples[i][1] = v
			phase += step
			phase -= math.Floor(phase)
			pos++
			n++
		}
		return n, true
	})
}

// triangle maps a phase in [0, 1) to [-1, 1], peaking at phase 0.
func triangle(phase float64) float64 {
	return 4*math.Abs(phase-0.5) - 1
}
