package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/jsphweid/guitarguide/constants"
)

// Muted marks a string that is not played.
const Muted = -1

const NumStrings = 6

// Frets holds one fret per string, low E first.
type Frets [NumStrings]int

func MutedFrets() Frets {
	return Frets{Muted, Muted, Muted, Muted, Muted, Muted}
}

func (f Frets) NumSounding() int {
	var n int
	for _, fret := range f {
		if fret != Muted {
			n++
		}
	}
	return n
}

// Span returns the lowest and highest sounding fret. Both are Muted when no
// string sounds.
func (f Frets) Span() (int, int) {
	lo, hi := Muted, Muted
	for _, fret := range f {
		if fret == Muted {
			continue
		}
		if lo == Muted || fret < lo {
			lo = fret
		}
		if fret > hi {
			hi = fret
		}
	}
	return lo, hi
}

// Transpose moves every sounding string by n frets. ok is false when the
// result leaves the playable window.
func (f Frets) Transpose(n int) (Frets, bool) {
	res := f
	for i, fret := range f {
		if fret == Muted {
			continue
		}
		// checked before storing: a shifted fret of -1 would read as muted
		moved := fret + n
		if moved < 0 || moved > constants.MaxFret {
			return MutedFrets(), false
		}
		res[i] = moved
	}
	return res, true
}

func (f Frets) String() string {
	parts := make([]string, len(f))
	for i, fret := range f {
		if fret == Muted {
			parts[i] = "x"
		} else {
			parts[i] = strconv.Itoa(fret)
		}
	}
	return strings.Join(parts, "-")
}

type Mode string

const (
	ModeChord Mode = "chord"
	ModeStrum Mode = "strum"
)

type Tone struct {
	String    int
	Fret      int
	Frequency float64
	Start     time.Duration
	Duration  time.Duration

	// peak of the envelope before the trigger volume is applied
	PeakGain float64
}

func (t Tone) End() time.Duration {
	return t.Start + t.Duration
}

type Trigger struct {
	ID     string
	Mode   Mode
	Volume float64
	Tones  []Tone
}

// End is the offset at which the last tone of the trigger stops sounding.
func (t Trigger) End() time.Duration {
	var end time.Duration
	for _, tone := range t.Tones {
		if tone.End() > end {
			end = tone.End()
		}
	}
	return end
}
