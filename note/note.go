package note

import (
	"strings"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/util"
	"github.com/pkg/errors"
)

var ErrUnknownNote = errors.New("unknown note")

// Note is a pitch class. Values outside 0-11 are folded back by every method.
type Note int

const (
	C Note = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

var names = [constants.SemitonesPerOctave]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

var flats = map[string]Note{
	"Db": CSharp,
	"Eb": DSharp,
	"Fb": E,
	"Gb": FSharp,
	"Ab": GSharp,
	"Bb": ASharp,
	"Cb": B,
	"E#": F,
	"B#": C,
}

// All lists the pitch classes starting from C.
func All() []Note {
	res := make([]Note, 0, len(names))
	for i := range names {
		res = append(res, Note(i))
	}
	return res
}

func (n Note) Normalize() Note {
	return Note(util.Mod(int(n), constants.SemitonesPerOctave))
}

func (n Note) String() string {
	return names[n.Normalize()]
}

func (n Note) Transpose(semitones int) Note {
	return Note(int(n) + semitones).Normalize()
}

// Distance is how many semitones up from n the other note lies, in [0, 12).
func (n Note) Distance(other Note) int {
	return util.Mod(int(other.Normalize())-int(n.Normalize()), constants.SemitonesPerOctave)
}

// FromMIDI returns the pitch class of a MIDI key and its octave (key 60 is C4).
func FromMIDI(key uint8) (Note, int) {
	return Note(int(key) % constants.SemitonesPerOctave), int(key)/constants.SemitonesPerOctave - 1
}

// Parse accepts sharp or flat spellings, ASCII or ♯/♭, in any case.
func Parse(s string) (Note, error) {
	clean := strings.TrimSpace(s)
	clean = strings.NewReplacer("♯", "#", "♭", "b").Replace(clean)
	if clean == "" {
		return 0, errors.Wrapf(ErrUnknownNote, "%q", s)
	}
	clean = strings.ToUpper(clean[:1]) + strings.ToLower(clean[1:])
	for i, name := range names {
		if name == clean {
			return Note(i), nil
		}
	}
	if n, ok := flats[clean]; ok {
		return n, nil
	}
	return 0, errors.Wrapf(ErrUnknownNote, "%q", s)
}

// DeriveScaleNotes maps each interval offset onto an absolute pitch class.
func DeriveScaleNotes(root Note, intervals []int) []Note {
	res := make([]Note, len(intervals))
	for i, offset := range intervals {
		res[i] = root.Transpose(offset)
	}
	return res
}

func Names(notes []Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = n.String()
	}
	return res
}
