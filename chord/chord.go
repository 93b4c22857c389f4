package chord

import (
	"strings"

	"github.com/jsphweid/guitarguide/fretboard"
	"github.com/jsphweid/guitarguide/model"
	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
)

var (
	ErrUnknownChordType = errors.New("unknown chord type")
	ErrUnknownForm      = errors.New("unknown CAGED form")
)

type Type struct {
	Name      string
	Symbol    string
	Intervals []int
}

var types = []Type{
	{Name: "major", Symbol: "", Intervals: []int{0, 4, 7}},
	{Name: "minor", Symbol: "m", Intervals: []int{0, 3, 7}},
	{Name: "7", Symbol: "7", Intervals: []int{0, 4, 7, 10}},
	{Name: "m7", Symbol: "m7", Intervals: []int{0, 3, 7, 10}},
	{Name: "maj7", Symbol: "maj7", Intervals: []int{0, 4, 7, 11}},
}

var typeAliases = map[string]string{
	"maj":    "major",
	"M":      "major",
	"min":    "minor",
	"m":      "minor",
	"dom7":   "7",
	"min7":   "m7",
	"minor7": "m7",
	"M7":     "maj7",
	"major7": "maj7",
}

func Types() []Type {
	res := make([]Type, len(types))
	copy(res, types)
	return res
}

func LookupType(name string) (Type, error) {
	clean := strings.TrimSpace(name)
	if alias, ok := typeAliases[clean]; ok {
		clean = alias
	}
	clean = strings.ToLower(clean)
	if alias, ok := typeAliases[clean]; ok {
		clean = alias
	}
	for _, t := range types {
		if t.Name == clean {
			return t, nil
		}
	}
	return Type{}, errors.Wrapf(ErrUnknownChordType, "%q", name)
}

// Contains reports whether n is a chord tone of this type built on root.
func (t Type) Contains(root note.Note, n note.Note) bool {
	dist := root.Distance(n)
	for _, offset := range t.Intervals {
		if offset == dist {
			return true
		}
	}
	return false
}

func (t Type) Notes(root note.Note) []note.Note {
	return note.DeriveScaleNotes(root, t.Intervals)
}

func (t Type) ChordName(root note.Note) string {
	return root.String() + t.Symbol
}

// DeriveFrets places a chord of type t on root. An empty form picks the
// lowest renderable CAGED voicing and lets open bass strings ring when they
// are chord tones. ok is false when nothing fits in the fret window.
func DeriveFrets(t Type, form Form, root note.Note) (model.Frets, bool) {
	if form != FormAuto {
		s, ok := ShapeFor(t, form)
		if !ok {
			return model.MutedFrets(), false
		}
		return s.Place(root)
	}

	best := model.MutedFrets()
	bestHigh := 0
	found := false
	for _, f := range Forms {
		s, ok := ShapeFor(t, f)
		if !ok {
			continue
		}
		frets, ok := s.Place(root)
		if !ok {
			continue
		}
		_, hi := frets.Span()
		if !found || hi < bestHigh {
			best, bestHigh, found = frets, hi, true
		}
	}
	if !found {
		return best, false
	}
	return ringOpenBass(t, root, best), true
}

func ringOpenBass(t Type, root note.Note, frets model.Frets) model.Frets {
	lo, _ := frets.Span()
	if lo != 0 {
		return frets
	}
	lowest := -1
	for str, fret := range frets {
		if fret != model.Muted {
			lowest = str
			break
		}
	}
	for str := lowest - 1; str >= 0; str-- {
		if !t.Contains(root, fretboard.OpenNote(str)) {
			break
		}
		frets[str] = 0
	}
	return frets
}
