package circle

import "github.com/jsphweid/guitarguide/note"

// Order walks the circle of fifths clockwise from C.
var Order = [12]note.Note{
	note.C, note.G, note.D, note.A, note.E, note.B,
	note.FSharp, note.CSharp, note.GSharp, note.DSharp, note.ASharp, note.F,
}

var keySignatures = map[note.Note]string{
	note.C:      "",
	note.G:      "1♯",
	note.D:      "2♯",
	note.A:      "3♯",
	note.E:      "4♯",
	note.B:      "5♯",
	note.FSharp: "6♯",
	note.CSharp: "7♯",
	note.GSharp: "4♭",
	note.DSharp: "3♭",
	note.ASharp: "2♭",
	note.F:      "1♭",
}

var relativeMinors = map[note.Note]string{
	note.C:      "Am",
	note.G:      "Em",
	note.D:      "Bm",
	note.A:      "F♯m",
	note.E:      "C♯m",
	note.B:      "G♯m",
	note.FSharp: "D♯m",
	note.CSharp: "A♯m",
	note.GSharp: "Fm",
	note.DSharp: "Cm",
	note.ASharp: "Gm",
	note.F:      "Dm",
}

// KeySignature is empty for C major.
func KeySignature(major note.Note) string {
	return keySignatures[major.Normalize()]
}

func RelativeMinor(major note.Note) string {
	return relativeMinors[major.Normalize()]
}

// RelativeMinorRoot is the note a minor sector selects, three semitones down.
func RelativeMinorRoot(major note.Note) note.Note {
	return major.Transpose(-3)
}

// Position is the clockwise index of a major key, 0 for C.
func Position(major note.Note) int {
	n := major.Normalize()
	for i, o := range Order {
		if o == n {
			return i
		}
	}
	return -1
}

type Entry struct {
	Major             note.Note
	KeySignature      string
	RelativeMinor     string
	RelativeMinorRoot note.Note
}

func Entries() []Entry {
	res := make([]Entry, 0, len(Order))
	for _, n := range Order {
		res = append(res, Entry{
			Major:             n,
			KeySignature:      KeySignature(n),
			RelativeMinor:     RelativeMinor(n),
			RelativeMinorRoot: RelativeMinorRoot(n),
		})
	}
	return res
}
