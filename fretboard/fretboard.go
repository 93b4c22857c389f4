package fretboard

import (
	"math"
	"strconv"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/model"
	"github.com/jsphweid/guitarguide/note"
	"github.com/jsphweid/guitarguide/scale"
)

type LabelMode string

const (
	LabelNote   LabelMode = "note"
	LabelDegree LabelMode = "degree"
)

type Cell struct {
	String  int
	Fret    int
	Note    note.Note
	InScale bool
	IsRoot  bool
	Degree  int
}

func OpenNote(str int) note.Note {
	n, _ := note.FromMIDI(constants.OpenStringKeys[str])
	return n
}

func NoteAt(str int, fret int) note.Note {
	return OpenNote(str).Transpose(fret)
}

func MIDIKey(str int, fret int) uint8 {
	return constants.OpenStringKeys[str] + uint8(fret)
}

func Frequency(str int, fret int) float64 {
	return constants.OpenStringFreqs[str] * math.Pow(2, float64(fret)/constants.SemitonesPerOctave)
}

// Notes names the pitch of each string of a voicing; muted strings are
// left out.
func Notes(frets model.Frets) []note.Note {
	var res []note.Note
	for str, fret := range frets {
		if fret == model.Muted {
			continue
		}
		res = append(res, NoteAt(str, fret))
	}
	return res
}

// Grid lays the scale over frets 0..numFrets of every string, low E first.
func Grid(root note.Note, s scale.Scale, numFrets int) [][]Cell {
	grid := make([][]Cell, model.NumStrings)
	for str := range grid {
		row := make([]Cell, numFrets+1)
		for fret := range row {
			n := NoteAt(str, fret)
			degree := s.Degree(root, n)
			row[fret] = Cell{
				String:  str,
				Fret:    fret,
				Note:    n,
				InScale: degree > 0,
				IsRoot:  n == root,
				Degree:  degree,
			}
		}
		grid[str] = row
	}
	return grid
}

func (c Cell) Label(mode LabelMode) string {
	if !c.InScale {
		return ""
	}
	if mode == LabelDegree {
		return strconv.Itoa(c.Degree)
	}
	return c.Note.String()
}
