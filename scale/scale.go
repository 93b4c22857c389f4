package scale

import (
	"strings"

	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
)

var ErrUnknownScale = errors.New("unknown scale")

type Scale struct {
	Name      string
	Intervals []int
}

var catalog = []Scale{
	{Name: "major", Intervals: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "natural minor", Intervals: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "harmonic minor", Intervals: []int{0, 2, 3, 5, 7, 8, 11}},
	{Name: "melodic minor", Intervals: []int{0, 2, 3, 5, 7, 9, 11}},
	{Name: "major pentatonic", Intervals: []int{0, 2, 4, 7, 9}},
	{Name: "minor pentatonic", Intervals: []int{0, 3, 5, 7, 10}},
	{Name: "blues", Intervals: []int{0, 3, 5, 6, 7, 10}},
	{Name: "dorian", Intervals: []int{0, 2, 3, 5, 7, 9, 10}},
	{Name: "phrygian", Intervals: []int{0, 1, 3, 5, 7, 8, 10}},
	{Name: "lydian", Intervals: []int{0, 2, 4, 6, 7, 9, 11}},
	{Name: "mixolydian", Intervals: []int{0, 2, 4, 5, 7, 9, 10}},
	{Name: "locrian", Intervals: []int{0, 1, 3, 5, 6, 8, 10}},
}

// All returns the catalog in display order. Callers get copies.
func All() []Scale {
	res := make([]Scale, len(catalog))
	for i, s := range catalog {
		res[i] = s.clone()
	}
	return res
}

// Lookup matches names case-insensitively; "-" and "_" stand in for spaces.
func Lookup(name string) (Scale, error) {
	clean := strings.ToLower(strings.TrimSpace(name))
	clean = strings.NewReplacer("-", " ", "_", " ").Replace(clean)
	for _, s := range catalog {
		if s.Name == clean {
			return s.clone(), nil
		}
	}
	return Scale{}, errors.Wrapf(ErrUnknownScale, "%q", name)
}

func (s Scale) Notes(root note.Note) []note.Note {
	return note.DeriveScaleNotes(root, s.Intervals)
}

// Degree is the 1-based position of n in the scale rooted at root, 0 if absent.
func (s Scale) Degree(root note.Note, n note.Note) int {
	dist := root.Distance(n)
	for i, offset := range s.Intervals {
		if offset == dist {
			return i + 1
		}
	}
	return 0
}

func (s Scale) clone() Scale {
	intervals := make([]int, len(s.Intervals))
	copy(intervals, s.Intervals)
	return Scale{Name: s.Name, Intervals: intervals}
}
