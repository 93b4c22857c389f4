package note

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patterns = [][]int{
	{0, 2, 4, 5, 7, 9, 11},
	{0, 2, 3, 5, 7, 8, 10},
	{0, 3, 5, 6, 7, 10},
	{0, 4, 7},
	{0},
}

func TestDeriveCMajor(t *testing.T) {
	notes := DeriveScaleNotes(C, []int{0, 2, 4, 5, 7, 9, 11})
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, Names(notes))
}

func TestDeriveScaleNotesShape(t *testing.T) {
	for _, root := range All() {
		for _, p := range patterns {
			name := fmt.Sprintf("root %v pattern %v", root, p)
			t.Run(name, func(t *testing.T) {
				notes := DeriveScaleNotes(root, p)

				assert := assert.New(t)
				assert.Len(notes, len(p))
				assert.Equal(root, notes[0])
				for _, n := range notes {
					_, err := Parse(n.String())
					assert.NoError(err)
				}
			})
		}
	}
}

func TestDeriveIsCyclic(t *testing.T) {
	for _, root := range All() {
		for _, p := range patterns {
			assert.Equal(t, DeriveScaleNotes(root, p), DeriveScaleNotes(root.Transpose(12), p))
			assert.Equal(t, DeriveScaleNotes(root, p), DeriveScaleNotes(root.Transpose(-12), p))
		}
	}
}

func TestDeriveWrapsLargeOffsets(t *testing.T) {
	notes := DeriveScaleNotes(A, []int{0, 3, 12, 15, -2})
	assert.Equal(t, []string{"A", "C", "A", "C", "G"}, Names(notes))
}

func TestParse(t *testing.T) {
	cases := map[string]Note{
		"C":   C,
		"c#":  CSharp,
		"Db":  CSharp,
		"F♯":  FSharp,
		"B♭":  ASharp,
		" e ": E,
		"Cb":  B,
	}
	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "H", "C##", "X"} {
		_, err := Parse(in)
		assert.True(t, errors.Is(err, ErrUnknownNote), in)
	}
}

func TestDistanceAndTranspose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, C.Distance(G))
	assert.Equal(5, G.Distance(C))
	assert.Equal(0, E.Distance(E))
	assert.Equal(B, C.Transpose(-1))
	assert.Equal("A#", Note(22).String())
}

func TestFromMIDI(t *testing.T) {
	n, octave := FromMIDI(60)
	assert.Equal(t, C, n)
	assert.Equal(t, 4, octave)

	n, octave = FromMIDI(40)
	assert.Equal(t, E, n)
	assert.Equal(t, 2, octave)
}
