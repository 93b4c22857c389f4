package chord

import (
	"testing"

	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	cases := []struct {
		in    string
		root  note.Note
		ctype string
		form  Form
	}{
		{"Am", note.A, "minor", FormAuto},
		{"G", note.G, "major", FormAuto},
		{"F#maj7", note.FSharp, "maj7", FormAuto},
		{"Bb7:E", note.ASharp, "7", FormE},
		{"C♯m7:a", note.CSharp, "m7", FormA},
		{"Ebm", note.DSharp, "minor", FormAuto},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			root, ct, form, err := ParseSymbol(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.root, root)
			assert.Equal(t, c.ctype, ct.Name)
			assert.Equal(t, c.form, form)
		})
	}
}

func TestParseSymbolErrors(t *testing.T) {
	_, _, _, err := ParseSymbol("Hm")
	assert.True(t, errors.Is(err, note.ErrUnknownNote))

	_, _, _, err = ParseSymbol("Cdim")
	assert.True(t, errors.Is(err, ErrUnknownChordType))

	_, _, _, err = ParseSymbol("C:Z")
	assert.True(t, errors.Is(err, ErrUnknownForm))

	_, _, _, err = ParseSymbol(":E")
	assert.True(t, errors.Is(err, note.ErrUnknownNote))
}
