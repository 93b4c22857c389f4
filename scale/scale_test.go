package scale

import (
	"testing"

	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPatternsStartAtRoot(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			assert := assert.New(t)
			require.NotEmpty(t, s.Intervals)
			assert.Equal(0, s.Intervals[0])
			for i := 1; i < len(s.Intervals); i++ {
				assert.Greater(s.Intervals[i], s.Intervals[i-1])
				assert.Less(s.Intervals[i], 12)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("Minor-Pentatonic")
	require.NoError(t, err)
	assert.Equal(t, "minor pentatonic", s.Name)

	_, err = Lookup("bebop")
	assert.True(t, errors.Is(err, ErrUnknownScale))
}

func TestCatalogIsImmutable(t *testing.T) {
	s, err := Lookup("major")
	require.NoError(t, err)
	s.Intervals[1] = 99

	again, err := Lookup("major")
	require.NoError(t, err)
	assert.Equal(t, 2, again.Intervals[1])
}

func TestNotesAndDegree(t *testing.T) {
	s, err := Lookup("natural minor")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"A", "B", "C", "D", "E", "F", "G"}, note.Names(s.Notes(note.A)))
	assert.Equal(1, s.Degree(note.A, note.A))
	assert.Equal(3, s.Degree(note.A, note.C))
	assert.Equal(0, s.Degree(note.A, note.CSharp))
}
