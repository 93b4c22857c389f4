package chord

import (
	"strings"

	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
)

// ParseSymbol reads names like "Am", "F#maj7" or "Bb7:E", where the part
// after the colon picks a CAGED form.
func ParseSymbol(s string) (note.Note, Type, Form, error) {
	symbol, formPart, _ := strings.Cut(strings.TrimSpace(s), ":")
	form, err := ParseForm(formPart)
	if err != nil {
		return 0, Type{}, FormAuto, err
	}
	if symbol == "" {
		return 0, Type{}, FormAuto, errors.Wrapf(note.ErrUnknownNote, "empty chord symbol %q", s)
	}

	split := 1
	for _, accidental := range []string{"#", "b", "♯", "♭"} {
		if strings.HasPrefix(symbol[1:], accidental) {
			split += len(accidental)
			break
		}
	}
	root, err := note.Parse(symbol[:split])
	if err != nil {
		return 0, Type{}, FormAuto, err
	}

	typeName := symbol[split:]
	if typeName == "" {
		typeName = "major"
	}
	t, err := LookupType(typeName)
	if err != nil {
		return 0, Type{}, FormAuto, err
	}
	return root, t, form, nil
}
