package chord

import (
	"strings"

	"github.com/jsphweid/guitarguide/model"
	"github.com/jsphweid/guitarguide/note"
	"github.com/pkg/errors"
)

type Form string

const (
	FormAuto Form = ""
	FormC    Form = "C"
	FormA    Form = "A"
	FormG    Form = "G"
	FormE    Form = "E"
	FormD    Form = "D"
)

// Forms in CAGED order.
var Forms = []Form{FormC, FormA, FormG, FormE, FormD}

func ParseForm(s string) (Form, error) {
	clean := strings.ToUpper(strings.TrimSpace(s))
	switch clean {
	case "", "AUTO", "NONE", "OPEN":
		return FormAuto, nil
	}
	for _, f := range Forms {
		if string(f) == clean {
			return f, nil
		}
	}
	return FormAuto, errors.Wrapf(ErrUnknownForm, "%q", s)
}

// Shape is a movable template written out as the open chord its form is
// named after.
type Shape struct {
	Form       Form
	Root       note.Note
	RootString int
	Frets      model.Frets
}

const x = model.Muted

var shapes = map[string][]Shape{
	"major": {
		{Form: FormC, Root: note.C, RootString: 1, Frets: model.Frets{x, 3, 2, 0, 1, 0}},
		{Form: FormA, Root: note.A, RootString: 1, Frets: model.Frets{x, 0, 2, 2, 2, 0}},
		{Form: FormG, Root: note.G, RootString: 0, Frets: model.Frets{3, 2, 0, 0, 0, 3}},
		{Form: FormE, Root: note.E, RootString: 0, Frets: model.Frets{0, 2, 2, 1, 0, 0}},
		{Form: FormD, Root: note.D, RootString: 2, Frets: model.Frets{x, x, 0, 2, 3, 2}},
	},
	"minor": {
		{Form: FormC, Root: note.C, RootString: 1, Frets: model.Frets{x, 3, 1, 0, 1, x}},
		{Form: FormA, Root: note.A, RootString: 1, Frets: model.Frets{x, 0, 2, 2, 1, 0}},
		{Form: FormG, Root: note.G, RootString: 0, Frets: model.Frets{3, 1, 0, 0, 3, 3}},
		{Form: FormE, Root: note.E, RootString: 0, Frets: model.Frets{0, 2, 2, 0, 0, 0}},
		{Form: FormD, Root: note.D, RootString: 2, Frets: model.Frets{x, x, 0, 2, 3, 1}},
	},
	"7": {
		{Form: FormC, Root: note.C, RootString: 1, Frets: model.Frets{x, 3, 2, 3, 1, 0}},
		{Form: FormA, Root: note.A, RootString: 1, Frets: model.Frets{x, 0, 2, 0, 2, 0}},
		{Form: FormG, Root: note.G, RootString: 0, Frets: model.Frets{3, 2, 0, 0, 0, 1}},
		{Form: FormE, Root: note.E, RootString: 0, Frets: model.Frets{0, 2, 0, 1, 0, 0}},
		{Form: FormD, Root: note.D, RootString: 2, Frets: model.Frets{x, x, 0, 2, 1, 2}},
	},
	"m7": {
		{Form: FormC, Root: note.C, RootString: 1, Frets: model.Frets{x, 3, 1, 3, 1, x}},
		{Form: FormA, Root: note.A, RootString: 1, Frets: model.Frets{x, 0, 2, 0, 1, 0}},
		{Form: FormG, Root: note.G, RootString: 0, Frets: model.Frets{3, 1, 3, 3, 3, 3}},
		{Form: FormE, Root: note.E, RootString: 0, Frets: model.Frets{0, 2, 0, 0, 0, 0}},
		{Form: FormD, Root: note.D, RootString: 2, Frets: model.Frets{x, x, 0, 2, 1, 1}},
	},
	"maj7": {
		{Form: FormC, Root: note.C, RootString: 1, Frets: model.Frets{x, 3, 2, 0, 0, 0}},
		{Form: FormA, Root: note.A, RootString: 1, Frets: model.Frets{x, 0, 2, 1, 2, 0}},
		{Form: FormG, Root: note.G, RootString: 0, Frets: model.Frets{3, 2, 0, 0, 0, 2}},
		{Form: FormE, Root: note.E, RootString: 0, Frets: model.Frets{0, 2, 1, 1, 0, 0}},
		{Form: FormD, Root: note.D, RootString: 2, Frets: model.Frets{x, x, 0, 2, 2, 2}},
	},
}

func ShapeFor(t Type, f Form) (Shape, bool) {
	for _, s := range shapes[t.Name] {
		if s.Form == f {
			return s, true
		}
	}
	return Shape{}, false
}

// Place moves the template up the neck until its root lands on root.
func (s Shape) Place(root note.Note) (model.Frets, bool) {
	return s.Frets.Transpose(s.Root.Distance(root))
}

// RootFret is the fret carrying the root once the shape is placed on root.
func (s Shape) RootFret(root note.Note) int {
	return s.Frets[s.RootString] + s.Root.Distance(root)
}
