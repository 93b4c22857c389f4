package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/guitarguide/chord"
	"github.com/jsphweid/guitarguide/fretboard"
	"github.com/jsphweid/guitarguide/model"
	"github.com/jsphweid/guitarguide/note"
	"github.com/spf13/cobra"
)

var chordForm string

func init() {
	chordCmd.Flags().StringVar(&chordForm, "form", "", "CAGED form: C, A, G, E or D (default picks the lowest voicing)")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <root> [type]",
	Short: "Shows where to put your fingers for a chord",
	Long:  `Shows the frets of a chord as tab. Types: major, minor, 7, m7, maj7.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, ct, form, err := parseChordArgs(args, chordForm)
		if err != nil {
			return err
		}
		frets, ok := chord.DeriveFrets(ct, form, root)
		out := cmd.OutOrStdout()
		if !ok {
			fmt.Fprintf(out, "%v: no %s shape fits below fret 12\n", ct.ChordName(root), form)
			return nil
		}
		fmt.Fprintf(out, "%v (%s)  notes: %s\n", ct.ChordName(root), frets, strings.Join(note.Names(fretboard.Notes(frets)), " "))
		fmt.Fprint(out, renderTab(frets))
		return nil
	},
}

func parseChordArgs(args []string, formName string) (note.Note, chord.Type, chord.Form, error) {
	root, err := note.Parse(args[0])
	if err != nil {
		return 0, chord.Type{}, chord.FormAuto, err
	}
	typeName := "major"
	if len(args) > 1 {
		typeName = args[1]
	}
	ct, err := chord.LookupType(typeName)
	if err != nil {
		return 0, chord.Type{}, chord.FormAuto, err
	}
	form, err := chord.ParseForm(formName)
	if err != nil {
		return 0, chord.Type{}, chord.FormAuto, err
	}
	return root, ct, form, nil
}

var stringNames = [model.NumStrings]string{"E", "A", "D", "G", "B", "e"}

// renderTab prints high e on top, like guitar tab.
func renderTab(frets model.Frets) string {
	var b strings.Builder
	for str := model.NumStrings - 1; str >= 0; str-- {
		label := "x"
		if frets[str] != model.Muted {
			label = fmt.Sprint(frets[str])
		}
		fmt.Fprintf(&b, "%s|--%s--\n", stringNames[str], label)
	}
	return b.String()
}
