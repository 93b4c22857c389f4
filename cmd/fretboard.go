package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/fretboard"
	"github.com/jsphweid/guitarguide/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	numFrets   int
	labelsMode string
)

func init() {
	fretboardCmd.Flags().IntVar(&numFrets, "frets", constants.MaxFret, "number of frets to draw")
	fretboardCmd.Flags().StringVar(&labelsMode, "labels", string(fretboard.LabelNote), "label scale tones by note or degree")
	rootCmd.AddCommand(fretboardCmd)
}

var fretboardCmd = &cobra.Command{
	Use:   "fretboard <root> [scale name]",
	Short: "Draws a scale across the neck",
	Long:  `Draws a scale across the neck. Roots are bracketed.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, s, err := parseRootAndScale(args)
		if err != nil {
			return err
		}
		mode := fretboard.LabelMode(strings.ToLower(labelsMode))
		if mode != fretboard.LabelNote && mode != fretboard.LabelDegree {
			return errors.Errorf("--labels must be note or degree, got %q", labelsMode)
		}
		if numFrets < 0 || numFrets > 24 {
			return errors.Errorf("--frets must be between 0 and 24, got %d", numFrets)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", root, s.Name)
		fmt.Fprint(cmd.OutOrStdout(), renderGrid(fretboard.Grid(root, s, numFrets), mode))
		return nil
	},
}

func renderGrid(grid [][]fretboard.Cell, mode fretboard.LabelMode) string {
	var b strings.Builder
	b.WriteString("  ")
	for fret := range grid[0] {
		fmt.Fprintf(&b, "%5d", fret)
	}
	b.WriteString("\n")
	for str := model.NumStrings - 1; str >= 0; str-- {
		b.WriteString(stringNames[str] + " ")
		for _, cell := range grid[str] {
			label := cell.Label(mode)
			switch {
			case label == "":
				label = "-"
			case cell.IsRoot:
				label = "[" + label + "]"
			}
			fmt.Fprintf(&b, "%5s", label)
		}
		b.WriteString("\n")
	}
	return b.String()
}
