package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/guitarguide/note"
	"github.com/jsphweid/guitarguide/scale"
	"github.com/spf13/cobra"
)

var listScales bool

func init() {
	scaleCmd.Flags().BoolVar(&listScales, "list", false, "list the known scales")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <root> [scale name]",
	Short: "Prints the notes of a scale",
	Long:  `Prints the notes of a scale. The scale defaults to major.`,
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listScales {
			for _, s := range scale.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-17s %v\n", s.Name, s.Intervals)
			}
			return nil
		}
		if len(args) == 0 {
			return cmd.Usage()
		}
		root, s, err := parseRootAndScale(args)
		if err != nil {
			return err
		}
		notes := s.Notes(root)
		fmt.Fprintf(cmd.OutOrStdout(), "%v %v: %v\n", root, s.Name, strings.Join(note.Names(notes), " "))
		return nil
	},
}

func parseRootAndScale(args []string) (note.Note, scale.Scale, error) {
	root, err := note.Parse(args[0])
	if err != nil {
		return 0, scale.Scale{}, err
	}
	name := "major"
	if len(args) > 1 {
		name = args[1]
	}
	s, err := scale.Lookup(name)
	if err != nil {
		return 0, scale.Scale{}, err
	}
	return root, s, nil
}
