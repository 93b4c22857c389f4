package cmd

import (
	"fmt"

	"github.com/jsphweid/guitarguide/circle"
	"github.com/jsphweid/guitarguide/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(circleCmd)
}

var circleCmd = &cobra.Command{
	Use:   "circle [root]",
	Short: "Prints the circle of fifths",
	Long:  `Prints the circle of fifths with key signatures and relative minors, marking root if given.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selected := -1
		if len(args) == 1 {
			root, err := note.Parse(args[0])
			if err != nil {
				return err
			}
			selected = circle.Position(root)
		}
		for i, e := range circle.Entries() {
			marker := " "
			if i == selected {
				marker = ">"
			}
			sig := e.KeySignature
			if sig == "" {
				sig = "♮"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-3v %-3s %s\n", marker, e.Major, sig, e.RelativeMinor)
		}
		return nil
	},
}
