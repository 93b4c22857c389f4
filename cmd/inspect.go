package cmd

import (
	"fmt"

	"github.com/jsphweid/guitarguide/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Lists the notes of a MIDI file",
	Long:  `Lists every note on of a MIDI file with its time and pitch.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		for _, n := range midi.Notes(s) {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}
