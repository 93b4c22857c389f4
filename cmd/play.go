package cmd

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/jsphweid/guitarguide/audio"
	"github.com/jsphweid/guitarguide/chord"
	"github.com/jsphweid/guitarguide/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Device is a sound output that plays at a fixed sample rate.
type Device interface {
	audio.Output
	SampleRate() beep.SampleRate
}

// OpenDevice opens the sound card for the play command. It is set by main so
// the command tree builds without the platform audio headers.
var OpenDevice func(sr beep.SampleRate, buffer time.Duration) (Device, error)

var sleep = time.Sleep

var (
	playForm  string
	playStrum bool
)

func init() {
	playCmd.Flags().StringVar(&playForm, "form", "", "CAGED form: C, A, G, E or D")
	playCmd.Flags().BoolVar(&playStrum, "strum", false, "strum from the low string up instead of striking all strings at once")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <root> [type]",
	Short: "Plays a chord through the sound card",
	Long:  `Plays a chord through the sound card and waits for it to ring out.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE:  play,
}

func play(cmd *cobra.Command, args []string) (err error) {
	root, ct, form, err := parseChordArgs(args, playForm)
	if err != nil {
		return err
	}
	frets, ok := chord.DeriveFrets(ct, form, root)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "%v: nothing to play, no %s shape fits\n", ct.ChordName(root), form)
		return nil
	}

	if OpenDevice == nil {
		return errors.New("no sound device support in this build")
	}
	out, err := OpenDevice(beep.SampleRate(cfg.SampleRate), cfg.Buffer)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "could not close sound device")
		}
	}()

	mode := model.ModeChord
	if playStrum {
		mode = model.ModeStrum
	}
	player := audio.NewPlayer(out, audio.WithStrumDelay(cfg.StrumDelay), audio.WithLogger(logger))
	tr, err := player.Play(frets, mode, cfg.Volume)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"chord":       ct.ChordName(root),
		"frets":       frets.String(),
		"mode":        mode,
		"sample-rate": out.SampleRate(),
	}).Info("playing")

	// playback is fire-and-forget; keep the device open until it rings out
	sleep(ringOut(tr, out.SampleRate(), cfg.Buffer))
	return nil
}

// ringOut covers the trigger plus one device buffer, rounded up to a whole
// sample at the device rate.
func ringOut(tr model.Trigger, sr beep.SampleRate, buffer time.Duration) time.Duration {
	return sr.D(sr.N(tr.End()+buffer) + 1)
}
