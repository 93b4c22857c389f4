package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/jsphweid/guitarguide/audio"
	"github.com/jsphweid/guitarguide/chord"
	"github.com/jsphweid/guitarguide/midi"
	"github.com/jsphweid/guitarguide/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exportStrum bool

var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func init() {
	exportCmd.Flags().BoolVar(&exportStrum, "strum", false, "strum each chord instead of striking all strings at once")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <out.mid> <chord>...",
	Short: "Writes a chord progression to a MIDI file",
	Long: `Writes a chord progression to a MIDI file. Chords are written like
Am, F#m7 or G7:E, where the part after the colon picks a CAGED form.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return export(args[0], args[1:])
	},
}

func export(path string, symbols []string) error {
	rec := midi.NewRecorder(filepath.Base(path), cfg.Tempo)
	player := audio.NewPlayer(rec, audio.WithStrumDelay(cfg.StrumDelay), audio.WithLogger(logger))

	mode := model.ModeChord
	if exportStrum {
		mode = model.ModeStrum
	}
	for _, symbol := range symbols {
		root, ct, form, err := chord.ParseSymbol(symbol)
		if err != nil {
			return err
		}
		frets, ok := chord.DeriveFrets(ct, form, root)
		if !ok {
			logger.WithField("chord", symbol).Warn("no shape fits, skipping")
			continue
		}
		if _, err := player.Play(frets, mode, cfg.Volume); err != nil {
			return err
		}
	}

	f, err := createFile(path)
	if err != nil {
		return errors.Wrap(err, "Couldn't open file: "+path)
	}
	n, err := rec.WriteTo(f)
	if err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "Couldn't close file: "+path)
	}
	logger.WithFields(logrus.Fields{
		"path":   path,
		"bytes":  n,
		"length": rec.Len(),
	}).Info("wrote midi file")
	return nil
}
