package cmd

import (
	"github.com/jsphweid/guitarguide/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     config.Config
	v       = config.New()
	logger  = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "guitarguide",
	Short: "Guitar scales, chords and sound",
	Long: `guitarguide derives scale notes, CAGED chord shapes and fretboard maps
for any root, and can strum or play chords through the sound card or into a
MIDI file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
		}
		c, err := config.Load(v)
		if err != nil {
			return err
		}
		cfg = c
		logger.SetLevel(cfg.LogLevel)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	config.RegisterFlags(flags)
	cobra.CheckErr(config.BindFlags(v, flags))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
