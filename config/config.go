package config

import (
	"strings"
	"time"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const EnvPrefix = "GUITARGUIDE"

const (
	KeyVolume     = "volume"
	KeyStrumDelay = "strum-delay"
	KeySampleRate = "sample-rate"
	KeyBuffer     = "buffer"
	KeyTempo      = "tempo"
	KeyLogLevel   = "log-level"
)

type Config struct {
	Volume     float64
	StrumDelay time.Duration
	SampleRate int
	Buffer     time.Duration
	Tempo      float64
	LogLevel   logrus.Level
}

// New returns a viper instance with defaults and GUITARGUIDE_* environment
// lookups. Flags bound later take precedence over both.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyVolume, constants.DefaultVolume)
	v.SetDefault(KeyStrumDelay, constants.DefaultStrumDelay)
	v.SetDefault(KeySampleRate, constants.DefaultSampleRate)
	v.SetDefault(KeyBuffer, constants.DefaultBuffer)
	v.SetDefault(KeyTempo, constants.DefaultTempo)
	v.SetDefault(KeyLogLevel, logrus.InfoLevel.String())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func RegisterFlags(fs *pflag.FlagSet) {
	fs.Float64(KeyVolume, constants.DefaultVolume, "playback volume between 0 and 1")
	fs.Duration(KeyStrumDelay, constants.DefaultStrumDelay, "delay between strings when strumming")
	fs.Int(KeySampleRate, constants.DefaultSampleRate, "audio sample rate in Hz")
	fs.Duration(KeyBuffer, constants.DefaultBuffer, "sound device buffer length")
	fs.Float64(KeyTempo, constants.DefaultTempo, "tempo of exported midi files in BPM")
	fs.String(KeyLogLevel, logrus.InfoLevel.String(), "log level (debug, info, warn, error)")
}

func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyVolume, KeyStrumDelay, KeySampleRate, KeyBuffer, KeyTempo, KeyLogLevel} {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "could not bind flag %s", key)
		}
	}
	return nil
}

func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "could not read config file %s", path)
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	level, err := logrus.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	c := Config{
		Volume:     v.GetFloat64(KeyVolume),
		StrumDelay: v.GetDuration(KeyStrumDelay),
		SampleRate: v.GetInt(KeySampleRate),
		Buffer:     v.GetDuration(KeyBuffer),
		Tempo:      v.GetFloat64(KeyTempo),
		LogLevel:   level,
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Volume < 0 || c.Volume > 1:
		return errors.Wrapf(ErrInvalidConfig, "volume %v is outside [0, 1]", c.Volume)
	case c.StrumDelay < 0:
		return errors.Wrapf(ErrInvalidConfig, "strum delay %v is negative", c.StrumDelay)
	case c.SampleRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "sample rate %d must be positive", c.SampleRate)
	case c.Buffer <= 0:
		return errors.Wrapf(ErrInvalidConfig, "buffer %v must be positive", c.Buffer)
	case c.Tempo <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tempo %v must be positive", c.Tempo)
	}
	return nil
}
