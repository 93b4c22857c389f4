package audio

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Output receives triggers. It is created once, shared by every trigger, and
// closed when the program is done with audio.
type Output interface {
	Schedule(tr model.Trigger) error
	Close() error
}

type Player struct {
	out        Output
	strumDelay time.Duration
	log        logrus.FieldLogger
}

type Option func(*Player)

func WithStrumDelay(d time.Duration) Option {
	return func(p *Player) {
		if d >= 0 {
			p.strumDelay = d
		}
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Player) {
		p.log = l
	}
}

func NewPlayer(out Output, opts ...Option) *Player {
	p := &Player{
		out:        out,
		strumDelay: constants.DefaultStrumDelay,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PlayChord sounds every unmuted string at once. It returns as soon as the
// tones are handed to the output.
func (p *Player) PlayChord(frets model.Frets, volume float64) error {
	_, err := p.play(frets, model.ModeChord, volume)
	return err
}

// PlayStrum sounds the unmuted strings one after another, low E first.
func (p *Player) PlayStrum(frets model.Frets, volume float64) error {
	_, err := p.play(frets, model.ModeStrum, volume)
	return err
}

// Play is PlayChord or PlayStrum picked by mode; it also hands back the
// scheduled trigger so callers can wait for it to ring out.
func (p *Player) Play(frets model.Frets, mode model.Mode, volume float64) (model.Trigger, error) {
	return p.play(frets, mode, volume)
}

func (p *Player) play(frets model.Frets, mode model.Mode, volume float64) (model.Trigger, error) {
	tr := Schedule(frets, mode, volume, p.strumDelay)
	tr.ID = uuid.New().String()

	p.log.WithFields(logrus.Fields{
		"trigger": tr.ID,
		"mode":    tr.Mode,
		"frets":   frets.String(),
		"tones":   len(tr.Tones),
		"volume":  tr.Volume,
	}).Debug("scheduling trigger")

	if len(tr.Tones) == 0 {
		return tr, nil
	}
	if err := p.out.Schedule(tr); err != nil {
		return tr, errors.Wrapf(err, "could not schedule trigger %s", tr.ID)
	}
	return tr, nil
}
