package audio

import (
	"time"

	"github.com/jsphweid/guitarguide/constants"
	"github.com/jsphweid/guitarguide/fretboard"
	"github.com/jsphweid/guitarguide/model"
	"github.com/jsphweid/guitarguide/util"
)

// Schedule turns a voicing into tones. In strum mode each sounding string
// starts strumDelay after the previous sounding one, low E first.
func Schedule(frets model.Frets, mode model.Mode, volume float64, strumDelay time.Duration) model.Trigger {
	tr := model.Trigger{
		Mode:   mode,
		Volume: util.Clamp(volume, 0, 1),
	}
	var start time.Duration
	for str, fret := range frets {
		if fret == model.Muted {
			continue
		}
		tr.Tones = append(tr.Tones, model.Tone{
			String:    str,
			Fret:      fret,
			Frequency: fretboard.Frequency(str, fret),
			Start:     start,
			Duration:  constants.ToneDuration,
			PeakGain:  constants.TonePeakGain,
		})
		if mode == model.ModeStrum {
			start += strumDelay
		}
	}
	return tr
}
